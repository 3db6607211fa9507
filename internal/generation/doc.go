// Package generation constructs training questions: it synthesizes concrete
// card hands matching a requested rank or starting-hand category (the inverse
// of hand evaluation), builds the prompt, answer choices, and explanation,
// and validates every synthesized hand against the evaluator before use.
package generation
