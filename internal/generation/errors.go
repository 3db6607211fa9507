package generation

import "errors"

// Common errors returned by the generation package
var (
	// ErrUnknownQuestionType is returned when a question type has no generator.
	ErrUnknownQuestionType = errors.New("unknown question type")

	// ErrUnknownRankOrCategory is returned when a difficulty has no target
	// pool entry for the requested rank or category.
	ErrUnknownRankOrCategory = errors.New("unknown target rank or category for difficulty")

	// ErrSynthesisFailed is returned under FallbackError policy when no
	// candidate matched the target rank within the attempt budget.
	ErrSynthesisFailed = errors.New("failed to synthesize a hand of the target rank")
)
