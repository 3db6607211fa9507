package domain

import (
	"encoding/json"

	"github.com/dpoletti/pokertrain/internal/domain/poker"
)

// QuestionType identifies a kind of training question. Question types double
// as progression topics.
type QuestionType string

// The three question types.
const (
	QuestionHandRanking  QuestionType = "hand_ranking"
	QuestionWhichWins    QuestionType = "which_wins"
	QuestionStartingHand QuestionType = "starting_hand"
)

// QuestionTypes lists all types in their fixed recommendation order.
var QuestionTypes = []QuestionType{QuestionHandRanking, QuestionWhichWins, QuestionStartingHand}

// DisplayName returns the human-readable topic name.
func (t QuestionType) DisplayName() string {
	switch t {
	case QuestionHandRanking:
		return "Hand Rankings"
	case QuestionWhichWins:
		return "Which Hand Wins"
	case QuestionStartingHand:
		return "Starting Hands"
	default:
		return string(t)
	}
}

// Valid reports whether t is one of the known question types.
func (t QuestionType) Valid() bool {
	switch t {
	case QuestionHandRanking, QuestionWhichWins, QuestionStartingHand:
		return true
	default:
		return false
	}
}

// Difficulty bounds.
const (
	MinDifficulty = 1
	MaxDifficulty = 5
)

// ClampDifficulty forces d into [MinDifficulty, MaxDifficulty].
func ClampDifficulty(d int) int {
	if d < MinDifficulty {
		return MinDifficulty
	}
	if d > MaxDifficulty {
		return MaxDifficulty
	}
	return d
}

// Question is a fully generated training question. It is immutable once
// generated; the Payload is an opaque record sufficient to audit or
// reconstruct the question later.
type Question struct {
	ID            string
	Type          QuestionType
	Prompt        string
	Cards         []poker.Card
	Cards2        []poker.Card // second hand for which_wins, nil otherwise
	Choices       []string
	CorrectAnswer string
	Explanation   string
	Difficulty    int
	Payload       json.RawMessage
}
