package domain

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for QuestionAttempt.
var (
	ErrEmptyAttemptUserID = errors.New("question attempt user ID cannot be empty")
	ErrEmptyAttemptTopic  = errors.New("question attempt topic cannot be empty")
)

// QuestionAttempt is one append-only log record of an answered question.
// It is immutable once written.
type QuestionAttempt struct {
	ID             uuid.UUID       `json:"id"`
	UserID         string          `json:"user_id"`
	QuestionType   QuestionType    `json:"question_type"`
	Correct        bool            `json:"correct"`
	ResponseTimeMs *int            `json:"response_time_ms,omitempty"`
	Difficulty     int             `json:"difficulty"`
	QuestionData   json.RawMessage `json:"question_data,omitempty"` // opaque audit payload
	CreatedAt      time.Time       `json:"created_at"`
}

// NewQuestionAttempt records an answered question at the given difficulty.
func NewQuestionAttempt(
	userID string,
	questionType QuestionType,
	correct bool,
	responseTimeMs *int,
	difficulty int,
	questionData json.RawMessage,
) (*QuestionAttempt, error) {
	attempt := &QuestionAttempt{
		ID:             uuid.New(),
		UserID:         userID,
		QuestionType:   questionType,
		Correct:        correct,
		ResponseTimeMs: responseTimeMs,
		Difficulty:     ClampDifficulty(difficulty),
		QuestionData:   questionData,
		CreatedAt:      time.Now().UTC(),
	}
	if err := attempt.Validate(); err != nil {
		return nil, err
	}
	return attempt, nil
}

// Validate checks the QuestionAttempt invariants.
func (a *QuestionAttempt) Validate() error {
	if a.UserID == "" {
		return ErrEmptyAttemptUserID
	}
	if !a.QuestionType.Valid() {
		return ErrEmptyAttemptTopic
	}
	return nil
}
