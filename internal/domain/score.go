package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for KnowledgeScore.
var (
	ErrEmptyScoreUserID      = errors.New("knowledge score user ID cannot be empty")
	ErrEmptyScoreTopic       = errors.New("knowledge score topic cannot be empty")
	ErrNegativeAttempts      = errors.New("attempt counters cannot be negative")
	ErrCorrectExceedsTotal   = errors.New("correct attempts cannot exceed total attempts")
	ErrStreakExceedsBest     = errors.New("current streak cannot exceed best streak")
	ErrDifficultyOutOfBounds = errors.New("difficulty must be between 1 and 5")
)

// KnowledgeScore tracks a user's progress on one topic. It is the single
// shared mutable record in the system; updates must be read-modify-write
// atomic per (user, topic).
type KnowledgeScore struct {
	ID                uuid.UUID    `json:"id"`
	UserID            string       `json:"user_id"`
	Topic             QuestionType `json:"topic"`
	TotalAttempts     int          `json:"total_attempts"`
	CorrectAttempts   int          `json:"correct_attempts"`
	CurrentStreak     int          `json:"current_streak"`
	BestStreak        int          `json:"best_streak"`
	CurrentDifficulty int          `json:"current_difficulty"`
	LastReviewed      time.Time    `json:"last_reviewed"`
	CreatedAt         time.Time    `json:"created_at"`
	UpdatedAt         time.Time    `json:"updated_at"`
}

// NewKnowledgeScore creates the initial score for a (user, topic) pair:
// difficulty 1, all counters zero.
func NewKnowledgeScore(userID string, topic QuestionType) (*KnowledgeScore, error) {
	now := time.Now().UTC()
	score := &KnowledgeScore{
		ID:                uuid.New(),
		UserID:            userID,
		Topic:             topic,
		CurrentDifficulty: MinDifficulty,
		LastReviewed:      now,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := score.Validate(); err != nil {
		return nil, err
	}
	return score, nil
}

// Accuracy returns the percentage of correct attempts, 0 with no attempts.
func (s *KnowledgeScore) Accuracy() float64 {
	if s.TotalAttempts == 0 {
		return 0
	}
	return float64(s.CorrectAttempts) / float64(s.TotalAttempts) * 100
}

// Validate checks the KnowledgeScore invariants.
func (s *KnowledgeScore) Validate() error {
	if s.UserID == "" {
		return ErrEmptyScoreUserID
	}
	if !s.Topic.Valid() {
		return ErrEmptyScoreTopic
	}
	if s.TotalAttempts < 0 || s.CorrectAttempts < 0 || s.CurrentStreak < 0 || s.BestStreak < 0 {
		return ErrNegativeAttempts
	}
	if s.CorrectAttempts > s.TotalAttempts {
		return ErrCorrectExceedsTotal
	}
	if s.CurrentStreak > s.BestStreak {
		return ErrStreakExceedsBest
	}
	if s.CurrentDifficulty < MinDifficulty || s.CurrentDifficulty > MaxDifficulty {
		return ErrDifficultyOutOfBounds
	}
	return nil
}
