package store

import (
	"context"
	"database/sql"

	"github.com/dpoletti/pokertrain/internal/domain"
)

// QuestionAttemptStore defines the interface for the append-only attempt log.
type QuestionAttemptStore interface {
	// Create appends an attempt record. Records are immutable once written.
	Create(ctx context.Context, attempt *domain.QuestionAttempt) error

	// ListRecentByUser returns the user's most recent attempts, newest
	// first, capped at limit.
	ListRecentByUser(ctx context.Context, userID string, limit int) ([]*domain.QuestionAttempt, error)

	// DeleteByUser removes every attempt for a user. Used only by the
	// explicit stats reset.
	DeleteByUser(ctx context.Context, userID string) error

	// WithTx returns a store bound to the given transaction.
	WithTx(tx *sql.Tx) QuestionAttemptStore
}
