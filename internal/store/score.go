package store

import (
	"context"
	"database/sql"

	"github.com/dpoletti/pokertrain/internal/domain"
)

// KnowledgeScoreStore defines the interface for knowledge score persistence.
type KnowledgeScoreStore interface {
	// Create saves a new knowledge score. It handles domain validation
	// internally. Returns ErrScoreExists if a score for the (user, topic)
	// pair already exists.
	Create(ctx context.Context, score *domain.KnowledgeScore) error

	// Get retrieves the score for a user and topic without locking.
	// Returns ErrScoreNotFound if absent. Do not use this before an update
	// that needs concurrency protection.
	Get(ctx context.Context, userID string, topic domain.QuestionType) (*domain.KnowledgeScore, error)

	// GetForUpdate retrieves the score with a row-level lock (SELECT FOR
	// UPDATE). Use within a transaction before updating so concurrent
	// attempts for the same topic serialize. Returns ErrScoreNotFound if
	// absent.
	GetForUpdate(ctx context.Context, userID string, topic domain.QuestionType) (*domain.KnowledgeScore, error)

	// Update modifies an existing score, identified by its user ID and
	// topic. Returns ErrScoreNotFound if absent.
	Update(ctx context.Context, score *domain.KnowledgeScore) error

	// ListByUser returns all scores for a user, in no particular order.
	ListByUser(ctx context.Context, userID string) ([]*domain.KnowledgeScore, error)

	// DeleteByUser removes every score for a user. Deleting a user with no
	// scores is not an error.
	DeleteByUser(ctx context.Context, userID string) error

	// WithTx returns a store bound to the given transaction so multiple
	// operations can share it. The transaction lifecycle belongs to the
	// caller.
	WithTx(tx *sql.Tx) KnowledgeScoreStore
}
