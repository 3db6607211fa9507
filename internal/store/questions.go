package store

import (
	"context"

	"github.com/dpoletti/pokertrain/internal/domain"
)

// QuestionCache is the keyed store for in-flight questions. The lifecycle is
// write on generate, read-then-delete on answer; its implementation and
// ownership belong to the caller wiring the service. At most one pending
// lookup per question ID is assumed.
type QuestionCache interface {
	// Put stores a generated question under its ID.
	Put(ctx context.Context, question *domain.Question) error

	// Get returns the question for the given ID.
	// Returns ErrQuestionNotFound if absent.
	Get(ctx context.Context, questionID string) (*domain.Question, error)

	// Delete removes the question. Deleting an absent ID is not an error.
	Delete(ctx context.Context, questionID string) error
}
