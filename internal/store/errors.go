package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the
	// store. Entity-specific variants below wrap it.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate of
	// a unique entity.
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when an entity fails validation before
	// being stored. Check the wrapped error for specific validation details.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrTransactionFailed is returned when a database transaction fails to
	// commit or when an operation within a transaction fails.
	ErrTransactionFailed = errors.New("transaction failed")

	// ErrScoreNotFound indicates the requested knowledge score row is absent.
	ErrScoreNotFound = fmt.Errorf("%w: knowledge score", ErrNotFound)

	// ErrQuestionNotFound indicates the question is absent from the question
	// cache (expired, answered, or never issued).
	ErrQuestionNotFound = fmt.Errorf("%w: question", ErrNotFound)

	// ErrScoreExists indicates a score for the (user, topic) pair already
	// exists.
	ErrScoreExists = fmt.Errorf("%w: knowledge score", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}
