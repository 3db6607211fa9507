// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrUnknownQuestionType is returned when a question type is not one of
	// the known topics.
	ErrUnknownQuestionType = errors.New("unknown question type")

	// ErrInvalidDifficulty is returned when a difficulty is outside [1,5].
	ErrInvalidDifficulty = errors.New("difficulty must be between 1 and 5")
)
