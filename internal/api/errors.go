// Package api contains the HTTP handlers, request/response models, and
// error mapping for the training API.
package api

import (
	"errors"
	"net/http"

	"github.com/dpoletti/pokertrain/internal/domain"
	"github.com/dpoletti/pokertrain/internal/generation"
	"github.com/dpoletti/pokertrain/internal/store"
)

// MapErrorToStatusCode translates service and domain errors to HTTP status
// codes. Unknown errors map to 500.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, store.ErrQuestionNotFound):
		return http.StatusNotFound
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrUnknownQuestionType):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidDifficulty):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, generation.ErrUnknownQuestionType):
		return http.StatusBadRequest
	case errors.Is(err, generation.ErrSynthesisFailed):
		return http.StatusInternalServerError
	case errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a client-safe message for an error. Internal
// details stay in the logs.
func GetSafeErrorMessage(err error) string {
	switch {
	case errors.Is(err, store.ErrQuestionNotFound):
		return "Question not found. It may have expired; request a new one."
	case errors.Is(err, domain.ErrUnknownQuestionType),
		errors.Is(err, generation.ErrUnknownQuestionType):
		return "Unknown question type"
	case errors.Is(err, domain.ErrInvalidDifficulty):
		return "Difficulty must be between 1 and 5"
	case errors.Is(err, domain.ErrValidation):
		return "Invalid request"
	case errors.Is(err, store.ErrNotFound):
		return "Not found"
	case errors.Is(err, store.ErrDuplicate):
		return "Resource already exists"
	default:
		return "An internal error occurred"
	}
}
