package api

import (
	"errors"
	"net/http"

	"github.com/duelport/cardvault/internal/domain"
	"github.com/duelport/cardvault/internal/service/auth"
	"github.com/duelport/cardvault/internal/store"
)

// serverErrorMessage is the generic infrastructure failure message; any
// error without a safer mapping falls back to it.
const serverErrorMessage = "Server error. Please try again later."

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Validation errors
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrDeckRuleViolation):
		return http.StatusBadRequest

	// Authentication errors
	case errors.Is(err, store.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrMissingToken):
		return http.StatusUnauthorized

	// Not found errors
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Default: infrastructure error
	default:
		return http.StatusInternalServerError
	}
}

// SafeErrorMessage returns the user-facing message for the error. Validation
// errors carry their own client text; everything else maps to a fixed
// message so internal details never leak.
func SafeErrorMessage(err error) string {
	if err == nil {
		return serverErrorMessage
	}

	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Message
	}

	switch {
	case errors.Is(err, store.ErrCardNotFound):
		return "Card ID not found."

	case errors.Is(err, store.ErrDeckRuleViolation):
		return "Cannot add card to deck."

	case errors.Is(err, store.ErrInvalidCredentials):
		return "Invalid username or password"

	case errors.Is(err, auth.ErrExpiredToken):
		return "Token expired"

	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrMissingToken):
		return "Invalid token"

	default:
		return serverErrorMessage
	}
}
