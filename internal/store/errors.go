package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the
	// store. This is the generic version of the entity-specific not found
	// errors (e.g., ErrCardNotFound).
	ErrNotFound = errors.New("entity not found")

	// ErrStorage is returned when the storage substrate itself fails:
	// an unreadable or malformed collection file, or an unreachable database.
	ErrStorage = errors.New("storage failure")

	// ErrInvalidCredentials is returned when a username/password pair fails
	// the database-side credential check.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrDeckRuleViolation is returned when the deck procedure rejects an
	// addition for a business-rule reason (capacity, duplicates, ...).
	// The rule itself lives in the database and is opaque to this layer.
	ErrDeckRuleViolation = errors.New("deck rule violation")

	// Entity-specific "not found" errors

	// ErrCardNotFound indicates that the requested card does not exist.
	ErrCardNotFound = fmt.Errorf("%w: card", ErrNotFound)

	// ErrUserNotFound indicates that the requested user does not exist.
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)
)

// IsNotFound reports whether the error is any kind of "not found" error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
