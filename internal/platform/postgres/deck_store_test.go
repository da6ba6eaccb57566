package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsRaiseException(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "raise exception from the deck procedure",
			err:      &pgconn.PgError{Code: "P0001", Message: "deck is full"},
			expected: true,
		},
		{
			name:     "wrapped raise exception",
			err:      fmt.Errorf("exec: %w", &pgconn.PgError{Code: "P0001"}),
			expected: true,
		},
		{
			name:     "other database error",
			err:      &pgconn.PgError{Code: "23505", Message: "duplicate key"},
			expected: false,
		},
		{
			name:     "plain error",
			err:      errors.New("connection refused"),
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, isRaiseException(tc.err))
		})
	}
}
