package store

import (
	"context"

	"github.com/duelport/cardvault/internal/domain"
)

// LibraryFilter holds the optional search filters for the relational card
// library. An empty string means the filter is absent. Every present value
// is bound as a query parameter, never interpolated into the query text.
type LibraryFilter struct {
	Name      string
	Type      string
	Level     string
	Attribute string
	Archetype string
}

// LibraryStore searches the relational card library.
type LibraryStore interface {
	// Search returns the cards matching every present filter, ANDed
	// together. Level compares numerically, all other fields compare
	// case-insensitively.
	Search(ctx context.Context, filter LibraryFilter) ([]domain.LibraryCard, error)
}

// DeckStore manages a user's deck and recommendations.
type DeckStore interface {
	// ListDeck returns the cards in the user's deck, ordered by the stored
	// deck position ascending.
	ListDeck(ctx context.Context, userID int64) ([]domain.LibraryCard, error)

	// ListRecommended returns the cards recommended for the user, ordered
	// by descending relevance score.
	ListRecommended(ctx context.Context, userID int64) ([]domain.LibraryCard, error)

	// AddCard invokes the deck procedure, which enforces deck-membership
	// business rules. Returns ErrDeckRuleViolation when the procedure
	// rejects the addition; any other database failure is infrastructure.
	AddCard(ctx context.Context, userID, cardID int64) error
}

// UserStore authenticates and registers accounts. Password hashing and
// uniqueness policy are delegated to database-side routines.
type UserStore interface {
	// Authenticate checks the credentials via the database-side routine and
	// returns the public user record on success.
	// Returns ErrInvalidCredentials when the check fails.
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)

	// Register creates a new account via the database-side procedure.
	Register(ctx context.Context, username, password string) error
}
