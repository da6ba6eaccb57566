package store

import (
	"context"

	"github.com/duelport/cardvault/internal/domain"
)

// CardFilter holds the optional list filters, raw as received from the
// request. An empty string means the filter is absent.
type CardFilter struct {
	// Name matches as a case-insensitive substring.
	Name string
	// Type matches exactly.
	Type string
	// Level matches numerically; a non-numeric value matches nothing.
	Level string
	// Attribute matches case-insensitively; cards without an attribute
	// never match.
	Attribute string
	// Archetype matches as a case-insensitive substring; cards without an
	// archetype never match.
	Archetype string
}

// CardStore defines the interface for the flat-file card collection.
type CardStore interface {
	// List returns the cards matching every present filter, in storage order.
	// Missing filters never error; only a storage read failure does.
	List(ctx context.Context, filter CardFilter) ([]domain.Card, error)

	// ListPromos returns the cards with a non-null sale price.
	ListPromos(ctx context.Context) ([]domain.Card, error)

	// GetByID retrieves a card by its identifier.
	// Returns ErrCardNotFound if the card does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Card, error)

	// Create validates the given request fields against the card schema,
	// assigns a fresh identifier and appends the card to the collection.
	// Returns a domain.ValidationError naming the first missing required
	// field. The sale_price field is optional and defaults to null.
	Create(ctx context.Context, fields map[string]any) (*domain.Card, error)

	// Update overwrites the stored value of each schema field whose request
	// value is present and non-falsy; empty strings and zeroes are treated
	// as "not provided" and ignored.
	// Returns ErrCardNotFound if the card does not exist.
	Update(ctx context.Context, id int64, fields map[string]any) (*domain.Card, error)

	// Delete removes a card by its identifier and returns the removed card.
	// Returns ErrCardNotFound if the card does not exist.
	Delete(ctx context.Context, id int64) (*domain.Card, error)
}

// FeedbackStore defines the interface for the feedback collection.
type FeedbackStore interface {
	// Create validates that every feedback field is present and non-empty,
	// assigns a timestamp identifier and appends the entry.
	// Returns a domain.ValidationError naming the first missing field.
	Create(ctx context.Context, fields map[string]any) (*domain.Feedback, error)
}

// FAQStore defines the interface for the read-only FAQ collection.
type FAQStore interface {
	List(ctx context.Context) ([]domain.FAQ, error)
}
