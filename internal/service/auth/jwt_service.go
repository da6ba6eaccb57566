// Package auth provides the session token layer for the relational
// endpoints. Deck contents are private to their owner, so the deck routes
// require a server-issued token rather than trusting a caller-supplied
// user identifier.
package auth

import "context"

// Claims holds the verified claims extracted from a valid token.
type Claims struct {
	// UserID is the account the token was issued to.
	UserID int64
}

// JWTService issues and validates session tokens.
type JWTService interface {
	// GenerateToken creates a signed token for the given user.
	GenerateToken(ctx context.Context, userID int64) (string, error)

	// ValidateToken verifies a token and returns its claims.
	// Returns ErrExpiredToken or ErrInvalidToken on failure.
	ValidateToken(ctx context.Context, token string) (*Claims, error)
}
