package api

// Common request/response structures

// loginParams lists the credential fields in validation order.
var loginParams = []string{"username", "password"}

// deckParams lists the deck-addition fields in validation order.
var deckParams = []string{"user_id", "card_id"}

// AuthResponse defines the successful response for the login endpoint.
// UserID and Username are what the frontend stores; Token is the session
// token the deck routes require.
type AuthResponse struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Token    string `json:"token,omitempty"`
}
