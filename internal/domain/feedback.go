package domain

// FeedbackParams lists the required feedback fields in validation order.
var FeedbackParams = []string{"name", "email", "message"}

// Feedback is one user-submitted feedback entry. The identifier is the
// millisecond timestamp at creation time.
type Feedback struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}
