package domain

// User is the public view of a registered account. The password hash never
// leaves the database; credential checks happen in the database-side
// authenticate function.
type User struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
}
