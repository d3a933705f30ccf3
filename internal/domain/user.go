package domain

import "context"

// User represents a registered account.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Firstname    string    `json:"firstname"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"`
	CreatedAt    Timestamp `json:"createdAt"`
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	// Create appends the user. It fails with ErrDuplicateEmail when another
	// user already holds the same email.
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
}
