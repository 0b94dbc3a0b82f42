package users

import (
	"context"
	"time"
)

// User is an account managed by the external authentication service.
// This service only reads users: to verify they exist and to hydrate
// author fields on posts and comments.
type User struct {
	ID          string    `json:"id"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Location    string    `json:"location"`
	PicturePath string    `json:"picturePath,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Repository defines the data access interface for users
type Repository interface {
	// GetByID retrieves a user by id
	// Returns ErrUserNotFound if no such user exists
	GetByID(ctx context.Context, id string) (*User, error)

	// Create inserts a new user
	// Accounts are normally provisioned by the auth service; this exists for
	// seeding and tests
	Create(ctx context.Context, user *User) error
}
