package memory

import (
	"context"
	"sync"

	"Sociable/internal/core/users"
)

// UserRepository is a mutex-guarded in-memory user store for tests
type UserRepository struct {
	mu    sync.RWMutex
	store map[string]*users.User
}

// NewUserRepository creates an empty in-memory user repository
func NewUserRepository() *UserRepository {
	return &UserRepository{store: make(map[string]*users.User)}
}

// GetByID retrieves a user by id
func (r *UserRepository) GetByID(ctx context.Context, id string) (*users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.store[id]
	if !ok {
		return nil, users.ErrUserNotFound
	}

	cp := *user
	return &cp, nil
}

// Create inserts a new user
func (r *UserRepository) Create(ctx context.Context, user *users.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *user
	r.store[user.ID] = &cp
	return nil
}
