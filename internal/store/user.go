package store

import (
	"context"
	"sync"
	"time"

	"github.com/inkwell-books/apiserver/types"
)

// UserRepository holds the in-memory customer directory.
type UserRepository struct {
	mu    sync.RWMutex
	users map[string]types.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]types.User)}
}

// GetByUsername returns the account with the given username or ErrNotFound.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (types.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[username]
	if !ok {
		return types.User{}, ErrNotFound
	}
	return user, nil
}

// Create appends a new account. A username that is already taken
// returns ErrDuplicate; the uniqueness check and the insert happen
// under one lock, so of two racing registrations exactly one wins.
func (r *UserRepository) Create(ctx context.Context, user types.User) (types.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[user.Username]; exists {
		return types.User{}, ErrDuplicate
	}
	user.CreatedAt = time.Now()
	r.users[user.Username] = user
	return user, nil
}

// Count reports the number of registered accounts.
func (r *UserRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users), nil
}
