package services

import (
	"context"
	"errors"

	"github.com/inkwell-books/apiserver/internal/store"
	"github.com/inkwell-books/apiserver/types"
)

// UserRepository defines persistence operations for customer accounts.
type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (types.User, error)
	Create(ctx context.Context, user types.User) (types.User, error)
	Count(ctx context.Context) (int, error)
}

// UserService encapsulates customer account use-cases.
type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) GetByUsername(ctx context.Context, username string) (types.User, error) {
	return s.repo.GetByUsername(ctx, username)
}

func (s *UserService) Create(ctx context.Context, user types.User) (types.User, error) {
	return s.repo.Create(ctx, user)
}

// UsernameAvailable reports whether no account holds the given username.
func (s *UserService) UsernameAvailable(ctx context.Context, username string) (bool, error) {
	_, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return true, nil
		}
		return false, err
	}
	return false, nil
}
