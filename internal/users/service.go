package users

import (
	"context"
	"errors"
)

var ErrInvalidCredentials = errors.New("users: invalid credentials")

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Register creates an account for the given email. The email must not
// already be taken; the password is stored as a bcrypt hash only.
func (s *Service) Register(
	ctx context.Context,
	email string,
	password string,
) (*User, error) {

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	return s.store.Create(ctx, email, hash)
}

// Authenticate verifies an email/password pair. A missing user and a
// wrong password are indistinguishable to the caller.
func (s *Service) Authenticate(
	ctx context.Context,
	email string,
	password string,
) (*User, error) {

	user, err := s.store.GetByEmail(ctx, email)
	if err != nil {
		// hide whether the user exists or not
		return nil, ErrInvalidCredentials
	}

	if err := VerifyPassword(user.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// GetByID looks up a user by id.
func (s *Service) GetByID(ctx context.Context, id string) (*User, error) {
	return s.store.GetByID(ctx, id)
}
