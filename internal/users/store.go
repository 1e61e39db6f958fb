package users

import (
	"context"
	"errors"
)

var (
	ErrAlreadyExists = errors.New("users: already exists")
	ErrNotFound      = errors.New("users: not found")
)

// Store persists user records. Email is unique, case-insensitively.
type Store interface {
	Create(ctx context.Context, email, passwordHash string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
}
