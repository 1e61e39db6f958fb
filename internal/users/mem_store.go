package users

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// MemStore is an in-memory Store used by tests and local tooling.
type MemStore struct {
	mu      sync.Mutex
	byID    map[string]User
	byEmail map[string]string // lower(email) -> id
}

func NewMemStore() *MemStore {
	return &MemStore{
		byID:    make(map[string]User),
		byEmail: make(map[string]string),
	}
}

func (s *MemStore) Create(_ context.Context, email, passwordHash string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.ToLower(email)
	if _, exists := s.byEmail[key]; exists {
		return nil, ErrAlreadyExists
	}

	u := User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: passwordHash,
	}
	s.byID[u.ID] = u
	s.byEmail[key] = u.ID

	out := u
	return &out, nil
}

func (s *MemStore) GetByEmail(_ context.Context, email string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, ErrNotFound
	}
	u := s.byID[id]
	return &u, nil
}

func (s *MemStore) GetByID(_ context.Context, id string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := u
	return &out, nil
}
