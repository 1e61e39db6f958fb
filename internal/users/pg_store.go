package users

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/yemmycode/alx-files-manager/internal/db"
)

type PGStore struct {
	db *db.DB
}

func NewPGStore(db *db.DB) *PGStore {
	return &PGStore{db: db}
}

func (s *PGStore) Create(ctx context.Context, email, passwordHash string) (*User, error) {
	var id string
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO users (email, password_hash)
		VALUES ($1, $2)
		RETURNING id
	`, email, passwordHash).Scan(&id)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return nil, ErrAlreadyExists
		}
		return nil, err
	}

	return &User{ID: id, Email: email, PasswordHash: passwordHash}, nil
}

func (s *PGStore) GetByEmail(ctx context.Context, email string) (*User, error) {
	u := &User{}
	err := s.db.QueryRowContext(ctx, `
		SELECT id, email, password_hash
		FROM users
		WHERE LOWER(email) = LOWER($1)
	`, email).Scan(&u.ID, &u.Email, &u.PasswordHash)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (s *PGStore) GetByID(ctx context.Context, id string) (*User, error) {
	// a malformed id would fail the uuid cast in Postgres; it names
	// no user either way
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNotFound
	}

	u := &User{}
	err := s.db.QueryRowContext(ctx, `
		SELECT id, email, password_hash
		FROM users
		WHERE id = $1
	`, id).Scan(&u.ID, &u.Email, &u.PasswordHash)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}
