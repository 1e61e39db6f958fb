package files

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/yemmycode/alx-files-manager/internal/db"
)

type PGStore struct {
	db *db.DB
}

func NewPGStore(db *db.DB) *PGStore {
	return &PGStore{db: db}
}

func (s *PGStore) Create(ctx context.Context, f *File) (*File, error) {
	localPath := sql.NullString{String: f.LocalPath, Valid: f.LocalPath != ""}

	err := s.db.QueryRowContext(ctx, `
		INSERT INTO files (user_id, name, type, parent_id, is_public, local_path)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`,
		f.UserID, f.Name, f.Type, f.ParentID, f.IsPublic, localPath,
	).Scan(&f.ID)

	if err != nil {
		return nil, err
	}
	return f, nil
}

func (s *PGStore) GetByID(ctx context.Context, id int64) (*File, error) {
	return s.scanOne(s.db.QueryRowContext(ctx, `
		SELECT id, user_id, name, type, parent_id, is_public, local_path
		FROM files
		WHERE id = $1
	`, id))
}

func (s *PGStore) GetOwned(ctx context.Context, id int64, userID string) (*File, error) {
	// job payloads carry the owner id; a malformed one would fail the
	// uuid cast in Postgres, and it names no owner either way
	if _, err := uuid.Parse(userID); err != nil {
		return nil, ErrNotFound
	}

	return s.scanOne(s.db.QueryRowContext(ctx, `
		SELECT id, user_id, name, type, parent_id, is_public, local_path
		FROM files
		WHERE id = $1 AND user_id = $2
	`, id, userID))
}

func (s *PGStore) List(ctx context.Context, userID string, parentID int64, page int) ([]File, error) {
	if page < 0 {
		return []File{}, nil
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, name, type, parent_id, is_public, local_path
		FROM files
		WHERE user_id = $1 AND parent_id = $2
		ORDER BY id
		LIMIT $3 OFFSET $4
	`, userID, parentID, PageSize, page*PageSize)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []File{}
	for rows.Next() {
		var (
			f         File
			localPath sql.NullString
		)
		if err := rows.Scan(
			&f.ID, &f.UserID, &f.Name, &f.Type,
			&f.ParentID, &f.IsPublic, &localPath,
		); err != nil {
			return nil, err
		}
		f.LocalPath = localPath.String
		out = append(out, f)
	}
	return out, rows.Err()
}

func (s *PGStore) SetPublic(ctx context.Context, id int64, userID string, public bool) (*File, error) {
	return s.scanOne(s.db.QueryRowContext(ctx, `
		UPDATE files
		SET is_public = $3
		WHERE id = $1 AND user_id = $2
		RETURNING id, user_id, name, type, parent_id, is_public, local_path
	`, id, userID, public))
}

func (s *PGStore) Delete(ctx context.Context, id int64, userID string) error {
	res, err := s.db.ExecContext(ctx, `
		DELETE FROM files
		WHERE id = $1 AND user_id = $2
	`, id, userID)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PGStore) scanOne(row *sql.Row) (*File, error) {
	var (
		f         File
		localPath sql.NullString
	)
	err := row.Scan(
		&f.ID, &f.UserID, &f.Name, &f.Type,
		&f.ParentID, &f.IsPublic, &localPath,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	f.LocalPath = localPath.String
	return &f, nil
}
