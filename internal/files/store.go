package files

import (
	"context"
	"errors"
)

// ErrNotFound covers both a missing record and a record owned by
// someone else; callers must not be able to tell them apart.
var ErrNotFound = errors.New("files: not found")

// PageSize is the fixed page size for listings.
const PageSize = 20

// Store persists file metadata. Listings are ordered by insertion.
type Store interface {
	Create(ctx context.Context, f *File) (*File, error)
	GetByID(ctx context.Context, id int64) (*File, error)
	GetOwned(ctx context.Context, id int64, userID string) (*File, error)
	List(ctx context.Context, userID string, parentID int64, page int) ([]File, error)
	SetPublic(ctx context.Context, id int64, userID string, public bool) (*File, error)
	Delete(ctx context.Context, id int64, userID string) error
}
