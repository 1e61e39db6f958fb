package files

import (
	"context"
	"encoding/base64"
	"errors"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"

	"github.com/yemmycode/alx-files-manager/internal/logger"
	"github.com/yemmycode/alx-files-manager/internal/queue"
)

// Validation and access errors. The messages double as response bodies.
var (
	ErrMissingName     = errors.New("Missing name")
	ErrMissingType     = errors.New("Missing type")
	ErrMissingData     = errors.New("Missing data")
	ErrInvalidData     = errors.New("Invalid data")
	ErrParentNotFound  = errors.New("Parent not found")
	ErrParentNotFolder = errors.New("Parent is not a folder")
	ErrFolderContent   = errors.New("A folder doesn't have content")
)

// Service owns upload validation, disk writes and the hierarchy rules.
type Service struct {
	store    Store
	enqueuer queue.Enqueuer
	root     string
}

func NewService(store Store, enqueuer queue.Enqueuer, root string) *Service {
	return &Service{
		store:    store,
		enqueuer: enqueuer,
		root:     root,
	}
}

type CreateRequest struct {
	Name     string
	Type     string
	ParentID int64
	IsPublic bool
	Data     string // base64, required for non-folder types
}

// Create validates the request, writes the decoded payload under the
// storage root, inserts the metadata record and, for images, enqueues a
// thumbnail job. The record is durable before the job carries its id.
func (s *Service) Create(ctx context.Context, userID string, req CreateRequest) (*File, error) {
	if req.Name == "" {
		return nil, ErrMissingName
	}
	if !validType(req.Type) {
		return nil, ErrMissingType
	}
	if req.Type != TypeFolder && req.Data == "" {
		return nil, ErrMissingData
	}

	if req.ParentID != RootParentID {
		parent, err := s.store.GetByID(ctx, req.ParentID)
		if errors.Is(err, ErrNotFound) {
			return nil, ErrParentNotFound
		}
		if err != nil {
			return nil, err
		}
		if parent.Type != TypeFolder {
			return nil, ErrParentNotFolder
		}
	}

	f := &File{
		UserID:   userID,
		Name:     req.Name,
		Type:     req.Type,
		ParentID: req.ParentID,
		IsPublic: req.IsPublic,
	}

	if req.Type != TypeFolder {
		data, err := base64.StdEncoding.DecodeString(req.Data)
		if err != nil {
			return nil, ErrInvalidData
		}

		if err := os.MkdirAll(s.root, 0o755); err != nil {
			return nil, err
		}

		// Fresh id per upload; never derived from the client's name.
		localPath := filepath.Join(s.root, uuid.NewString())
		if err := os.WriteFile(localPath, data, 0o644); err != nil {
			return nil, err
		}
		f.LocalPath = localPath
	}

	created, err := s.store.Create(ctx, f)
	if err != nil {
		return nil, err
	}

	if created.Type == TypeImage {
		if err := s.enqueuer.EnqueueThumbnail(ctx, created.ID, created.UserID); err != nil {
			// The upload itself succeeded; the file just has no renditions.
			logger.Warn("failed to enqueue thumbnail job", map[string]any{
				"file_id": created.ID,
				"error":   err.Error(),
			})
		}
	}

	return created, nil
}

// Show returns a file only to its owner; anything else is not found.
func (s *Service) Show(ctx context.Context, id int64, userID string) (*File, error) {
	return s.store.GetOwned(ctx, id, userID)
}

// Index lists the user's files under parentID, 20 per zero-based page.
// Out-of-range pages yield an empty page, never an error.
func (s *Service) Index(ctx context.Context, userID string, parentID int64, page int) ([]File, error) {
	return s.store.List(ctx, userID, parentID, page)
}

// SetPublic atomically flips visibility on a file the caller owns.
// Idempotent: re-publishing a public file succeeds and changes nothing.
func (s *Service) SetPublic(ctx context.Context, id int64, userID string, public bool) (*File, error) {
	return s.store.SetPublic(ctx, id, userID, public)
}

// Content returns the raw bytes of a file, or of a rendition when size
// is supplied for an image. requesterID is empty for anonymous callers.
// Ownership and visibility are re-checked against the store every call.
func (s *Service) Content(ctx context.Context, id int64, requesterID, size string) ([]byte, string, error) {
	f, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, "", err
	}

	if f.Type == TypeFolder {
		return nil, "", ErrFolderContent
	}

	if !f.IsPublic && (requesterID == "" || requesterID != f.UserID) {
		return nil, "", ErrNotFound
	}

	path := f.LocalPath
	if size != "" && f.Type == TypeImage {
		width, err := strconv.Atoi(size)
		if err != nil {
			return nil, "", ErrNotFound
		}
		// Never fall back to the original when the rendition is missing.
		path = RenditionPath(f.LocalPath, width)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		// Metadata and disk state may diverge after partial failures.
		if os.IsNotExist(err) {
			return nil, "", ErrNotFound
		}
		return nil, "", err
	}

	return data, f.Name, nil
}

// Delete removes the metadata record; the disk artifact is removed
// best-effort and its failure does not fail the operation.
func (s *Service) Delete(ctx context.Context, id int64, userID string) error {
	f, err := s.store.GetOwned(ctx, id, userID)
	if err != nil {
		return err
	}

	if err := s.store.Delete(ctx, id, userID); err != nil {
		return err
	}

	if f.LocalPath != "" {
		if err := os.Remove(f.LocalPath); err != nil && !os.IsNotExist(err) {
			logger.Warn("failed to remove artifact", map[string]any{
				"file_id": id,
				"error":   err.Error(),
			})
		}
	}

	return nil
}
