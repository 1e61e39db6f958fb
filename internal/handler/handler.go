package handler

import (
	"context"

	"github.com/yemmycode/alx-files-manager/internal/files"
	"github.com/yemmycode/alx-files-manager/internal/queue"
	"github.com/yemmycode/alx-files-manager/internal/session"
	"github.com/yemmycode/alx-files-manager/internal/users"
)

// MetadataStats is what the ops endpoints need from the metadata store.
type MetadataStats interface {
	IsAlive(ctx context.Context) bool
	CountUsers(ctx context.Context) (int64, error)
	CountFiles(ctx context.Context) (int64, error)
}

type Handler struct {
	sessions session.Store
	users    *users.Service
	files    *files.Service
	enqueuer queue.Enqueuer
	stats    MetadataStats
}

func NewHandler(
	sessions session.Store,
	userService *users.Service,
	fileService *files.Service,
	enqueuer queue.Enqueuer,
	stats MetadataStats,
) *Handler {
	return &Handler{
		sessions: sessions,
		users:    userService,
		files:    fileService,
		enqueuer: enqueuer,
		stats:    stats,
	}
}
