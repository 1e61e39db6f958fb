package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/hibiken/asynq"
	"golang.org/x/sync/errgroup"

	"github.com/yemmycode/alx-files-manager/internal/files"
	"github.com/yemmycode/alx-files-manager/internal/logger"
	"github.com/yemmycode/alx-files-manager/internal/queue"
)

// Rendition widths, largest first. All three must succeed for the job
// to complete; a failed rendition fails the whole job.
var thumbnailWidths = []int{500, 250, 100}

// ThumbnailHandler consumes thumbnail jobs and writes resized
// renditions beside the original artifact. Reprocessing a delivered
// job overwrites the renditions in place, so redelivery is safe.
type ThumbnailHandler struct {
	files files.Store
}

func NewThumbnailHandler(store files.Store) *ThumbnailHandler {
	return &ThumbnailHandler{files: store}
}

func (h *ThumbnailHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var payload queue.ThumbnailPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("thumbnail: malformed payload: %v: %w", err, asynq.SkipRetry)
	}

	// A payload that is wrong now will be wrong on every redelivery.
	if payload.FileID == 0 {
		return fmt.Errorf("thumbnail: fileId is required: %w", asynq.SkipRetry)
	}
	if payload.UserID == "" {
		return fmt.Errorf("thumbnail: userId is required: %w", asynq.SkipRetry)
	}

	file, err := h.files.GetOwned(ctx, payload.FileID, payload.UserID)
	if errors.Is(err, files.ErrNotFound) {
		return fmt.Errorf("thumbnail: file not found: %w", asynq.SkipRetry)
	}
	if err != nil {
		return fmt.Errorf("thumbnail: resolve file %d: %w", payload.FileID, err)
	}

	src, format, err := decodeImage(file.LocalPath)
	if err != nil {
		return fmt.Errorf("thumbnail: decode %s: %v: %w", file.LocalPath, err, asynq.SkipRetry)
	}

	var g errgroup.Group
	for _, width := range thumbnailWidths {
		width := width
		g.Go(func() error {
			return renderThumbnail(src, format, file.LocalPath, width)
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("thumbnail: render for file %d: %w", payload.FileID, err)
	}

	logger.Info("thumbnails generated", map[string]any{
		"file_id": payload.FileID,
		"widths":  thumbnailWidths,
	})
	return nil
}

// decodeImage reads the artifact and sniffs its format from content;
// stored artifacts carry no file extension.
func decodeImage(path string) (image.Image, imaging.Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	src, formatName, err := image.Decode(f)
	if err != nil {
		return nil, 0, err
	}

	format, err := imaging.FormatFromExtension(formatName)
	if err != nil {
		return nil, 0, err
	}
	return src, format, nil
}

// renderThumbnail resizes to the given width, preserving aspect ratio,
// and writes the rendition beside the original. The rendition is
// staged in a temp file and renamed into place so a failed encode
// never leaves a truncated rendition at a servable path.
func renderThumbnail(src image.Image, format imaging.Format, basePath string, width int) error {
	thumb := imaging.Resize(src, width, 0, imaging.Lanczos)

	dest := files.RenditionPath(basePath, width)
	out, err := os.CreateTemp(filepath.Dir(dest), filepath.Base(dest)+".*")
	if err != nil {
		return err
	}

	if err := imaging.Encode(out, thumb, format); err != nil {
		out.Close()
		os.Remove(out.Name())
		return err
	}
	if err := out.Close(); err != nil {
		os.Remove(out.Name())
		return err
	}
	return os.Rename(out.Name(), dest)
}
