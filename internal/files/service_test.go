package files

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yemmycode/alx-files-manager/internal/queue"
)

type fakeEnqueuer struct {
	thumbnails []queue.ThumbnailPayload
	emails     []queue.WelcomeEmailPayload
	fail       bool
}

func (f *fakeEnqueuer) EnqueueThumbnail(_ context.Context, fileID int64, userID string) error {
	if f.fail {
		return errors.New("queue down")
	}
	f.thumbnails = append(f.thumbnails, queue.ThumbnailPayload{FileID: fileID, UserID: userID})
	return nil
}

func (f *fakeEnqueuer) EnqueueWelcomeEmail(_ context.Context, userID string) error {
	if f.fail {
		return errors.New("queue down")
	}
	f.emails = append(f.emails, queue.WelcomeEmailPayload{UserID: userID})
	return nil
}

func newTestService(t *testing.T) (*Service, *MemStore, *fakeEnqueuer) {
	t.Helper()
	store := NewMemStore()
	enq := &fakeEnqueuer{}
	return NewService(store, enq, t.TempDir()), store, enq
}

func b64(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

func TestCreateValidation(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	cases := []struct {
		name string
		req  CreateRequest
		want error
	}{
		{"missing name", CreateRequest{Type: TypeFile, Data: b64("x")}, ErrMissingName},
		{"missing type", CreateRequest{Name: "a.txt", Data: b64("x")}, ErrMissingType},
		{"bad type", CreateRequest{Name: "a.txt", Type: "archive", Data: b64("x")}, ErrMissingType},
		{"missing data", CreateRequest{Name: "a.txt", Type: TypeFile}, ErrMissingData},
		{"bad base64", CreateRequest{Name: "a.txt", Type: TypeFile, Data: "%%%"}, ErrInvalidData},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(ctx, "user-1", tc.req)
			if !errors.Is(err, tc.want) {
				t.Errorf("Create: err = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestCreateFolder(t *testing.T) {
	svc, _, enq := newTestService(t)

	f, err := svc.Create(context.Background(), "user-1", CreateRequest{
		Name: "docs",
		Type: TypeFolder,
	})
	if err != nil {
		t.Fatalf("Create folder: %v", err)
	}
	if f.LocalPath != "" {
		t.Errorf("folder has LocalPath %q, want empty", f.LocalPath)
	}
	if f.IsPublic {
		t.Error("new folder is public, want private by default")
	}
	if len(enq.thumbnails) != 0 {
		t.Error("folder creation enqueued a thumbnail job")
	}
}

func TestCreateFileWritesArtifact(t *testing.T) {
	store := NewMemStore()
	root := t.TempDir()
	svc := NewService(store, &fakeEnqueuer{}, root)

	f, err := svc.Create(context.Background(), "user-1", CreateRequest{
		Name: "hello.txt",
		Type: TypeFile,
		Data: b64("Hello Webstack!"),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	stored, err := store.GetByID(context.Background(), f.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if stored.LocalPath == "" {
		t.Fatal("stored file has no LocalPath")
	}
	if filepath.Dir(stored.LocalPath) != root {
		t.Errorf("artifact written to %q, want under %q", stored.LocalPath, root)
	}
	if strings.Contains(filepath.Base(stored.LocalPath), "hello") {
		t.Errorf("artifact name %q derived from user-supplied name", stored.LocalPath)
	}

	data, err := os.ReadFile(stored.LocalPath)
	if err != nil {
		t.Fatalf("reading artifact: %v", err)
	}
	if string(data) != "Hello Webstack!" {
		t.Errorf("artifact content = %q", data)
	}
}

func TestCreateImageEnqueuesThumbnailJob(t *testing.T) {
	svc, _, enq := newTestService(t)
	ctx := context.Background()

	img, err := svc.Create(ctx, "user-1", CreateRequest{
		Name: "pic",
		Type: TypeImage,
		Data: b64("not-really-an-image"),
	})
	if err != nil {
		t.Fatalf("Create image: %v", err)
	}

	if len(enq.thumbnails) != 1 {
		t.Fatalf("thumbnail jobs = %d, want 1", len(enq.thumbnails))
	}
	job := enq.thumbnails[0]
	if job.FileID != img.ID || job.UserID != "user-1" {
		t.Errorf("job = %+v, want {FileID:%d UserID:user-1}", job, img.ID)
	}

	// plain files never enqueue
	if _, err := svc.Create(ctx, "user-1", CreateRequest{
		Name: "a.txt", Type: TypeFile, Data: b64("x"),
	}); err != nil {
		t.Fatalf("Create file: %v", err)
	}
	if len(enq.thumbnails) != 1 {
		t.Errorf("thumbnail jobs = %d after plain file, want 1", len(enq.thumbnails))
	}
}

func TestCreateEnqueueFailureDoesNotFailUpload(t *testing.T) {
	store := NewMemStore()
	svc := NewService(store, &fakeEnqueuer{fail: true}, t.TempDir())

	img, err := svc.Create(context.Background(), "user-1", CreateRequest{
		Name: "pic",
		Type: TypeImage,
		Data: b64("payload"),
	})
	if err != nil {
		t.Fatalf("Create with failing queue: %v", err)
	}
	if img.ID == 0 {
		t.Error("created image has no id")
	}
}

func TestCreateParentValidation(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	folder, err := svc.Create(ctx, "user-1", CreateRequest{Name: "docs", Type: TypeFolder})
	if err != nil {
		t.Fatalf("Create folder: %v", err)
	}
	plain, err := svc.Create(ctx, "user-1", CreateRequest{
		Name: "a.txt", Type: TypeFile, Data: b64("x"),
	})
	if err != nil {
		t.Fatalf("Create file: %v", err)
	}

	_, err = svc.Create(ctx, "user-1", CreateRequest{
		Name: "b.txt", Type: TypeFile, Data: b64("x"), ParentID: 9999,
	})
	if !errors.Is(err, ErrParentNotFound) {
		t.Errorf("unknown parent: err = %v, want ErrParentNotFound", err)
	}

	_, err = svc.Create(ctx, "user-1", CreateRequest{
		Name: "b.txt", Type: TypeFile, Data: b64("x"), ParentID: plain.ID,
	})
	if !errors.Is(err, ErrParentNotFolder) {
		t.Errorf("non-folder parent: err = %v, want ErrParentNotFolder", err)
	}

	nested, err := svc.Create(ctx, "user-1", CreateRequest{
		Name: "b.txt", Type: TypeFile, Data: b64("x"), ParentID: folder.ID,
	})
	if err != nil {
		t.Fatalf("Create under folder: %v", err)
	}
	if nested.ParentID != folder.ID {
		t.Errorf("nested.ParentID = %d, want %d", nested.ParentID, folder.ID)
	}
}

func TestShowHidesOtherUsersFiles(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	f, err := svc.Create(ctx, "user-a", CreateRequest{Name: "docs", Type: TypeFolder})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := svc.Show(ctx, f.ID, "user-a"); err != nil {
		t.Errorf("owner Show: %v", err)
	}
	if _, err := svc.Show(ctx, f.ID, "user-b"); !errors.Is(err, ErrNotFound) {
		t.Errorf("other user Show: err = %v, want ErrNotFound", err)
	}
}

func TestIndexPagination(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	for i := 0; i < 25; i++ {
		_, err := svc.Create(ctx, "user-1", CreateRequest{
			Name: fmt.Sprintf("f%02d", i),
			Type: TypeFolder,
		})
		if err != nil {
			t.Fatalf("Create #%d: %v", i, err)
		}
	}

	page0, err := svc.Index(ctx, "user-1", RootParentID, 0)
	if err != nil {
		t.Fatalf("Index page 0: %v", err)
	}
	if len(page0) != PageSize {
		t.Errorf("page 0 size = %d, want %d", len(page0), PageSize)
	}

	page1, err := svc.Index(ctx, "user-1", RootParentID, 1)
	if err != nil {
		t.Fatalf("Index page 1: %v", err)
	}
	if len(page1) != 5 {
		t.Errorf("page 1 size = %d, want 5", len(page1))
	}
	if page1[0].ID <= page0[len(page0)-1].ID {
		t.Error("pages overlap or are out of insertion order")
	}

	page2, err := svc.Index(ctx, "user-1", RootParentID, 2)
	if err != nil {
		t.Fatalf("Index page 2: %v", err)
	}
	if len(page2) != 0 {
		t.Errorf("page 2 size = %d, want empty page", len(page2))
	}
}

func TestSetPublicIdempotent(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	f, err := svc.Create(ctx, "user-1", CreateRequest{Name: "docs", Type: TypeFolder})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	for i := 0; i < 2; i++ {
		got, err := svc.SetPublic(ctx, f.ID, "user-1", true)
		if err != nil {
			t.Fatalf("publish #%d: %v", i, err)
		}
		if !got.IsPublic {
			t.Errorf("publish #%d: IsPublic = false", i)
		}
	}

	for i := 0; i < 2; i++ {
		got, err := svc.SetPublic(ctx, f.ID, "user-1", false)
		if err != nil {
			t.Fatalf("unpublish #%d: %v", i, err)
		}
		if got.IsPublic {
			t.Errorf("unpublish #%d: IsPublic = true", i)
		}
	}

	if _, err := svc.SetPublic(ctx, f.ID, "user-2", true); !errors.Is(err, ErrNotFound) {
		t.Errorf("publish by non-owner: err = %v, want ErrNotFound", err)
	}
}

func TestContentFolderFails(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	f, err := svc.Create(ctx, "user-1", CreateRequest{Name: "docs", Type: TypeFolder})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// fails for the owner and for anonymous callers alike
	if _, _, err := svc.Content(ctx, f.ID, "user-1", ""); !errors.Is(err, ErrFolderContent) {
		t.Errorf("owner: err = %v, want ErrFolderContent", err)
	}
	if _, _, err := svc.Content(ctx, f.ID, "", ""); !errors.Is(err, ErrFolderContent) {
		t.Errorf("anonymous: err = %v, want ErrFolderContent", err)
	}
}

func TestContentVisibility(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	f, err := svc.Create(ctx, "user-1", CreateRequest{
		Name: "secret.txt", Type: TypeFile, Data: b64("top secret"),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, _, err := svc.Content(ctx, f.ID, "", ""); !errors.Is(err, ErrNotFound) {
		t.Errorf("anonymous private read: err = %v, want ErrNotFound", err)
	}
	if _, _, err := svc.Content(ctx, f.ID, "user-2", ""); !errors.Is(err, ErrNotFound) {
		t.Errorf("non-owner private read: err = %v, want ErrNotFound", err)
	}

	data, name, err := svc.Content(ctx, f.ID, "user-1", "")
	if err != nil {
		t.Fatalf("owner read: %v", err)
	}
	if !bytes.Equal(data, []byte("top secret")) {
		t.Errorf("owner read = %q", data)
	}
	if name != "secret.txt" {
		t.Errorf("name = %q, want secret.txt", name)
	}

	if _, err := svc.SetPublic(ctx, f.ID, "user-1", true); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if _, _, err := svc.Content(ctx, f.ID, "", ""); err != nil {
		t.Errorf("anonymous public read: %v", err)
	}
}

func TestContentRendition(t *testing.T) {
	svc, store, _ := newTestService(t)
	ctx := context.Background()

	img, err := svc.Create(ctx, "user-1", CreateRequest{
		Name: "pic.png", Type: TypeImage, Data: b64("original"), IsPublic: true,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	stored, err := store.GetByID(ctx, img.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}

	// rendition not generated yet: no silent fallback to the original
	if _, _, err := svc.Content(ctx, img.ID, "", "100"); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing rendition: err = %v, want ErrNotFound", err)
	}

	if err := os.WriteFile(RenditionPath(stored.LocalPath, 100), []byte("tiny"), 0o644); err != nil {
		t.Fatalf("writing rendition: %v", err)
	}

	data, _, err := svc.Content(ctx, img.ID, "", "100")
	if err != nil {
		t.Fatalf("rendition read: %v", err)
	}
	if string(data) != "tiny" {
		t.Errorf("rendition read = %q, want the rendition, not the original", data)
	}

	if _, _, err := svc.Content(ctx, img.ID, "", "999"); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown size: err = %v, want ErrNotFound", err)
	}
}

func TestContentMissingArtifact(t *testing.T) {
	svc, store, _ := newTestService(t)
	ctx := context.Background()

	f, err := svc.Create(ctx, "user-1", CreateRequest{
		Name: "a.txt", Type: TypeFile, Data: b64("x"), IsPublic: true,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	stored, _ := store.GetByID(ctx, f.ID)
	if err := os.Remove(stored.LocalPath); err != nil {
		t.Fatalf("removing artifact: %v", err)
	}

	// metadata still present, disk artifact gone
	if _, _, err := svc.Content(ctx, f.ID, "", ""); !errors.Is(err, ErrNotFound) {
		t.Errorf("diverged state read: err = %v, want ErrNotFound", err)
	}
}

func TestDelete(t *testing.T) {
	svc, store, _ := newTestService(t)
	ctx := context.Background()

	f, err := svc.Create(ctx, "user-1", CreateRequest{
		Name: "a.txt", Type: TypeFile, Data: b64("x"),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	stored, _ := store.GetByID(ctx, f.ID)

	if err := svc.Delete(ctx, f.ID, "user-2"); !errors.Is(err, ErrNotFound) {
		t.Errorf("delete by non-owner: err = %v, want ErrNotFound", err)
	}

	if err := svc.Delete(ctx, f.ID, "user-1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.GetByID(ctx, f.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("metadata still present after delete")
	}
	if _, err := os.Stat(stored.LocalPath); !os.IsNotExist(err) {
		t.Errorf("artifact still on disk after delete")
	}
}

func TestDeleteSurvivesMissingArtifact(t *testing.T) {
	svc, store, _ := newTestService(t)
	ctx := context.Background()

	f, err := svc.Create(ctx, "user-1", CreateRequest{
		Name: "a.txt", Type: TypeFile, Data: b64("x"),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	stored, _ := store.GetByID(ctx, f.ID)
	if err := os.Remove(stored.LocalPath); err != nil {
		t.Fatalf("removing artifact: %v", err)
	}

	if err := svc.Delete(ctx, f.ID, "user-1"); err != nil {
		t.Errorf("Delete with artifact gone: %v", err)
	}
}
