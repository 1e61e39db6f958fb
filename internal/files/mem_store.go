package files

import (
	"context"
	"sort"
	"sync"
)

// MemStore is an in-memory Store used by tests and local tooling.
type MemStore struct {
	mu     sync.Mutex
	nextID int64
	files  map[int64]File
}

func NewMemStore() *MemStore {
	return &MemStore{
		nextID: 1,
		files:  make(map[int64]File),
	}
}

func (s *MemStore) Create(_ context.Context, f *File) (*File, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f.ID = s.nextID
	s.nextID++
	s.files[f.ID] = *f

	out := *f
	return &out, nil
}

func (s *MemStore) GetByID(_ context.Context, id int64) (*File, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.files[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := f
	return &out, nil
}

func (s *MemStore) GetOwned(_ context.Context, id int64, userID string) (*File, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.files[id]
	if !ok || f.UserID != userID {
		return nil, ErrNotFound
	}
	out := f
	return &out, nil
}

func (s *MemStore) List(_ context.Context, userID string, parentID int64, page int) ([]File, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if page < 0 {
		return []File{}, nil
	}

	matched := []File{}
	for _, f := range s.files {
		if f.UserID == userID && f.ParentID == parentID {
			matched = append(matched, f)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })

	start := page * PageSize
	if start >= len(matched) {
		return []File{}, nil
	}
	end := start + PageSize
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], nil
}

func (s *MemStore) SetPublic(_ context.Context, id int64, userID string, public bool) (*File, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.files[id]
	if !ok || f.UserID != userID {
		return nil, ErrNotFound
	}
	f.IsPublic = public
	s.files[id] = f

	out := f
	return &out, nil
}

func (s *MemStore) Delete(_ context.Context, id int64, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.files[id]
	if !ok || f.UserID != userID {
		return ErrNotFound
	}
	delete(s.files, id)
	return nil
}
