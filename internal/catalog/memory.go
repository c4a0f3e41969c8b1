package catalog

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sfaram/vidgrid/internal/models"
)

// MemoryStore is an in-process Store used for tests and local development.
type MemoryStore struct {
	mu     sync.Mutex
	videos map[string]models.Video
	order  map[string]int64 // insertion sequence, tie-break for equal timestamps
	seq    int64
	now    func() time.Time
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		videos: make(map[string]models.Video),
		order:  make(map[string]int64),
		now:    time.Now,
	}
}

// SetClock overrides the timestamp source. Intended for tests.
func (s *MemoryStore) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// List returns all entries ordered by CreatedAt descending.
func (s *MemoryStore) List(_ context.Context) ([]models.Video, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]models.Video, 0, len(s.videos))
	for _, v := range s.videos {
		result = append(result, v)
	}
	sort.Slice(result, func(i, j int) bool {
		a, b := result[i], result[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return s.order[a.ID] > s.order[b.ID]
	})
	return result, nil
}

// Create inserts a new entry with a generated id and the current timestamp.
func (s *MemoryStore) Create(_ context.Context, draft models.VideoDraft) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	s.seq++
	s.videos[id] = models.Video{
		ID:        id,
		URL:       draft.URL,
		Title:     draft.Title,
		Category:  draft.Category,
		Thumbnail: draft.Thumbnail,
		CreatedAt: s.now().UTC(),
	}
	s.order[id] = s.seq
	return id, nil
}

// Update replaces the mutable fields of an existing entry.
func (s *MemoryStore) Update(_ context.Context, id string, draft models.VideoDraft) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.videos[id]
	if !ok {
		return ErrNotFound
	}
	v.URL = draft.URL
	v.Title = draft.Title
	v.Category = draft.Category
	v.Thumbnail = draft.Thumbnail
	s.videos[id] = v
	return nil
}

// Delete removes an entry.
func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.videos[id]; !ok {
		return ErrNotFound
	}
	delete(s.videos, id)
	delete(s.order, id)
	return nil
}

// Ping always succeeds for the in-memory store.
func (s *MemoryStore) Ping(_ context.Context) error {
	return nil
}
