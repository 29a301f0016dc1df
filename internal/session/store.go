package session

import (
	"context"
	"sync"

	"github.com/spec-kit/gradebook-console/internal/domain"
)

// Record is the persisted session unit: the signed token and the cached
// user projection. The two are always saved and cleared together.
type Record struct {
	Token string              `json:"token"`
	User  *domain.CurrentUser `json:"user,omitempty"`
}

// Store persists the session record across runs. Load returns (nil, nil)
// when no record exists.
type Store interface {
	Load(ctx context.Context) (*Record, error)
	Save(ctx context.Context, rec *Record) error
	Clear(ctx context.Context) error
}

// MemoryStore keeps the record in memory only. Used in tests and for
// ephemeral sessions.
type MemoryStore struct {
	mu  sync.Mutex
	rec *Record
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load(context.Context) (*Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rec, nil
}

func (s *MemoryStore) Save(_ context.Context, rec *Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rec = rec
	return nil
}

func (s *MemoryStore) Clear(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rec = nil
	return nil
}
