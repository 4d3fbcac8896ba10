package memory

import (
	"context"
	"sync"

	"github.com/rawal21/stayfinder/internal/storage"
)

// ensure memoryStore implements storage.Store
var _ storage.Store = (*memoryStore)(nil)

type memoryStore struct {
	mu      sync.RWMutex
	entries map[string]string
}

// New creates an in-memory storage.Store. Entries live for the process
// lifetime only; use the sqlite or postgres store for durability.
func New() storage.Store {
	return &memoryStore{entries: make(map[string]string)}
}

func (s *memoryStore) Get(ctx context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.entries[key]
	return v, ok, nil
}

func (s *memoryStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[key]; ok {
		return nil
	}
	s.entries[key] = value
	return nil
}

func (s *memoryStore) Close() error {
	return nil
}
