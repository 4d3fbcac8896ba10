package jsonbackend

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/rawal21/stayfinder/internal/storage"
)

// ensure jsonStore implements storage.Store
var _ storage.Store = (*jsonStore)(nil)

type entry struct {
	Location string `json:"location"`
	Code     string `json:"code"`
}

// jsonStore persists destination codes as an NDJSON append log. All
// entries are indexed in memory at open; the cache is append-only so the
// log never needs compaction.
type jsonStore struct {
	mu      sync.Mutex
	file    *os.File
	entries map[string]string
}

// New creates a new NDJSON-backed storage.Store.
func New(filePath string) (storage.Store, error) {
	f, err := os.OpenFile(filePath, os.O_APPEND|os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, fmt.Errorf("open json store: %w", err)
	}

	entries := make(map[string]string)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var e entry
		if err := json.Unmarshal(line, &e); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("parse json store: %w", err)
		}
		// Earlier lines win if a duplicate somehow got appended.
		if _, ok := entries[e.Location]; !ok {
			entries[e.Location] = e.Code
		}
	}
	if err := scanner.Err(); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("read json store: %w", err)
	}

	return &jsonStore{file: f, entries: entries}, nil
}

func (s *jsonStore) Get(ctx context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.entries[key]
	return v, ok, nil
}

func (s *jsonStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[key]; ok {
		return nil
	}

	data, err := json.Marshal(entry{Location: key, Code: value})
	if err != nil {
		return fmt.Errorf("encode json store entry: %w", err)
	}
	if _, err := s.file.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("append to json store: %w", err)
	}

	s.entries[key] = value
	return nil
}

func (s *jsonStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.file.Close()
}
