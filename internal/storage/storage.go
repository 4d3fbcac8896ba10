package storage

import "context"

// Store is a durable key-value store backing the destination-code cache.
// Keys are normalized location strings, values are resolved vendor codes.
//
// Entries are write-once: setting an existing key keeps the original value
// (first write wins). Resolved codes are stable, so concurrent writers
// racing on the same key is a benign race and no store needs to arbitrate
// beyond ignoring the duplicate.
type Store interface {
	// Get returns the cached value for key, reporting whether it exists.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set records value under key unless the key is already present.
	Set(ctx context.Context, key, value string) error
	Close() error
}
