// Package cache stores rendered diagram artifacts on disk so repeated
// renders of the same document skip the Graphviz pass.
package cache

import "context"

// Cache persists opaque byte blobs under string keys.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key
	// was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value, overwriting any existing entry.
	Set(ctx context.Context, key string, data []byte) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}
