// Package cache stores rendered maze artifacts so identical requests can
// skip regeneration and re-rendering.
//
// Because generation is fully deterministic, an artifact is uniquely
// identified by its generation parameters and output format; Key hashes
// those into a stable cache key. Two backends are provided: a file-based
// cache for the CLI and server, and a null cache for tests or when
// caching is disabled.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented artifact store with optional expiry.
type Cache interface {
	// Get returns the cached artifact for key and whether it was found.
	// A miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores an artifact under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes an artifact if present.
	Delete(ctx context.Context, key string) error

	// Close releases any backend resources.
	Close() error
}
