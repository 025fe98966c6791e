// Package cache stores generated batches so that seeded requests can be
// answered without regenerating them.
//
// Three backends implement [Cache]:
//
//   - [FileCache]: JSON envelopes on disk, used by the CLI
//   - [RedisCache]: a shared Redis instance, used by the HTTP server
//   - [NullCache]: never stores anything
//
// Keys are produced by a [Keyer]. [ScopedKeyer] adds a prefix so that several
// deployments can share one Redis database.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with per-entry expiry.
type Cache interface {
	// Get returns the stored value and whether it was found. A miss is not an
	// error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A zero ttl means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}

// TTLBatch is how long generated batches are kept. Seeded output never
// changes, so the limit only bounds storage.
const TTLBatch = 7 * 24 * time.Hour
