package providers

import (
	"context"
)

// CacheProvider is the byte-oriented cache used for condition snapshots and
// HTTP response caching. Implementations must treat a missing key as an
// error so callers can fall through to the database.
type CacheProvider interface {
	// Get retrieves a value; returns an error on a miss
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value with a TTL in seconds
	Set(ctx context.Context, key string, value []byte, expirationSeconds int) error

	// Delete removes a key
	Delete(ctx context.Context, key string) error

	// Exists reports whether a key is present
	Exists(ctx context.Context, key string) (bool, error)
}
