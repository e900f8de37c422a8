package cache

import (
	"context"
	"time"
)

// Cache defines the contract for the cache layer so the implementation
// (Redis, in-memory, no-op) can be swapped.
type Cache interface {
	// Get reads a key and unmarshals it into dest.
	// found = false means a cache miss; dest is left untouched.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores a value under key with a TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes keys from the cache.
	Delete(ctx context.Context, keys ...string) error

	// DeletePattern removes all keys matching a glob pattern.
	DeletePattern(ctx context.Context, pattern string) error

	// Ping checks the connection.
	Ping(ctx context.Context) error
}
