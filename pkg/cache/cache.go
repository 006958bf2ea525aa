package cache

import (
	"context"
	"time"
)

// Cache is the contract for the read-through cache used by the catalog
// pages. Implementations must be safe for concurrent use.
type Cache interface {
	// Get looks up key and unmarshals the stored value into dest.
	// Returns (false, nil) on a miss; dest is left untouched.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores value under key with the given TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes the given keys.
	Delete(ctx context.Context, keys ...string) error

	// Ping verifies the backing connection.
	Ping(ctx context.Context) error
}
