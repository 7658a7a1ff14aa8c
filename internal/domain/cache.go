package domain

import (
	"context"
	"time"
)

// CacheError represents an error originating from the cache.
type CacheError string

func (e CacheError) Error() string {
	return string(e)
}

// ErrCacheMiss is returned when a key is not found in the cache.
const ErrCacheMiss = CacheError("cache: key not found")

// Cache defines the interface (port) for key/value storage with expiry.
// Implementations of this interface are adapters (e.g., RedisCacheAdapter).
type Cache interface {
	// Get retrieves an item. It returns ErrCacheMiss if the key is not found.
	Get(ctx context.Context, key string) (string, error)

	// Set adds an item, overwriting an existing item if one exists.
	// If expiration is 0, the item does not expire.
	Set(ctx context.Context, key string, value string, expiration time.Duration) error

	// Delete removes an item. It does not return an error if the key is not found.
	Delete(ctx context.Context, key string) error

	// Ping checks the health of the backing service.
	Ping(ctx context.Context) error
}
