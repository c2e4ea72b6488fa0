package cachestore

import (
	"context"
)

type CacheStore interface {
	// Get returns the cached value for key under the given namespace, with
	// ok false when the entry is absent or expired.
	Get(ctx context.Context, name, key string) (string, bool, error)
	// Set writes a value with the store's fixed TTL, overwriting any
	// previous entry and resetting its expiry.
	Set(ctx context.Context, name, key string, val string) error
	// Purge drops an entry. Purging an absent entry is not an error.
	Purge(ctx context.Context, name, key string) error
}
