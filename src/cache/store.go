// Package cache persists statistics snapshots between refresh windows and
// decides when a cached snapshot may still be served.
package cache

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Store.Get when the key has no value.
var ErrNotFound = errors.New("cache key not found")

// Store is a minimal key-value abstraction over the persistent snapshot
// storage. Implementations must treat Get of an absent key as ErrNotFound,
// never as a hard failure.
type Store interface {
	// Get returns the raw value stored under key
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any existing value
	Set(ctx context.Context, key string, value []byte) error

	// Close closes the store connection
	Close() error
}
