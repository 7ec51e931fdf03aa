package rustdocs

import (
	"context"
	"fmt"
	"time"
)

// CacheStats reports the live contents of a Cache.
type CacheStats struct {
	Size int      `json:"size"`
	Keys []string `json:"keys"`
}

// Cache is a key/value store with per-entry expiry.
type Cache interface {
	// GetOrCompute returns the unexpired value stored under key, or calls
	// compute, stores its result for ttl and returns it. Failed computations
	// are never stored.
	GetOrCompute(ctx context.Context, key string, ttl time.Duration, compute func(ctx context.Context) (any, error)) (any, error)

	// Invalidate removes key.
	Invalidate(key string)

	// Clear removes every entry.
	Clear()

	// Stats returns the current entry count and keys.
	Stats() CacheStats
}

// Cached is a typed wrapper over Cache.GetOrCompute.
func Cached[T any](ctx context.Context, c Cache, key string, ttl time.Duration, compute func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	v, err := c.GetOrCompute(ctx, key, ttl, func(ctx context.Context) (any, error) {
		return compute(ctx)
	})
	if err != nil {
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		return zero, Errorf(EINTERNAL, "cache entry %q holds %s", key, fmt.Sprintf("%T", v))
	}
	return t, nil
}
