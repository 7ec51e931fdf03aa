package mock

import (
	"context"
	"time"

	rustdocs "github.com/Michael-Obele/rust-docs"
)

var _ rustdocs.Cache = (*Cache)(nil)

// Cache is a mock implementation of rustdocs.Cache.
type Cache struct {
	GetOrComputeFn func(ctx context.Context, key string, ttl time.Duration, compute func(ctx context.Context) (any, error)) (any, error)
	InvalidateFn   func(key string)
	ClearFn        func()
	StatsFn        func() rustdocs.CacheStats
}

func (c *Cache) GetOrCompute(ctx context.Context, key string, ttl time.Duration, compute func(ctx context.Context) (any, error)) (any, error) {
	return c.GetOrComputeFn(ctx, key, ttl, compute)
}

func (c *Cache) Invalidate(key string) {
	c.InvalidateFn(key)
}

func (c *Cache) Clear() {
	c.ClearFn()
}

func (c *Cache) Stats() rustdocs.CacheStats {
	return c.StatsFn()
}
