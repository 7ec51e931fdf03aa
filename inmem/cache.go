// Package inmem provides an in-process implementation of rustdocs.Cache.
package inmem

import (
	"context"
	"time"

	rustdocs "github.com/Michael-Obele/rust-docs"
	"golang.org/x/sync/singleflight"
)

// Ensure Cache implements rustdocs.Cache at compile time.
var _ rustdocs.Cache = (*Cache)(nil)

// Cache is a TTL cache. Expired entries are removed lazily when read; there
// is no capacity bound. Concurrent misses on one key share a single compute
// call.
type Cache struct {
	store Store
	now   func() time.Time
	sf    singleflight.Group
}

// Option configures a Cache.
type Option func(*Cache)

// WithClock sets the time source used for expiry.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) {
		c.now = now
	}
}

// WithStore sets the backing store. Defaults to a MapStore.
func WithStore(s Store) Option {
	return func(c *Cache) {
		c.store = s
	}
}

// WithShards backs the cache with a ShardedStore of n shards.
func WithShards(n int) Option {
	return func(c *Cache) {
		c.store = NewShardedStore(n)
	}
}

// NewCache creates a new Cache.
func NewCache(opts ...Option) *Cache {
	c := &Cache{
		now: time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.store == nil {
		c.store = NewMapStore()
	}
	return c
}

// GetOrCompute returns the value under key while now is before its expiry.
// Otherwise compute runs and a successful result is stored until now+ttl.
//
// The shared compute is detached from any single caller's cancellation. A
// caller whose ctx is done stops waiting and gets ctx.Err(); the others still
// receive the result.
func (c *Cache) GetOrCompute(ctx context.Context, key string, ttl time.Duration, compute func(ctx context.Context) (any, error)) (any, error) {
	if v, ok := c.lookup(key); ok {
		return v, nil
	}

	detached := context.WithoutCancel(ctx)
	ch := c.sf.DoChan(key, func() (any, error) {
		// A concurrent caller may have filled the entry between our lookup
		// and joining the flight.
		if v, ok := c.lookup(key); ok {
			return v, nil
		}
		v, err := compute(detached)
		if err != nil {
			return nil, err
		}
		c.store.Store(key, Entry{Value: v, ExpiresAt: c.now().Add(ttl)})
		return v, nil
	})

	select {
	case res := <-ch:
		return res.Val, res.Err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (c *Cache) lookup(key string) (any, bool) {
	e, ok := c.store.Load(key)
	if !ok {
		return nil, false
	}
	if !c.now().Before(e.ExpiresAt) {
		c.store.Delete(key)
		return nil, false
	}
	return e.Value, true
}

// Invalidate removes key.
func (c *Cache) Invalidate(key string) {
	c.store.Delete(key)
}

// Clear removes every entry.
func (c *Cache) Clear() {
	c.store.Clear()
}

// Stats reports the stored entries, including expired ones not yet read.
func (c *Cache) Stats() rustdocs.CacheStats {
	keys := c.store.Keys()
	if keys == nil {
		keys = []string{}
	}
	return rustdocs.CacheStats{Size: len(keys), Keys: keys}
}
