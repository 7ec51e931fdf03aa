package inmem

import (
	"sort"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
)

// Entry is an immutable snapshot of a cached value.
type Entry struct {
	Value     any
	ExpiresAt time.Time
}

// Store holds cache entries. Implementations must be safe for concurrent use.
type Store interface {
	Load(key string) (Entry, bool)
	Store(key string, e Entry)
	Delete(key string)
	Clear()
	Keys() []string
	Len() int
}

// Ensure store implementations satisfy Store at compile time.
var (
	_ Store = (*MapStore)(nil)
	_ Store = (*ShardedStore)(nil)
)

// MapStore is a Store backed by a single mutex-guarded map.
type MapStore struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

// NewMapStore creates an empty MapStore.
func NewMapStore() *MapStore {
	return &MapStore{entries: make(map[string]Entry)}
}

func (s *MapStore) Load(key string) (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[key]
	return e, ok
}

func (s *MapStore) Store(key string, e Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = e
}

func (s *MapStore) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
}

func (s *MapStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string]Entry)
}

// Keys returns the stored keys in sorted order.
func (s *MapStore) Keys() []string {
	s.mu.RLock()
	keys := make([]string, 0, len(s.entries))
	for k := range s.entries {
		keys = append(keys, k)
	}
	s.mu.RUnlock()
	sort.Strings(keys)
	return keys
}

func (s *MapStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// ShardedStore spreads keys over independent MapStores to reduce lock
// contention. A key always maps to the same shard.
type ShardedStore struct {
	shards []*MapStore
}

// NewShardedStore creates a ShardedStore with n shards. n below 1 is treated
// as 1.
func NewShardedStore(n int) *ShardedStore {
	if n < 1 {
		n = 1
	}
	shards := make([]*MapStore, n)
	for i := range shards {
		shards[i] = NewMapStore()
	}
	return &ShardedStore{shards: shards}
}

func (s *ShardedStore) shard(key string) *MapStore {
	return s.shards[xxhash.Sum64String(key)%uint64(len(s.shards))]
}

func (s *ShardedStore) Load(key string) (Entry, bool) { return s.shard(key).Load(key) }
func (s *ShardedStore) Store(key string, e Entry)     { s.shard(key).Store(key, e) }
func (s *ShardedStore) Delete(key string)             { s.shard(key).Delete(key) }

func (s *ShardedStore) Clear() {
	for _, sh := range s.shards {
		sh.Clear()
	}
}

// Keys returns the keys of every shard in sorted order.
func (s *ShardedStore) Keys() []string {
	var keys []string
	for _, sh := range s.shards {
		keys = append(keys, sh.Keys()...)
	}
	sort.Strings(keys)
	return keys
}

func (s *ShardedStore) Len() int {
	n := 0
	for _, sh := range s.shards {
		n += sh.Len()
	}
	return n
}
