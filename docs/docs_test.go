package docs_test

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	rustdocs "github.com/Michael-Obele/rust-docs"
	"github.com/Michael-Obele/rust-docs/docs"
	"github.com/Michael-Obele/rust-docs/inmem"
	"github.com/Michael-Obele/rust-docs/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingCache wraps a real cache and records the key and TTL of every call.
type recordingCache struct {
	*inmem.Cache

	mu   sync.Mutex
	keys []string
	ttls []time.Duration
}

func newRecordingCache() *recordingCache {
	return &recordingCache{Cache: inmem.NewCache()}
}

func (c *recordingCache) GetOrCompute(ctx context.Context, key string, ttl time.Duration, compute func(ctx context.Context) (any, error)) (any, error) {
	c.mu.Lock()
	c.keys = append(c.keys, key)
	c.ttls = append(c.ttls, ttl)
	c.mu.Unlock()
	return c.Cache.GetOrCompute(ctx, key, ttl, compute)
}

// fetcher returns pages for any query and records what it was asked for.
type fetcher struct {
	mu      sync.Mutex
	calls   atomic.Int32
	queries []rustdocs.DocumentQuery
}

func (f *fetcher) mock() *mock.DocumentFetcher {
	return &mock.DocumentFetcher{
		FetchFn: func(_ context.Context, q rustdocs.DocumentQuery) (*rustdocs.Page, error) {
			f.calls.Add(1)
			f.mu.Lock()
			f.queries = append(f.queries, q)
			f.mu.Unlock()
			return &rustdocs.Page{URL: q.URL("https://docs.rs"), HTML: "<html><body>page</body></html>", StatusCode: 200}, nil
		},
	}
}

func noFetch(t *testing.T) *mock.DocumentFetcher {
	return &mock.DocumentFetcher{
		FetchFn: func(context.Context, rustdocs.DocumentQuery) (*rustdocs.Page, error) {
			t.Error("fetch must not be called")
			return nil, nil
		},
	}
}

func extractor() *mock.Extractor {
	return &mock.Extractor{
		ExtractOverviewFn: func(page *rustdocs.Page, q rustdocs.DocumentQuery) (*rustdocs.CrateOverview, error) {
			return &rustdocs.CrateOverview{Name: q.Crate, Version: q.Version, ItemLists: rustdocs.NewItemLists(), URL: page.URL}, nil
		},
		ExtractItemFn: func(page *rustdocs.Page, q rustdocs.DocumentQuery) (*rustdocs.ItemDocs, error) {
			return &rustdocs.ItemDocs{Name: q.ItemName, Type: q.ItemType, URL: page.URL}, nil
		},
		ExtractModuleFn: func(page *rustdocs.Page) (*rustdocs.ModuleListing, error) {
			return &rustdocs.ModuleListing{ItemLists: rustdocs.NewItemLists(), URL: page.URL}, nil
		},
	}
}

func TestService_CrateOverview(t *testing.T) {
	t.Parallel()

	t.Run("omitted version uses latest TTL and underscore path", func(t *testing.T) {
		t.Parallel()

		cache := newRecordingCache()
		f := &fetcher{}
		svc := &docs.Service{Cache: cache, Fetcher: f.mock(), Extractor: extractor(), TTL: rustdocs.DefaultTTLPolicy()}

		got, err := svc.CrateOverview(context.Background(), rustdocs.OverviewInput{Crate: "tokio-util"})

		require.NoError(t, err)
		assert.Equal(t, "latest", got.Version)
		require.Len(t, cache.ttls, 1)
		assert.Equal(t, 2*time.Hour, cache.ttls[0])
		require.Len(t, f.queries, 1)
		assert.NotContains(t, f.queries[0].Path(), "-")
		assert.Equal(t, "https://docs.rs/tokio_util/latest/tokio_util/", got.URL)
	})

	t.Run("pinned version uses versioned TTL", func(t *testing.T) {
		t.Parallel()

		cache := newRecordingCache()
		f := &fetcher{}
		svc := &docs.Service{Cache: cache, Fetcher: f.mock(), Extractor: extractor(), TTL: rustdocs.DefaultTTLPolicy()}

		_, err := svc.CrateOverview(context.Background(), rustdocs.OverviewInput{Crate: "tokio", Version: "1.38.0"})

		require.NoError(t, err)
		assert.Equal(t, []time.Duration{24 * time.Hour}, cache.ttls)
	})

	t.Run("serves repeated calls from cache", func(t *testing.T) {
		t.Parallel()

		f := &fetcher{}
		svc := &docs.Service{Cache: inmem.NewCache(), Fetcher: f.mock(), Extractor: extractor()}

		first, err := svc.CrateOverview(context.Background(), rustdocs.OverviewInput{Crate: "serde"})
		require.NoError(t, err)
		second, err := svc.CrateOverview(context.Background(), rustdocs.OverviewInput{Crate: "serde", Version: "latest"})
		require.NoError(t, err)

		assert.Same(t, first, second)
		assert.Equal(t, int32(1), f.calls.Load())
	})

	t.Run("not found page fails naming the crate", func(t *testing.T) {
		t.Parallel()

		cache := inmem.NewCache()
		svc := &docs.Service{
			Cache: cache,
			Fetcher: &mock.DocumentFetcher{
				FetchFn: func(_ context.Context, q rustdocs.DocumentQuery) (*rustdocs.Page, error) {
					return nil, rustdocs.Errorf(rustdocs.ENOTFOUND, "%s", q.NotFoundMessage())
				},
			},
			Extractor: extractor(),
		}

		_, err := svc.CrateOverview(context.Background(), rustdocs.OverviewInput{Crate: "no-such-crate"})

		require.Error(t, err)
		assert.Equal(t, rustdocs.ENOTFOUND, rustdocs.ErrorCode(err))
		assert.True(t, strings.HasPrefix(rustdocs.ErrorMessage(err), "failed to get crate overview for 'no-such-crate': "))
		assert.Contains(t, rustdocs.ErrorMessage(err), "Crate 'no-such-crate' not found on docs.rs")
		assert.Zero(t, cache.Stats().Size)
	})

	t.Run("extraction failure is wrapped", func(t *testing.T) {
		t.Parallel()

		f := &fetcher{}
		ext := extractor()
		ext.ExtractOverviewFn = func(*rustdocs.Page, rustdocs.DocumentQuery) (*rustdocs.CrateOverview, error) {
			return nil, rustdocs.Errorf(rustdocs.EINVALID, "failed to parse HTML: bad")
		}
		svc := &docs.Service{Cache: inmem.NewCache(), Fetcher: f.mock(), Extractor: ext}

		_, err := svc.CrateOverview(context.Background(), rustdocs.OverviewInput{Crate: "tokio"})

		assert.Equal(t, "failed to get crate overview for 'tokio': failed to parse HTML: bad", rustdocs.ErrorMessage(err))
	})

	t.Run("rejects invalid input before fetching", func(t *testing.T) {
		t.Parallel()

		svc := &docs.Service{Cache: inmem.NewCache(), Fetcher: noFetch(t), Extractor: extractor()}

		_, err := svc.CrateOverview(context.Background(), rustdocs.OverviewInput{Crate: "bad name"})

		assert.Equal(t, rustdocs.EINVALID, rustdocs.ErrorCode(err))
	})
}

func TestService_ItemDocs(t *testing.T) {
	t.Parallel()

	t.Run("builds module item URL", func(t *testing.T) {
		t.Parallel()

		f := &fetcher{}
		svc := &docs.Service{Cache: inmem.NewCache(), Fetcher: f.mock(), Extractor: extractor()}

		got, err := svc.ItemDocs(context.Background(), rustdocs.ItemInput{
			Crate:    "tauri",
			ItemType: rustdocs.ItemStruct,
			ItemName: "AppHandle",
			Module:   "async_runtime",
		})

		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(got.URL, "/async_runtime/struct.AppHandle.html"))
		assert.Equal(t, "AppHandle", got.Name)
		assert.Equal(t, rustdocs.ItemStruct, got.Type)
	})

	t.Run("honors pinned version", func(t *testing.T) {
		t.Parallel()

		f := &fetcher{}
		svc := &docs.Service{Cache: inmem.NewCache(), Fetcher: f.mock(), Extractor: extractor()}

		got, err := svc.ItemDocs(context.Background(), rustdocs.ItemInput{
			Crate: "tokio", Version: "1.0.0", ItemType: rustdocs.ItemFn, ItemName: "spawn",
		})

		require.NoError(t, err)
		assert.Equal(t, "https://docs.rs/tokio/1.0.0/tokio/fn.spawn.html", got.URL)
	})

	t.Run("missing item suggests listing modules", func(t *testing.T) {
		t.Parallel()

		svc := &docs.Service{
			Cache: inmem.NewCache(),
			Fetcher: &mock.DocumentFetcher{
				FetchFn: func(_ context.Context, q rustdocs.DocumentQuery) (*rustdocs.Page, error) {
					return nil, rustdocs.Errorf(rustdocs.ENOTFOUND, "%s", q.NotFoundMessage())
				},
			},
			Extractor: extractor(),
		}

		_, err := svc.ItemDocs(context.Background(), rustdocs.ItemInput{Crate: "tokio", ItemType: rustdocs.ItemStruct, ItemName: "Nope"})

		assert.Equal(t, rustdocs.ENOTFOUND, rustdocs.ErrorCode(err))
		assert.Contains(t, rustdocs.ErrorMessage(err), "failed to get item docs for 'tokio::Nope'")
		assert.Contains(t, rustdocs.ErrorMessage(err), "list_modules")
	})

	t.Run("requires item type before fetching", func(t *testing.T) {
		t.Parallel()

		svc := &docs.Service{Cache: inmem.NewCache(), Fetcher: noFetch(t), Extractor: extractor()}

		_, err := svc.ItemDocs(context.Background(), rustdocs.ItemInput{Crate: "tokio", ItemName: "Runtime"})

		assert.Equal(t, rustdocs.EINVALID, rustdocs.ErrorCode(err))
	})
}

func TestService_ModuleListing(t *testing.T) {
	t.Parallel()

	t.Run("lists nested module", func(t *testing.T) {
		t.Parallel()

		cache := newRecordingCache()
		f := &fetcher{}
		svc := &docs.Service{Cache: cache, Fetcher: f.mock(), Extractor: extractor()}

		got, err := svc.ModuleListing(context.Background(), rustdocs.ModuleInput{Crate: "tokio", Module: "sync::mpsc"})

		require.NoError(t, err)
		assert.Equal(t, "https://docs.rs/tokio/latest/tokio/sync/mpsc/", got.URL)
		assert.NotNil(t, got.Structs)
		assert.Equal(t, []string{rustdocs.CacheKey(rustdocs.KindModules, rustdocs.DocumentQuery{Crate: "tokio", ModulePath: "sync/mpsc"})}, cache.keys)
	})

	t.Run("missing module names crate and module", func(t *testing.T) {
		t.Parallel()

		svc := &docs.Service{
			Cache: inmem.NewCache(),
			Fetcher: &mock.DocumentFetcher{
				FetchFn: func(_ context.Context, q rustdocs.DocumentQuery) (*rustdocs.Page, error) {
					return nil, rustdocs.Errorf(rustdocs.ENOTFOUND, "%s", q.NotFoundMessage())
				},
			},
			Extractor: extractor(),
		}

		_, err := svc.ModuleListing(context.Background(), rustdocs.ModuleInput{Crate: "tokio", Module: "nope"})

		assert.Equal(t, rustdocs.ENOTFOUND, rustdocs.ErrorCode(err))
		assert.Contains(t, rustdocs.ErrorMessage(err), "failed to list modules for 'tokio::nope'")
		assert.Contains(t, rustdocs.ErrorMessage(err), "Crate 'tokio' module 'nope' not found")
	})
}
