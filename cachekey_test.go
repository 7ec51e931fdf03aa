package rustdocs_test

import (
	"testing"

	rustdocs "github.com/Michael-Obele/rust-docs"
	"github.com/stretchr/testify/assert"
)

func TestCacheKey(t *testing.T) {
	t.Parallel()

	t.Run("identical queries produce identical keys", func(t *testing.T) {
		t.Parallel()

		a := rustdocs.CacheKey(rustdocs.KindItem, rustdocs.DocumentQuery{Crate: "tokio", ItemType: rustdocs.ItemStruct, ItemName: "Runtime"})
		b := rustdocs.CacheKey(rustdocs.KindItem, rustdocs.DocumentQuery{Crate: "tokio", Version: "latest", ItemType: rustdocs.ItemStruct, ItemName: "Runtime"})

		assert.Equal(t, a, b)
	})

	t.Run("equivalent spellings collide", func(t *testing.T) {
		t.Parallel()

		a := rustdocs.CacheKey(rustdocs.KindModules, rustdocs.DocumentQuery{Crate: "serde-json", ModulePath: "value"})
		b := rustdocs.CacheKey(rustdocs.KindModules, rustdocs.DocumentQuery{Crate: "serde_json", ModulePath: "/value/"})

		assert.Equal(t, a, b)
	})

	t.Run("distinct queries produce distinct keys", func(t *testing.T) {
		t.Parallel()

		queries := []struct {
			kind rustdocs.CacheKind
			q    rustdocs.DocumentQuery
		}{
			{rustdocs.KindOverview, rustdocs.DocumentQuery{Crate: "tokio"}},
			{rustdocs.KindOverviewMarkdown, rustdocs.DocumentQuery{Crate: "tokio"}},
			{rustdocs.KindOverview, rustdocs.DocumentQuery{Crate: "tokio", Version: "1.38.0"}},
			{rustdocs.KindModules, rustdocs.DocumentQuery{Crate: "tokio"}},
			{rustdocs.KindModules, rustdocs.DocumentQuery{Crate: "tokio", ModulePath: "sync"}},
			{rustdocs.KindModules, rustdocs.DocumentQuery{Crate: "tokio", ModulePath: "sync/mpsc"}},
			{rustdocs.KindModulesMarkdown, rustdocs.DocumentQuery{Crate: "tokio", ModulePath: "sync"}},
			{rustdocs.KindItem, rustdocs.DocumentQuery{Crate: "tokio", ItemType: rustdocs.ItemStruct, ItemName: "Runtime"}},
			{rustdocs.KindItem, rustdocs.DocumentQuery{Crate: "tokio", ItemType: rustdocs.ItemEnum, ItemName: "Runtime"}},
			{rustdocs.KindItem, rustdocs.DocumentQuery{Crate: "tokio", ModulePath: "runtime", ItemType: rustdocs.ItemStruct, ItemName: "Runtime"}},
			{rustdocs.KindItemMarkdown, rustdocs.DocumentQuery{Crate: "tokio", ItemType: rustdocs.ItemStruct, ItemName: "Runtime"}},
			{rustdocs.KindItem, rustdocs.DocumentQuery{Crate: "tokio", Version: "1.0.0", ItemType: rustdocs.ItemStruct, ItemName: "Runtime"}},
		}

		seen := make(map[string]int)
		for i, tc := range queries {
			key := rustdocs.CacheKey(tc.kind, tc.q)
			if j, ok := seen[key]; ok {
				t.Fatalf("queries %d and %d collide on key %q", j, i, key)
			}
			seen[key] = i
		}
	})

	t.Run("crate root and module named root differ", func(t *testing.T) {
		t.Parallel()

		root := rustdocs.DocumentQuery{Crate: "foo"}
		mod := rustdocs.DocumentQuery{Crate: "foo", ModulePath: "root"}

		assert.NotEqual(t, root.Path(), mod.Path())
		assert.NotEqual(t, rustdocs.CacheKey(rustdocs.KindModules, root), rustdocs.CacheKey(rustdocs.KindModules, mod))
		assert.NotEqual(t, rustdocs.CacheKey(rustdocs.KindOverview, root), rustdocs.CacheKey(rustdocs.KindOverview, mod))
	})

	t.Run("separator in a field cannot forge another key", func(t *testing.T) {
		t.Parallel()

		a := rustdocs.SearchCacheKey("a:1", 2)
		b := rustdocs.SearchCacheKey("a", 12)

		assert.NotEqual(t, a, b)
		assert.NotEqual(t, rustdocs.SearchCacheKey("http", 10), rustdocs.SearchCacheKey("http", 20))
	})

	t.Run("crate info keys are namespaced", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "crate:tokio", rustdocs.CrateCacheKey("tokio"))
		assert.NotEqual(t, rustdocs.CrateCacheKey("tokio"), rustdocs.SearchCacheKey("tokio", 10))
	})
}
