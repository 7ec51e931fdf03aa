package rustdocs

import (
	"net/url"
	"strconv"
	"strings"
)

// CacheKind distinguishes cached payloads built from the same page.
type CacheKind string

// Cache kinds. The markdown variants share pages with their structured
// counterparts but never share keys.
const (
	KindOverview         CacheKind = "crate-overview"
	KindOverviewMarkdown CacheKind = "crate-overview-markdown"
	KindItem             CacheKind = "item-docs"
	KindItemMarkdown     CacheKind = "item-docs-markdown"
	KindModules          CacheKind = "module-items"
	KindModulesMarkdown  CacheKind = "module-items-markdown"
	KindSearch           CacheKind = "search"
	KindCrate            CacheKind = "crate"
)

// CacheKey builds the key for a page-derived payload. Every component is
// query-escaped before joining so no field value can contain the ":"
// separator. The crate root has an empty module component.
func CacheKey(kind CacheKind, q DocumentQuery) string {
	q = q.Normalize()
	return joinKey(string(kind),
		NormalizeCrateName(q.Crate),
		q.Version,
		q.ModulePath,
		string(q.ItemType),
		q.ItemName,
	)
}

// SearchCacheKey builds the key for a registry search.
func SearchCacheKey(query string, limit int) string {
	return joinKey(string(KindSearch), strings.TrimSpace(query), strconv.Itoa(limit))
}

// CrateCacheKey builds the key for registry crate metadata.
func CrateCacheKey(name string) string {
	return joinKey(string(KindCrate), strings.TrimSpace(name))
}

func joinKey(parts ...string) string {
	escaped := make([]string, len(parts))
	for i, p := range parts {
		escaped[i] = url.QueryEscape(p)
	}
	return strings.Join(escaped, ":")
}
