// Package docs composes fetching, extraction and caching into the
// documentation query operations.
package docs

import (
	"context"
	"strings"

	rustdocs "github.com/Michael-Obele/rust-docs"
)

// Ensure services implement their interfaces at compile time.
var (
	_ rustdocs.DocsService         = (*Service)(nil)
	_ rustdocs.MarkdownDocsService = (*MarkdownService)(nil)
	_ rustdocs.RegistryService     = (*RegistryService)(nil)
)

// Service answers documentation queries with structured results extracted
// from docs.rs pages.
type Service struct {
	Cache     rustdocs.Cache
	Fetcher   rustdocs.DocumentFetcher
	Extractor rustdocs.Extractor
	TTL       rustdocs.TTLPolicy
}

// CrateOverview returns the structured root page of a crate.
func (s *Service) CrateOverview(ctx context.Context, in rustdocs.OverviewInput) (*rustdocs.CrateOverview, error) {
	q := in.Query()
	out, err := func() (*rustdocs.CrateOverview, error) {
		if err := in.Validate(); err != nil {
			return nil, err
		}
		return rustdocs.Cached(ctx, s.Cache, rustdocs.CacheKey(rustdocs.KindOverview, q), s.TTL.ForVersion(q.Version),
			func(ctx context.Context) (*rustdocs.CrateOverview, error) {
				page, err := s.Fetcher.Fetch(ctx, q)
				if err != nil {
					return nil, err
				}
				return s.Extractor.ExtractOverview(page, q)
			})
	}()
	if err != nil {
		return nil, rustdocs.WrapError(err, "failed to get crate overview for '%s'", q.Crate)
	}
	return out, nil
}

// ItemDocs returns the structured page of a single item.
func (s *Service) ItemDocs(ctx context.Context, in rustdocs.ItemInput) (*rustdocs.ItemDocs, error) {
	q := in.Query()
	out, err := func() (*rustdocs.ItemDocs, error) {
		if err := in.Validate(); err != nil {
			return nil, err
		}
		return rustdocs.Cached(ctx, s.Cache, rustdocs.CacheKey(rustdocs.KindItem, q), s.TTL.ForVersion(q.Version),
			func(ctx context.Context) (*rustdocs.ItemDocs, error) {
				page, err := s.Fetcher.Fetch(ctx, q)
				if err != nil {
					return nil, err
				}
				return s.Extractor.ExtractItem(page, q)
			})
	}()
	if err != nil {
		return nil, rustdocs.WrapError(err, "failed to get item docs for '%s'", itemSubject(q))
	}
	return out, nil
}

// ModuleListing returns the categorized items of a module, or of the crate
// root when no module is given.
func (s *Service) ModuleListing(ctx context.Context, in rustdocs.ModuleInput) (*rustdocs.ModuleListing, error) {
	q := in.Query()
	out, err := func() (*rustdocs.ModuleListing, error) {
		if err := in.Validate(); err != nil {
			return nil, err
		}
		return rustdocs.Cached(ctx, s.Cache, rustdocs.CacheKey(rustdocs.KindModules, q), s.TTL.ForVersion(q.Version),
			func(ctx context.Context) (*rustdocs.ModuleListing, error) {
				page, err := s.Fetcher.Fetch(ctx, q)
				if err != nil {
					return nil, err
				}
				return s.Extractor.ExtractModule(page)
			})
	}()
	if err != nil {
		return nil, rustdocs.WrapError(err, "failed to list modules for '%s'", moduleSubject(q))
	}
	return out, nil
}

// itemSubject names an item as crate::module::Name.
func itemSubject(q rustdocs.DocumentQuery) string {
	s := moduleSubject(q)
	if q.ItemName != "" {
		s += "::" + q.ItemName
	}
	return s
}

// moduleSubject names a module as crate::module.
func moduleSubject(q rustdocs.DocumentQuery) string {
	s := q.Crate
	if q.ModulePath != "" {
		s += "::" + strings.ReplaceAll(q.ModulePath, "/", "::")
	}
	return s
}
