package docs

import (
	"context"
	"strings"

	rustdocs "github.com/Michael-Obele/rust-docs"
)

// RegistryService answers crates.io queries through the cache. Searches use
// the search TTL; crate metadata uses the versioned TTL.
type RegistryService struct {
	Cache    rustdocs.Cache
	Registry rustdocs.Registry
	TTL      rustdocs.TTLPolicy
}

// SearchCrates searches crates.io.
func (s *RegistryService) SearchCrates(ctx context.Context, in rustdocs.SearchInput) (*rustdocs.SearchResult, error) {
	in = in.WithDefaults()
	if err := in.Validate(); err != nil {
		return nil, rustdocs.WrapError(err, "failed to search crates for '%s'", in.Query)
	}
	out, err := rustdocs.Cached(ctx, s.Cache, rustdocs.SearchCacheKey(in.Query, in.Limit), s.TTL.Duration(rustdocs.TTLSearch),
		func(ctx context.Context) (*rustdocs.SearchResult, error) {
			return s.Registry.Search(ctx, in.Query, in.Limit)
		})
	if err != nil {
		return nil, rustdocs.WrapError(err, "failed to search crates for '%s'", in.Query)
	}
	return out, nil
}

// CrateInfo returns crates.io metadata for one crate.
func (s *RegistryService) CrateInfo(ctx context.Context, in rustdocs.CrateInput) (*rustdocs.Crate, error) {
	in.Crate = strings.TrimSpace(in.Crate)
	if err := in.Validate(); err != nil {
		return nil, rustdocs.WrapError(err, "failed to get crate info for '%s'", in.Crate)
	}
	out, err := rustdocs.Cached(ctx, s.Cache, rustdocs.CrateCacheKey(in.Crate), s.TTL.Duration(rustdocs.TTLVersioned),
		func(ctx context.Context) (*rustdocs.Crate, error) {
			return s.Registry.Crate(ctx, in.Crate)
		})
	if err != nil {
		return nil, rustdocs.WrapError(err, "failed to get crate info for '%s'", in.Crate)
	}
	return out, nil
}
