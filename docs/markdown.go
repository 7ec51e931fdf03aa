package docs

import (
	"context"

	rustdocs "github.com/Michael-Obele/rust-docs"
)

// MarkdownService answers documentation queries with whole pages rendered
// as markdown. It shares fetching and caching with Service but never its
// cache entries.
type MarkdownService struct {
	Cache     rustdocs.Cache
	Fetcher   rustdocs.DocumentFetcher
	Converter rustdocs.Converter
	TTL       rustdocs.TTLPolicy
}

// CrateOverview renders the root page of a crate.
func (s *MarkdownService) CrateOverview(ctx context.Context, in rustdocs.OverviewInput) (*rustdocs.CrateOverviewMarkdown, error) {
	q := in.Query()
	out, err := func() (*rustdocs.CrateOverviewMarkdown, error) {
		if err := in.Validate(); err != nil {
			return nil, err
		}
		return rustdocs.Cached(ctx, s.Cache, rustdocs.CacheKey(rustdocs.KindOverviewMarkdown, q), s.TTL.ForVersion(q.Version),
			func(ctx context.Context) (*rustdocs.CrateOverviewMarkdown, error) {
				md, url, err := s.render(ctx, q)
				if err != nil {
					return nil, err
				}
				return &rustdocs.CrateOverviewMarkdown{Name: q.Crate, Version: q.Version, Markdown: md, URL: url}, nil
			})
	}()
	if err != nil {
		return nil, rustdocs.WrapError(err, "failed to get crate overview for '%s'", q.Crate)
	}
	return out, nil
}

// ItemDocs renders the page of a single item.
func (s *MarkdownService) ItemDocs(ctx context.Context, in rustdocs.ItemInput) (*rustdocs.ItemDocsMarkdown, error) {
	q := in.Query()
	out, err := func() (*rustdocs.ItemDocsMarkdown, error) {
		if err := in.Validate(); err != nil {
			return nil, err
		}
		return rustdocs.Cached(ctx, s.Cache, rustdocs.CacheKey(rustdocs.KindItemMarkdown, q), s.TTL.ForVersion(q.Version),
			func(ctx context.Context) (*rustdocs.ItemDocsMarkdown, error) {
				md, url, err := s.render(ctx, q)
				if err != nil {
					return nil, err
				}
				return &rustdocs.ItemDocsMarkdown{Name: q.ItemName, Type: q.ItemType, Markdown: md, URL: url}, nil
			})
	}()
	if err != nil {
		return nil, rustdocs.WrapError(err, "failed to get item docs for '%s'", itemSubject(q))
	}
	return out, nil
}

// ModuleListing renders a module page, or the crate root when no module is
// given.
func (s *MarkdownService) ModuleListing(ctx context.Context, in rustdocs.ModuleInput) (*rustdocs.ModuleListingMarkdown, error) {
	q := in.Query()
	out, err := func() (*rustdocs.ModuleListingMarkdown, error) {
		if err := in.Validate(); err != nil {
			return nil, err
		}
		return rustdocs.Cached(ctx, s.Cache, rustdocs.CacheKey(rustdocs.KindModulesMarkdown, q), s.TTL.ForVersion(q.Version),
			func(ctx context.Context) (*rustdocs.ModuleListingMarkdown, error) {
				md, url, err := s.render(ctx, q)
				if err != nil {
					return nil, err
				}
				return &rustdocs.ModuleListingMarkdown{Markdown: md, URL: url}, nil
			})
	}()
	if err != nil {
		return nil, rustdocs.WrapError(err, "failed to list modules for '%s'", moduleSubject(q))
	}
	return out, nil
}

func (s *MarkdownService) render(ctx context.Context, q rustdocs.DocumentQuery) (string, string, error) {
	page, err := s.Fetcher.Fetch(ctx, q)
	if err != nil {
		return "", "", err
	}
	md, err := s.Converter.Convert(page.HTML, page.URL)
	if err != nil {
		return "", "", err
	}
	return md, page.URL, nil
}
