package mock

import (
	"context"

	rustdocs "github.com/Michael-Obele/rust-docs"
)

// Compile-time interface verification.
var (
	_ rustdocs.DocsService         = (*DocsService)(nil)
	_ rustdocs.MarkdownDocsService = (*MarkdownDocsService)(nil)
	_ rustdocs.RegistryService     = (*RegistryService)(nil)
)

// DocsService is a mock implementation of rustdocs.DocsService.
type DocsService struct {
	CrateOverviewFn func(ctx context.Context, in rustdocs.OverviewInput) (*rustdocs.CrateOverview, error)
	ItemDocsFn      func(ctx context.Context, in rustdocs.ItemInput) (*rustdocs.ItemDocs, error)
	ModuleListingFn func(ctx context.Context, in rustdocs.ModuleInput) (*rustdocs.ModuleListing, error)
}

func (s *DocsService) CrateOverview(ctx context.Context, in rustdocs.OverviewInput) (*rustdocs.CrateOverview, error) {
	return s.CrateOverviewFn(ctx, in)
}

func (s *DocsService) ItemDocs(ctx context.Context, in rustdocs.ItemInput) (*rustdocs.ItemDocs, error) {
	return s.ItemDocsFn(ctx, in)
}

func (s *DocsService) ModuleListing(ctx context.Context, in rustdocs.ModuleInput) (*rustdocs.ModuleListing, error) {
	return s.ModuleListingFn(ctx, in)
}

// MarkdownDocsService is a mock implementation of rustdocs.MarkdownDocsService.
type MarkdownDocsService struct {
	CrateOverviewFn func(ctx context.Context, in rustdocs.OverviewInput) (*rustdocs.CrateOverviewMarkdown, error)
	ItemDocsFn      func(ctx context.Context, in rustdocs.ItemInput) (*rustdocs.ItemDocsMarkdown, error)
	ModuleListingFn func(ctx context.Context, in rustdocs.ModuleInput) (*rustdocs.ModuleListingMarkdown, error)
}

func (s *MarkdownDocsService) CrateOverview(ctx context.Context, in rustdocs.OverviewInput) (*rustdocs.CrateOverviewMarkdown, error) {
	return s.CrateOverviewFn(ctx, in)
}

func (s *MarkdownDocsService) ItemDocs(ctx context.Context, in rustdocs.ItemInput) (*rustdocs.ItemDocsMarkdown, error) {
	return s.ItemDocsFn(ctx, in)
}

func (s *MarkdownDocsService) ModuleListing(ctx context.Context, in rustdocs.ModuleInput) (*rustdocs.ModuleListingMarkdown, error) {
	return s.ModuleListingFn(ctx, in)
}

// RegistryService is a mock implementation of rustdocs.RegistryService.
type RegistryService struct {
	SearchCratesFn func(ctx context.Context, in rustdocs.SearchInput) (*rustdocs.SearchResult, error)
	CrateInfoFn    func(ctx context.Context, in rustdocs.CrateInput) (*rustdocs.Crate, error)
}

func (s *RegistryService) SearchCrates(ctx context.Context, in rustdocs.SearchInput) (*rustdocs.SearchResult, error) {
	return s.SearchCratesFn(ctx, in)
}

func (s *RegistryService) CrateInfo(ctx context.Context, in rustdocs.CrateInput) (*rustdocs.Crate, error) {
	return s.CrateInfoFn(ctx, in)
}
