package rustdocs

import "context"

// DocsService answers documentation queries with structured results.
type DocsService interface {
	CrateOverview(ctx context.Context, in OverviewInput) (*CrateOverview, error)
	ItemDocs(ctx context.Context, in ItemInput) (*ItemDocs, error)
	ModuleListing(ctx context.Context, in ModuleInput) (*ModuleListing, error)
}

// MarkdownDocsService answers documentation queries with pages rendered as
// markdown.
type MarkdownDocsService interface {
	CrateOverview(ctx context.Context, in OverviewInput) (*CrateOverviewMarkdown, error)
	ItemDocs(ctx context.Context, in ItemInput) (*ItemDocsMarkdown, error)
	ModuleListing(ctx context.Context, in ModuleInput) (*ModuleListingMarkdown, error)
}

// RegistryService answers crates.io queries.
type RegistryService interface {
	SearchCrates(ctx context.Context, in SearchInput) (*SearchResult, error)
	CrateInfo(ctx context.Context, in CrateInput) (*Crate, error)
}
