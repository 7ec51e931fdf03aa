package rustdocs

import "context"

// Registry queries the crates.io API.
type Registry interface {
	// Search returns up to limit crates matching query.
	Search(ctx context.Context, query string, limit int) (*SearchResult, error)

	// Crate returns metadata for the named crate, or ENOTFOUND.
	Crate(ctx context.Context, name string) (*Crate, error)
}
