package mock

import (
	"context"

	rustdocs "github.com/Michael-Obele/rust-docs"
)

var _ rustdocs.Registry = (*Registry)(nil)

// Registry is a mock implementation of rustdocs.Registry.
type Registry struct {
	SearchFn func(ctx context.Context, query string, limit int) (*rustdocs.SearchResult, error)
	CrateFn  func(ctx context.Context, name string) (*rustdocs.Crate, error)
}

func (r *Registry) Search(ctx context.Context, query string, limit int) (*rustdocs.SearchResult, error) {
	return r.SearchFn(ctx, query, limit)
}

func (r *Registry) Crate(ctx context.Context, name string) (*rustdocs.Crate, error) {
	return r.CrateFn(ctx, name)
}
