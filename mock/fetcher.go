package mock

import (
	"context"

	rustdocs "github.com/Michael-Obele/rust-docs"
)

var _ rustdocs.DocumentFetcher = (*DocumentFetcher)(nil)

// DocumentFetcher is a mock implementation of rustdocs.DocumentFetcher.
type DocumentFetcher struct {
	FetchFn func(ctx context.Context, q rustdocs.DocumentQuery) (*rustdocs.Page, error)
}

func (f *DocumentFetcher) Fetch(ctx context.Context, q rustdocs.DocumentQuery) (*rustdocs.Page, error) {
	return f.FetchFn(ctx, q)
}
