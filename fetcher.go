package rustdocs

import "context"

// Page is a fetched docs.rs document.
type Page struct {
	URL        string
	HTML       string
	StatusCode int
}

// DocumentFetcher retrieves docs.rs pages.
type DocumentFetcher interface {
	// Fetch builds the URL for q and retrieves it. Missing pages return
	// ENOTFOUND, other non-2xx responses return EUPSTREAM.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, q DocumentQuery) (*Page, error)
}
