// Package slog provides logging decorators for the rustdocs services.
package slog

import (
	"context"
	"log/slog"
	"time"

	rustdocs "github.com/Michael-Obele/rust-docs"
)

// Ensure LoggingFetcher implements rustdocs.DocumentFetcher.
var _ rustdocs.DocumentFetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a DocumentFetcher with debug logging.
type LoggingFetcher struct {
	next   rustdocs.DocumentFetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next rustdocs.DocumentFetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the request.
func (f *LoggingFetcher) Fetch(ctx context.Context, q rustdocs.DocumentQuery) (page *rustdocs.Page, err error) {
	defer func(begin time.Time) {
		var url string
		var size, status int
		if page != nil {
			url, size, status = page.URL, len(page.HTML), page.StatusCode
		}
		f.logger.Info("fetch",
			"crate", q.Crate,
			"path", q.Path(),
			"url", url,
			"status", status,
			"bytes", size,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, q)
}
