package slog

import (
	"context"
	"log/slog"
	"time"

	rustdocs "github.com/Michael-Obele/rust-docs"
)

// Ensure LoggingRegistryService implements rustdocs.RegistryService.
var _ rustdocs.RegistryService = (*LoggingRegistryService)(nil)

// LoggingRegistryService wraps a RegistryService with logging.
type LoggingRegistryService struct {
	next   rustdocs.RegistryService
	logger *slog.Logger
}

// NewLoggingRegistryService creates a new LoggingRegistryService.
func NewLoggingRegistryService(next rustdocs.RegistryService, logger *slog.Logger) *LoggingRegistryService {
	return &LoggingRegistryService{next: next, logger: logger}
}

// SearchCrates delegates to the wrapped service and logs the result count.
func (s *LoggingRegistryService) SearchCrates(ctx context.Context, in rustdocs.SearchInput) (out *rustdocs.SearchResult, err error) {
	defer func(begin time.Time) {
		count := 0
		if out != nil {
			count = len(out.Crates)
		}
		s.logger.Info("search crates",
			"query", in.Query,
			"limit", in.Limit,
			"count", count,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SearchCrates(ctx, in)
}

// CrateInfo delegates to the wrapped service.
func (s *LoggingRegistryService) CrateInfo(ctx context.Context, in rustdocs.CrateInput) (out *rustdocs.Crate, err error) {
	defer func(begin time.Time) {
		s.logger.Info("crate info",
			"crate", in.Crate,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CrateInfo(ctx, in)
}
