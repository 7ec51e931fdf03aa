package slog

import (
	"context"
	"log/slog"
	"time"

	rustdocs "github.com/Michael-Obele/rust-docs"
)

// Ensure the docs decorators implement their interfaces.
var (
	_ rustdocs.DocsService         = (*LoggingDocsService)(nil)
	_ rustdocs.MarkdownDocsService = (*LoggingMarkdownService)(nil)
)

// LoggingDocsService wraps a DocsService with logging.
type LoggingDocsService struct {
	next   rustdocs.DocsService
	logger *slog.Logger
}

// NewLoggingDocsService creates a new LoggingDocsService.
func NewLoggingDocsService(next rustdocs.DocsService, logger *slog.Logger) *LoggingDocsService {
	return &LoggingDocsService{next: next, logger: logger}
}

func (s *LoggingDocsService) CrateOverview(ctx context.Context, in rustdocs.OverviewInput) (out *rustdocs.CrateOverview, err error) {
	defer func(begin time.Time) {
		s.logger.Info("crate overview",
			"crate", in.Crate,
			"version", in.Version,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CrateOverview(ctx, in)
}

func (s *LoggingDocsService) ItemDocs(ctx context.Context, in rustdocs.ItemInput) (out *rustdocs.ItemDocs, err error) {
	defer func(begin time.Time) {
		s.logger.Info("item docs",
			"crate", in.Crate,
			"version", in.Version,
			"module", in.Module,
			"type", in.ItemType,
			"name", in.ItemName,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ItemDocs(ctx, in)
}

func (s *LoggingDocsService) ModuleListing(ctx context.Context, in rustdocs.ModuleInput) (out *rustdocs.ModuleListing, err error) {
	defer func(begin time.Time) {
		s.logger.Info("list modules",
			"crate", in.Crate,
			"version", in.Version,
			"module", in.Module,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ModuleListing(ctx, in)
}

// LoggingMarkdownService wraps a MarkdownDocsService with logging. Rendered
// sizes are logged so oversized pages stand out.
type LoggingMarkdownService struct {
	next   rustdocs.MarkdownDocsService
	logger *slog.Logger
}

// NewLoggingMarkdownService creates a new LoggingMarkdownService.
func NewLoggingMarkdownService(next rustdocs.MarkdownDocsService, logger *slog.Logger) *LoggingMarkdownService {
	return &LoggingMarkdownService{next: next, logger: logger}
}

func (s *LoggingMarkdownService) CrateOverview(ctx context.Context, in rustdocs.OverviewInput) (out *rustdocs.CrateOverviewMarkdown, err error) {
	defer func(begin time.Time) {
		s.logger.Info("crate overview markdown",
			"crate", in.Crate,
			"version", in.Version,
			"bytes", markdownLen(out),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CrateOverview(ctx, in)
}

func (s *LoggingMarkdownService) ItemDocs(ctx context.Context, in rustdocs.ItemInput) (out *rustdocs.ItemDocsMarkdown, err error) {
	defer func(begin time.Time) {
		s.logger.Info("item docs markdown",
			"crate", in.Crate,
			"version", in.Version,
			"module", in.Module,
			"type", in.ItemType,
			"name", in.ItemName,
			"bytes", markdownLen(out),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ItemDocs(ctx, in)
}

func (s *LoggingMarkdownService) ModuleListing(ctx context.Context, in rustdocs.ModuleInput) (out *rustdocs.ModuleListingMarkdown, err error) {
	defer func(begin time.Time) {
		s.logger.Info("list modules markdown",
			"crate", in.Crate,
			"version", in.Version,
			"module", in.Module,
			"bytes", markdownLen(out),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ModuleListing(ctx, in)
}

func markdownLen[T interface {
	*rustdocs.CrateOverviewMarkdown | *rustdocs.ItemDocsMarkdown | *rustdocs.ModuleListingMarkdown
}](v T) int {
	switch v := any(v).(type) {
	case *rustdocs.CrateOverviewMarkdown:
		if v != nil {
			return len(v.Markdown)
		}
	case *rustdocs.ItemDocsMarkdown:
		if v != nil {
			return len(v.Markdown)
		}
	case *rustdocs.ModuleListingMarkdown:
		if v != nil {
			return len(v.Markdown)
		}
	}
	return 0
}
