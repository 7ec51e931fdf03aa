// Package chi serves the documentation operations as a JSON HTTP API.
package chi

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	rustdocs "github.com/Michael-Obele/rust-docs"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// RequestIDHeader carries the request ID in both directions.
const RequestIDHeader = "X-Request-ID"

// ShutdownTimeout bounds graceful shutdown.
const ShutdownTimeout = 5 * time.Second

// Server is the JSON API. Markdown is optional; without it format=markdown
// requests fail with 400.
type Server struct {
	Registry rustdocs.RegistryService
	Docs     rustdocs.DocsService
	Markdown rustdocs.MarkdownDocsService
	Cache    rustdocs.Cache
	Logger   *slog.Logger

	router chi.Router
}

// NewServer creates a new Server with its routes mounted.
func NewServer(registry rustdocs.RegistryService, docs rustdocs.DocsService, markdown rustdocs.MarkdownDocsService, cache rustdocs.Cache, logger *slog.Logger) *Server {
	s := &Server{
		Registry: registry,
		Docs:     docs,
		Markdown: markdown,
		Cache:    cache,
		Logger:   logger,
	}

	r := chi.NewRouter()
	r.Use(s.requestID)
	r.Use(s.logRequest)
	r.Use(middleware.Recoverer)

	r.Route("/api/crates", func(r chi.Router) {
		r.Get("/", s.handleSearch)
		r.Route("/{crate}", func(r chi.Router) {
			r.Get("/", s.handleCrate)
			r.Get("/overview", s.handleOverview)
			r.Get("/items/{type}/{name}", s.handleItem)
			r.Get("/modules", s.handleModules)
		})
	})
	r.Get("/debug/cache", s.handleCacheStats)
	r.Delete("/debug/cache", s.handleCacheClear)

	s.router = r
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is done, then shuts down.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errc := make(chan error, 1)
	go func() {
		s.Logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	in := rustdocs.SearchInput{Query: r.URL.Query().Get("q")}
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			s.writeError(w, r, rustdocs.Errorf(rustdocs.EINVALID, "invalid limit %q", v))
			return
		}
		in.Limit = n
	}
	out, err := s.Registry.SearchCrates(r.Context(), in)
	s.respond(w, r, out, err)
}

func (s *Server) handleCrate(w http.ResponseWriter, r *http.Request) {
	out, err := s.Registry.CrateInfo(r.Context(), rustdocs.CrateInput{Crate: chi.URLParam(r, "crate")})
	s.respond(w, r, out, err)
}

func (s *Server) handleOverview(w http.ResponseWriter, r *http.Request) {
	in := rustdocs.OverviewInput{
		Crate:   chi.URLParam(r, "crate"),
		Version: r.URL.Query().Get("version"),
	}
	if wantMarkdown(r) {
		if !s.checkMarkdown(w, r) {
			return
		}
		out, err := s.Markdown.CrateOverview(r.Context(), in)
		s.respond(w, r, out, err)
		return
	}
	out, err := s.Docs.CrateOverview(r.Context(), in)
	s.respond(w, r, out, err)
}

func (s *Server) handleItem(w http.ResponseWriter, r *http.Request) {
	in := rustdocs.ItemInput{
		Crate:    chi.URLParam(r, "crate"),
		Version:  r.URL.Query().Get("version"),
		ItemType: rustdocs.ItemType(chi.URLParam(r, "type")),
		ItemName: chi.URLParam(r, "name"),
		Module:   r.URL.Query().Get("module"),
	}
	if wantMarkdown(r) {
		if !s.checkMarkdown(w, r) {
			return
		}
		out, err := s.Markdown.ItemDocs(r.Context(), in)
		s.respond(w, r, out, err)
		return
	}
	out, err := s.Docs.ItemDocs(r.Context(), in)
	s.respond(w, r, out, err)
}

func (s *Server) handleModules(w http.ResponseWriter, r *http.Request) {
	in := rustdocs.ModuleInput{
		Crate:   chi.URLParam(r, "crate"),
		Version: r.URL.Query().Get("version"),
		Module:  r.URL.Query().Get("module"),
	}
	if wantMarkdown(r) {
		if !s.checkMarkdown(w, r) {
			return
		}
		out, err := s.Markdown.ModuleListing(r.Context(), in)
		s.respond(w, r, out, err)
		return
	}
	out, err := s.Docs.ModuleListing(r.Context(), in)
	s.respond(w, r, out, err)
}

func (s *Server) handleCacheStats(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusOK, s.Cache.Stats())
}

// handleCacheClear removes the entry named by ?key=, or every entry.
func (s *Server) handleCacheClear(w http.ResponseWriter, r *http.Request) {
	if key := r.URL.Query().Get("key"); key != "" {
		s.Cache.Invalidate(key)
	} else {
		s.Cache.Clear()
	}
	w.WriteHeader(http.StatusNoContent)
}

func wantMarkdown(r *http.Request) bool {
	return r.URL.Query().Get("format") == "markdown"
}

func (s *Server) checkMarkdown(w http.ResponseWriter, r *http.Request) bool {
	if s.Markdown == nil {
		s.writeError(w, r, rustdocs.Errorf(rustdocs.EINVALID, "markdown output is not enabled"))
		return false
	}
	return true
}

func (s *Server) respond(w http.ResponseWriter, r *http.Request, v any, err error) {
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, v)
}
