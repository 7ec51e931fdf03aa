package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"

	rustdocs "github.com/Michael-Obele/rust-docs"
	main "github.com/Michael-Obele/rust-docs/cmd/rustdocs"
	"github.com/Michael-Obele/rust-docs/inmem"
	"github.com/Michael-Obele/rust-docs/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newMain returns a Main that reads no config file and uses the given
// services.
func newMain(t *testing.T, registry rustdocs.RegistryService, docs rustdocs.DocsService, markdown rustdocs.MarkdownDocsService) *main.Main {
	t.Helper()
	m := main.NewMain()
	m.ConfigPath = filepath.Join(t.TempDir(), "missing.toml")
	m.Cache = inmem.NewCache()
	m.Registry = registry
	m.Docs = docs
	m.Markdown = markdown
	return m
}

func run(t *testing.T, m *main.Main, args ...string) (string, string, error) {
	t.Helper()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	err := m.Run(context.Background(), args, stdout, stderr)
	return stdout.String(), stderr.String(), err
}

func TestRun_Help(t *testing.T) {
	t.Parallel()

	m := newMain(t, nil, nil, nil)

	stdout, _, err := run(t, m, "--help")

	require.NoError(t, err)
	for _, cmd := range []string{"search", "info", "overview", "item", "modules", "prompts", "serve", "mcp"} {
		assert.Contains(t, stdout, cmd)
	}
	assert.Contains(t, stdout, "Usage:")
}

func TestRun_NoArgs(t *testing.T) {
	t.Parallel()

	m := newMain(t, nil, nil, nil)

	_, _, err := run(t, m)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no command specified")
}

func TestCmdSearch(t *testing.T) {
	t.Parallel()

	registry := &mock.RegistryService{
		SearchCratesFn: func(ctx context.Context, in rustdocs.SearchInput) (*rustdocs.SearchResult, error) {
			assert.Equal(t, "http client", in.Query)
			assert.Equal(t, 3, in.Limit)
			return &rustdocs.SearchResult{
				Crates: []rustdocs.Crate{{Name: "reqwest", Version: "0.12.4", Description: "higher level HTTP client", Downloads: 42}},
				Total:  1,
			}, nil
		},
	}

	t.Run("prints text", func(t *testing.T) {
		t.Parallel()

		stdout, stderr, err := run(t, newMain(t, registry, nil, nil), "search", "http client", "-n", "3")

		require.NoError(t, err)
		assert.Empty(t, stderr)
		assert.Contains(t, stdout, "reqwest")
		assert.Contains(t, stdout, "higher level HTTP client")
	})

	t.Run("prints json", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := run(t, newMain(t, registry, nil, nil), "search", "http client", "-n", "3", "--output", "json")

		require.NoError(t, err)
		var out rustdocs.SearchResult
		require.NoError(t, json.Unmarshal([]byte(stdout), &out))
		assert.Equal(t, "reqwest", out.Crates[0].Name)
	})
}

func TestCmdInfo(t *testing.T) {
	t.Parallel()

	t.Run("prints metadata", func(t *testing.T) {
		t.Parallel()

		registry := &mock.RegistryService{
			CrateInfoFn: func(ctx context.Context, in rustdocs.CrateInput) (*rustdocs.Crate, error) {
				return &rustdocs.Crate{Name: in.Crate, Version: "1.0.86", Repository: "https://github.com/dtolnay/anyhow", Keywords: []string{"error"}}, nil
			},
		}

		stdout, _, err := run(t, newMain(t, registry, nil, nil), "info", "anyhow")

		require.NoError(t, err)
		assert.Contains(t, stdout, "anyhow")
		assert.Contains(t, stdout, "https://github.com/dtolnay/anyhow")
		assert.Contains(t, stdout, "Keywords:")
	})

	t.Run("reports not found", func(t *testing.T) {
		t.Parallel()

		registry := &mock.RegistryService{
			CrateInfoFn: func(ctx context.Context, in rustdocs.CrateInput) (*rustdocs.Crate, error) {
				return nil, rustdocs.Errorf(rustdocs.ENOTFOUND, "Crate 'nope' not found on crates.io")
			},
		}

		stdout, stderr, err := run(t, newMain(t, registry, nil, nil), "info", "nope")

		require.Error(t, err)
		assert.Equal(t, rustdocs.ENOTFOUND, rustdocs.ErrorCode(err))
		assert.Empty(t, stdout)
		assert.Contains(t, stderr, "error: Crate 'nope' not found on crates.io")
	})
}

func TestCmdOverview(t *testing.T) {
	t.Parallel()

	t.Run("prints item lists", func(t *testing.T) {
		t.Parallel()

		docs := &mock.DocsService{
			CrateOverviewFn: func(ctx context.Context, in rustdocs.OverviewInput) (*rustdocs.CrateOverview, error) {
				lists := rustdocs.NewItemLists()
				lists.Modules = []string{"runtime", "sync"}
				return &rustdocs.CrateOverview{Name: in.Crate, Version: in.Version, ItemLists: lists, URL: "https://docs.rs/tokio/latest/tokio/"}, nil
			},
		}

		stdout, _, err := run(t, newMain(t, nil, docs, nil), "overview", "tokio")

		require.NoError(t, err)
		assert.Contains(t, stdout, "Modules (2)")
		assert.Contains(t, stdout, "  runtime\n")
		assert.NotContains(t, stdout, "Structs")
	})

	t.Run("prints markdown with flag", func(t *testing.T) {
		t.Parallel()

		markdown := &mock.MarkdownDocsService{
			CrateOverviewFn: func(ctx context.Context, in rustdocs.OverviewInput) (*rustdocs.CrateOverviewMarkdown, error) {
				return &rustdocs.CrateOverviewMarkdown{Name: in.Crate, Markdown: "# Crate serde"}, nil
			},
		}

		stdout, _, err := run(t, newMain(t, nil, nil, markdown), "--markdown", "overview", "serde")

		require.NoError(t, err)
		assert.Equal(t, "# Crate serde\n", stdout)
	})
}

const tokioPage = `<html><body>
<nav class="sidebar"><a href="all.html">All Items</a></nav>
<section id="main-content"><h1>Crate tokio</h1><p>A runtime.</p></section>
</body></html>`

// docsServer serves tokioPage for every path.
func docsServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(tokioPage))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestCmdOverview_WiredMarkdown(t *testing.T) {
	t.Parallel()

	t.Run("renders the whole page by default", func(t *testing.T) {
		t.Parallel()

		srv := docsServer(t)
		m := newMain(t, nil, nil, nil)
		m.ConfigPath = writeConfig(t, "[docs]\nbase-url = \""+srv.URL+"\"\n")

		stdout, _, err := run(t, m, "--markdown", "overview", "tokio")

		require.NoError(t, err)
		assert.Contains(t, stdout, "All Items")
		assert.Contains(t, stdout, "# Crate tokio")
	})

	t.Run("selector restricts rendering", func(t *testing.T) {
		t.Parallel()

		srv := docsServer(t)
		m := newMain(t, nil, nil, nil)
		m.ConfigPath = writeConfig(t, "[docs]\nbase-url = \""+srv.URL+"\"\nselector = \"#main-content\"\n")

		stdout, _, err := run(t, m, "--markdown", "overview", "tokio")

		require.NoError(t, err)
		assert.NotContains(t, stdout, "All Items")
		assert.Contains(t, stdout, "A runtime.")
	})
}

func TestCmdItem(t *testing.T) {
	t.Parallel()

	t.Run("fetches every name and keeps argument order", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		docs := &mock.DocsService{
			ItemDocsFn: func(ctx context.Context, in rustdocs.ItemInput) (*rustdocs.ItemDocs, error) {
				calls.Add(1)
				assert.Equal(t, "sync", in.Module)
				return &rustdocs.ItemDocs{Name: in.ItemName, Type: in.ItemType}, nil
			},
		}

		stdout, _, err := run(t, newMain(t, nil, docs, nil), "item", "tokio", "struct", "Mutex", "RwLock", "Notify", "--module", "sync", "-o", "json")

		require.NoError(t, err)
		assert.Equal(t, int32(3), calls.Load())
		var out []rustdocs.ItemDocs
		require.NoError(t, json.Unmarshal([]byte(stdout), &out))
		require.Len(t, out, 3)
		assert.Equal(t, "Mutex", out[0].Name)
		assert.Equal(t, "RwLock", out[1].Name)
		assert.Equal(t, "Notify", out[2].Name)
	})

	t.Run("fails when any item fails", func(t *testing.T) {
		t.Parallel()

		docs := &mock.DocsService{
			ItemDocsFn: func(ctx context.Context, in rustdocs.ItemInput) (*rustdocs.ItemDocs, error) {
				if in.ItemName == "Missing" {
					return nil, rustdocs.Errorf(rustdocs.ENOTFOUND, "failed to get item docs for 'tokio::Missing'")
				}
				return &rustdocs.ItemDocs{Name: in.ItemName}, nil
			},
		}

		stdout, stderr, err := run(t, newMain(t, nil, docs, nil), "item", "tokio", "struct", "Runtime", "Missing")

		require.Error(t, err)
		assert.Empty(t, stdout)
		assert.Contains(t, stderr, "tokio::Missing")
	})
}

func TestCmdModules(t *testing.T) {
	t.Parallel()

	docs := &mock.DocsService{
		ModuleListingFn: func(ctx context.Context, in rustdocs.ModuleInput) (*rustdocs.ModuleListing, error) {
			assert.Equal(t, "sync::mpsc", in.Module)
			lists := rustdocs.NewItemLists()
			lists.Structs = []string{"Sender"}
			return &rustdocs.ModuleListing{ItemLists: lists, URL: "https://docs.rs/tokio/latest/tokio/sync/mpsc/"}, nil
		},
	}

	stdout, _, err := run(t, newMain(t, nil, docs, nil), "modules", "tokio", "sync::mpsc", "-o", "yaml")

	require.NoError(t, err)
	assert.Contains(t, stdout, "structs:")
	assert.Contains(t, stdout, "- Sender")
	assert.Contains(t, stdout, "url: https://docs.rs/tokio/latest/tokio/sync/mpsc/")
}

func TestCmdPrompts(t *testing.T) {
	t.Parallel()

	t.Run("lists templates", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := run(t, newMain(t, nil, nil, nil), "prompts", "list")

		require.NoError(t, err)
		assert.Contains(t, stdout, "implement-trait")
		assert.Contains(t, stdout, "optimize-for-performance")
	})

	t.Run("renders template with args", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := run(t, newMain(t, nil, nil, nil), "prompts", "show", "implement-trait", "-a", "trait_name=Iterator", "-a", "type_name=Counter")

		require.NoError(t, err)
		assert.Contains(t, stdout, "implement the Iterator trait for Counter")
	})

	t.Run("unknown template hints at list", func(t *testing.T) {
		t.Parallel()

		_, stderr, err := run(t, newMain(t, nil, nil, nil), "prompts", "show", "nope")

		require.Error(t, err)
		assert.Contains(t, stderr, "rustdocs prompts list")
	})
}

func TestRun_ExplicitConfigMissing(t *testing.T) {
	t.Parallel()

	m := newMain(t, nil, nil, nil)

	_, stderr, err := run(t, m, "--config", filepath.Join(t.TempDir(), "nope.toml"), "prompts", "list")

	require.Error(t, err)
	assert.Contains(t, stderr, "RUSTDOCS_CONFIG")
}
