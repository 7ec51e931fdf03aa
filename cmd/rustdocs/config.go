package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	rustdocs "github.com/Michael-Obele/rust-docs"
	rdhttp "github.com/Michael-Obele/rust-docs/http"
)

// Output formats for documentation commands.
const (
	FormatStructured = "structured"
	FormatMarkdown   = "markdown"
)

// Config is the TOML configuration file.
type Config struct {
	Docs     DocsConfig     `toml:"docs"`
	Registry RegistryConfig `toml:"registry"`
	Cache    CacheConfig    `toml:"cache"`
	Server   ServerConfig   `toml:"server"`
	Log      LogConfig      `toml:"log"`
}

type DocsConfig struct {
	BaseURL   string   `toml:"base-url"`
	Timeout   Duration `toml:"timeout"`
	UserAgent string   `toml:"user-agent"`
	Format    string   `toml:"format"`

	// Selector restricts markdown rendering to the first matching element.
	// Empty renders the whole page.
	Selector string `toml:"selector"`
}

type RegistryConfig struct {
	BaseURL string `toml:"base-url"`
}

type CacheConfig struct {
	SearchTTL    Duration `toml:"search-ttl"`
	LatestTTL    Duration `toml:"latest-ttl"`
	VersionedTTL Duration `toml:"versioned-ttl"`
	Shards       int      `toml:"shards"`
}

type ServerConfig struct {
	Addr string `toml:"addr"`
}

type LogConfig struct {
	// Level is one of debug, info, warn or error. Empty picks info for the
	// servers and warn for one-shot commands.
	Level string `toml:"level"`
}

// Duration is a time.Duration written as a string such as "30m".
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	ttl := rustdocs.DefaultTTLPolicy()
	return Config{
		Docs: DocsConfig{
			BaseURL:   rdhttp.DefaultDocsBaseURL,
			Timeout:   Duration(rdhttp.DefaultFetchTimeout),
			UserAgent: rdhttp.DefaultUserAgent,
			Format:    FormatStructured,
		},
		Registry: RegistryConfig{BaseURL: rdhttp.DefaultRegistryBaseURL},
		Cache: CacheConfig{
			SearchTTL:    Duration(ttl.Search),
			LatestTTL:    Duration(ttl.Latest),
			VersionedTTL: Duration(ttl.Versioned),
			Shards:       16,
		},
		Server: ServerConfig{Addr: "127.0.0.1:8080"},
	}
}

// TTLPolicy returns the cache TTLs as a policy.
func (c Config) TTLPolicy() rustdocs.TTLPolicy {
	return rustdocs.TTLPolicy{
		Search:    time.Duration(c.Cache.SearchTTL),
		Latest:    time.Duration(c.Cache.LatestTTL),
		Versioned: time.Duration(c.Cache.VersionedTTL),
	}
}

// Validate returns EINVALID for settings the services cannot use.
func (c Config) Validate() error {
	switch c.Docs.Format {
	case FormatStructured, FormatMarkdown:
	default:
		return rustdocs.Errorf(rustdocs.EINVALID, "docs.format must be %q or %q, got %q", FormatStructured, FormatMarkdown, c.Docs.Format)
	}
	if c.Cache.Shards < 1 {
		return rustdocs.Errorf(rustdocs.EINVALID, "cache.shards must be positive, got %d", c.Cache.Shards)
	}
	return nil
}

// LoadConfig reads the file at path over DefaultConfig. A missing file is
// only an error when the path was given explicitly.
func LoadConfig(path string, explicit bool) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	_, err := toml.DecodeFile(path, &cfg)
	if errors.Is(err, fs.ErrNotExist) && !explicit {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("failed to load config %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// defaultConfigPath returns RUSTDOCS_CONFIG or ~/.config/rust-docs/config.toml.
func defaultConfigPath() string {
	if path := os.Getenv("RUSTDOCS_CONFIG"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "rust-docs", "config.toml")
}
