package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	rustdocs "github.com/Michael-Obele/rust-docs"
	"github.com/Michael-Obele/rust-docs/docs"
	"github.com/Michael-Obele/rust-docs/goquery"
	"github.com/Michael-Obele/rust-docs/htmltomarkdown"
	rdhttp "github.com/Michael-Obele/rust-docs/http"
	"github.com/Michael-Obele/rust-docs/inmem"
	rdslog "github.com/Michael-Obele/rust-docs/slog"
	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Config file path. Set before calling Run() to override the default;
	// the --config flag overrides both.
	ConfigPath string

	// Services for end-to-end testing. Nil services are built from config.
	Cache    rustdocs.Cache
	Registry rustdocs.RegistryService
	Docs     rustdocs.DocsService
	Markdown rustdocs.MarkdownDocsService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		ConfigPath: defaultConfigPath(),
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("rustdocs"),
		kong.Description("Query Rust crate documentation from docs.rs and crates.io."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'rustdocs --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	configPath, explicit := m.ConfigPath, false
	if cli.Config != "" {
		configPath, explicit = cli.Config, true
	}
	cfg, err := LoadConfig(configPath, explicit)
	if err != nil {
		fmt.Fprintf(stderr, "Hint: Set RUSTDOCS_CONFIG or --config to use a different file\n")
		return err
	}
	if cli.Markdown {
		cfg.Docs.Format = FormatMarkdown
	}

	logger, err := newLogger(stderr, cfg.Log.Level, cli.Verbose, isServer(kongCtx.Command()))
	if err != nil {
		return err
	}

	deps.Config = cfg
	deps.Logger = logger
	deps.Output = cli.Output
	m.wire(deps)

	return kongCtx.Run(deps)
}

// wire builds the services the commands use, keeping any set on m.
func (m *Main) wire(deps *Dependencies) {
	cfg := deps.Config
	ttl := cfg.TTLPolicy()

	cache := m.Cache
	if cache == nil {
		cache = inmem.NewCache(inmem.WithShards(cfg.Cache.Shards))
	}

	httpOpts := []rdhttp.Option{
		rdhttp.WithTimeout(time.Duration(cfg.Docs.Timeout)),
		rdhttp.WithUserAgent(cfg.Docs.UserAgent),
	}
	fetcher := rdslog.NewLoggingFetcher(
		rdhttp.NewDocFetcher(append(httpOpts, rdhttp.WithBaseURL(cfg.Docs.BaseURL))...),
		deps.Logger,
	)

	registry := m.Registry
	if registry == nil {
		registry = rdslog.NewLoggingRegistryService(&docs.RegistryService{
			Cache:    cache,
			Registry: rdhttp.NewRegistryClient(append(httpOpts, rdhttp.WithBaseURL(cfg.Registry.BaseURL))...),
			TTL:      ttl,
		}, deps.Logger)
	}

	docsSvc := m.Docs
	if docsSvc == nil {
		docsSvc = rdslog.NewLoggingDocsService(&docs.Service{
			Cache:     cache,
			Fetcher:   fetcher,
			Extractor: goquery.NewExtractor(),
			TTL:       ttl,
		}, deps.Logger)
	}

	var convOpts []htmltomarkdown.Option
	if cfg.Docs.Selector != "" {
		convOpts = append(convOpts, htmltomarkdown.WithSelector(cfg.Docs.Selector))
	}

	markdown := m.Markdown
	if markdown == nil {
		markdown = rdslog.NewLoggingMarkdownService(&docs.MarkdownService{
			Cache:     cache,
			Fetcher:   fetcher,
			Converter: htmltomarkdown.NewConverter(convOpts...),
			TTL:       ttl,
		}, deps.Logger)
	}

	deps.Cache = cache
	deps.Registry = registry
	deps.Docs = docsSvc
	deps.Markdown = markdown
}

// newLogger builds a slog logger backed by charmbracelet/log on w.
func newLogger(w io.Writer, level string, verbose, server bool) (*slog.Logger, error) {
	lvl := log.WarnLevel
	if server {
		lvl = log.InfoLevel
	}
	if level != "" {
		parsed, err := log.ParseLevel(level)
		if err != nil {
			return nil, rustdocs.Errorf(rustdocs.EINVALID, "invalid log level %q", level)
		}
		lvl = parsed
	}
	if verbose {
		lvl = log.DebugLevel
	}
	handler := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           lvl,
	})
	return slog.New(handler), nil
}

func isServer(command string) bool {
	return command == "serve" || command == "mcp"
}
