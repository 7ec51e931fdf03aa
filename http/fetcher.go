// Package http provides HTTP clients for docs.rs pages and the crates.io
// registry API.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	rustdocs "github.com/Michael-Obele/rust-docs"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultDocsBaseURL is the docs.rs origin.
const DefaultDocsBaseURL = "https://docs.rs"

// DefaultUserAgent identifies this tool to docs.rs and crates.io.
var DefaultUserAgent = fmt.Sprintf("rust-docs/%s (%s)", rustdocs.Version, rustdocs.RepositoryURL)

// Ensure DocFetcher implements rustdocs.DocumentFetcher at compile time.
var _ rustdocs.DocumentFetcher = (*DocFetcher)(nil)

// DocFetcher retrieves docs.rs pages. It performs a single attempt per call
// and classifies the response as a page, a missing page or an upstream
// failure.
type DocFetcher struct {
	client    *http.Client
	baseURL   string
	userAgent string
	timeout   time.Duration
}

// Option configures a DocFetcher or RegistryClient.
type Option func(*options)

type options struct {
	client    *http.Client
	baseURL   string
	userAgent string
	timeout   time.Duration
}

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
	}
}

// WithBaseURL overrides the service origin.
func WithBaseURL(u string) Option {
	return func(o *options) {
		o.baseURL = u
	}
}

// WithUserAgent overrides DefaultUserAgent.
func WithUserAgent(ua string) Option {
	return func(o *options) {
		o.userAgent = ua
	}
}

// WithHTTPClient sets the underlying client. The timeout option is ignored
// when a client is supplied.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) {
		o.client = c
	}
}

func buildOptions(baseURL string, opts []Option) options {
	o := options{
		baseURL:   baseURL,
		userAgent: DefaultUserAgent,
		timeout:   DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.client == nil {
		o.client = &http.Client{Timeout: o.timeout}
	}
	return o
}

// NewDocFetcher creates a new DocFetcher.
func NewDocFetcher(opts ...Option) *DocFetcher {
	o := buildOptions(DefaultDocsBaseURL, opts)
	return &DocFetcher{
		client:    o.client,
		baseURL:   o.baseURL,
		userAgent: o.userAgent,
		timeout:   o.timeout,
	}
}

// BaseURL returns the docs.rs origin this fetcher targets.
func (f *DocFetcher) BaseURL() string {
	return f.baseURL
}

// Fetch retrieves the page addressed by q.
func (f *DocFetcher) Fetch(ctx context.Context, q rustdocs.DocumentQuery) (*rustdocs.Page, error) {
	url := q.URL(f.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, rustdocs.Errorf(rustdocs.EUPSTREAM, "fetch %s: %v", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, rustdocs.Errorf(rustdocs.EUPSTREAM, "read %s: %v", url, err)
	}
	html := string(body)

	if resp.StatusCode == http.StatusNotFound || rustdocs.IsNotFoundPage(html) {
		return nil, rustdocs.Errorf(rustdocs.ENOTFOUND, "%s", q.NotFoundMessage())
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, rustdocs.Errorf(rustdocs.EUPSTREAM, "docs.rs returned %d: %s", resp.StatusCode, statusText(resp))
	}

	return &rustdocs.Page{
		URL:        url,
		HTML:       html,
		StatusCode: resp.StatusCode,
	}, nil
}

func statusText(resp *http.Response) string {
	if t := http.StatusText(resp.StatusCode); t != "" {
		return t
	}
	return resp.Status
}
