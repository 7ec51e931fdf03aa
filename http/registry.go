package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	rustdocs "github.com/Michael-Obele/rust-docs"
)

// DefaultRegistryBaseURL is the crates.io API root.
const DefaultRegistryBaseURL = "https://crates.io/api/v1"

// Ensure RegistryClient implements rustdocs.Registry at compile time.
var _ rustdocs.Registry = (*RegistryClient)(nil)

// RegistryClient queries the crates.io API. crates.io requires a User-Agent
// naming the tool and a contact; every request carries one.
type RegistryClient struct {
	client    *http.Client
	baseURL   string
	userAgent string
}

// NewRegistryClient creates a new RegistryClient.
func NewRegistryClient(opts ...Option) *RegistryClient {
	o := buildOptions(DefaultRegistryBaseURL, opts)
	return &RegistryClient{
		client:    o.client,
		baseURL:   o.baseURL,
		userAgent: o.userAgent,
	}
}

// Search returns up to limit crates matching query, in crates.io relevance
// order.
func (c *RegistryClient) Search(ctx context.Context, query string, limit int) (*rustdocs.SearchResult, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("per_page", strconv.Itoa(limit))

	var data searchResponse
	if err := c.get(ctx, c.baseURL+"/crates?"+params.Encode(), &data); err != nil {
		return nil, err
	}

	crates := make([]rustdocs.Crate, 0, len(data.Crates))
	for _, cr := range data.Crates {
		crates = append(crates, cr.toCrate())
	}
	return &rustdocs.SearchResult{Crates: crates, Total: len(crates)}, nil
}

// Crate returns metadata for the named crate.
func (c *RegistryClient) Crate(ctx context.Context, name string) (*rustdocs.Crate, error) {
	var data crateResponse
	if err := c.get(ctx, c.baseURL+"/crates/"+url.PathEscape(name), &data); err != nil {
		if rustdocs.ErrorCode(err) == rustdocs.ENOTFOUND {
			return nil, rustdocs.Errorf(rustdocs.ENOTFOUND, "Crate '%s' not found on crates.io", name)
		}
		return nil, err
	}
	cr := data.Crate.toCrate()
	return &cr, nil
}

func (c *RegistryClient) get(ctx context.Context, url string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return rustdocs.Errorf(rustdocs.EUPSTREAM, "fetch %s: %v", url, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return rustdocs.Errorf(rustdocs.ENOTFOUND, "%s not found", url)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return rustdocs.Errorf(rustdocs.EUPSTREAM, "crates.io returned %d: %s", resp.StatusCode, statusText(resp))
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return rustdocs.Errorf(rustdocs.EUPSTREAM, "decode crates.io response: %v", err)
	}
	return nil
}

type searchResponse struct {
	Crates []crateJSON `json:"crates"`
}

type crateResponse struct {
	Crate crateJSON `json:"crate"`
}

type crateJSON struct {
	Name          string   `json:"name"`
	Description   *string  `json:"description"`
	MaxVersion    string   `json:"max_version"`
	Downloads     int64    `json:"downloads"`
	Documentation *string  `json:"documentation"`
	Repository    *string  `json:"repository"`
	Homepage      *string  `json:"homepage"`
	Keywords      []string `json:"keywords"`
	Categories    []string `json:"categories"`
}

func (c crateJSON) toCrate() rustdocs.Crate {
	return rustdocs.Crate{
		Name:          c.Name,
		Description:   deref(c.Description),
		Version:       c.MaxVersion,
		Downloads:     c.Downloads,
		Documentation: deref(c.Documentation),
		Repository:    deref(c.Repository),
		Homepage:      deref(c.Homepage),
		Keywords:      nonNil(c.Keywords),
		Categories:    nonNil(c.Categories),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
