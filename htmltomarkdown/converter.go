// Package htmltomarkdown renders docs.rs pages as Markdown.
package htmltomarkdown

import (
	"bytes"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	rustdocs "github.com/Michael-Obele/rust-docs"
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Ensure Converter implements rustdocs.Converter at compile time.
var _ rustdocs.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown with a fixed rendering configuration:
// ATX headings, fenced code blocks, "*" emphasis, "**" strong and inline
// links.
type Converter struct {
	conv     *converter.Converter
	selector string
}

// Option configures a Converter.
type Option func(*Converter)

// WithSelector restricts conversion to the first element matching sel.
// Documents without a match are converted whole.
func WithSelector(sel string) Option {
	return func(c *Converter) {
		c.selector = sel
	}
}

// NewConverter creates a new Converter.
func NewConverter(opts ...Option) *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(
				commonmark.WithHeadingStyle(commonmark.HeadingStyleATX),
				commonmark.WithCodeBlockFence("```"),
				commonmark.WithEmDelimiter("*"),
				commonmark.WithStrongDelimiter("**"),
			),
			table.NewTablePlugin(),
		),
	)
	c := &Converter{conv: conv}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert transforms HTML content into Markdown.
func (c *Converter) Convert(input, baseURL string) (string, error) {
	if strings.TrimSpace(input) == "" {
		return "", rustdocs.Errorf(rustdocs.EINVALID, "empty HTML input")
	}

	node, err := c.root(input)
	if err != nil {
		return "", err
	}

	var opts []converter.ConvertOptionFunc
	if baseURL != "" {
		opts = append(opts, converter.WithDomain(baseURL))
	}
	out, err := c.conv.ConvertNode(node, opts...)
	if err != nil {
		return "", err
	}

	return string(bytes.TrimSpace(out)), nil
}

// root parses input and returns the node to convert.
func (c *Converter) root(input string) (*html.Node, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(input))
	if err != nil {
		return nil, rustdocs.Errorf(rustdocs.EINVALID, "failed to parse HTML: %v", err)
	}
	if c.selector != "" {
		if sel := doc.Find(c.selector).First(); sel.Length() > 0 {
			return sel.Get(0), nil
		}
	}
	return doc.Get(0), nil
}
