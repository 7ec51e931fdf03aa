package mock

import rustdocs "github.com/Michael-Obele/rust-docs"

var _ rustdocs.Converter = (*Converter)(nil)

// Converter is a mock implementation of rustdocs.Converter.
type Converter struct {
	ConvertFn func(html, baseURL string) (string, error)
}

func (c *Converter) Convert(html, baseURL string) (string, error) {
	return c.ConvertFn(html, baseURL)
}
