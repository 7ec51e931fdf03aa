package mock

import rustdocs "github.com/Michael-Obele/rust-docs"

var _ rustdocs.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of rustdocs.Extractor.
type Extractor struct {
	ExtractOverviewFn func(page *rustdocs.Page, q rustdocs.DocumentQuery) (*rustdocs.CrateOverview, error)
	ExtractItemFn     func(page *rustdocs.Page, q rustdocs.DocumentQuery) (*rustdocs.ItemDocs, error)
	ExtractModuleFn   func(page *rustdocs.Page) (*rustdocs.ModuleListing, error)
}

func (e *Extractor) ExtractOverview(page *rustdocs.Page, q rustdocs.DocumentQuery) (*rustdocs.CrateOverview, error) {
	return e.ExtractOverviewFn(page, q)
}

func (e *Extractor) ExtractItem(page *rustdocs.Page, q rustdocs.DocumentQuery) (*rustdocs.ItemDocs, error) {
	return e.ExtractItemFn(page, q)
}

func (e *Extractor) ExtractModule(page *rustdocs.Page) (*rustdocs.ModuleListing, error) {
	return e.ExtractModuleFn(page)
}
