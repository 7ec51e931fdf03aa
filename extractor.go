package rustdocs

// Extractor pulls structured fields out of docs.rs pages. Missing sections
// yield empty values, never errors; only unparseable HTML fails.
type Extractor interface {
	// ExtractOverview reads a crate root page.
	ExtractOverview(page *Page, q DocumentQuery) (*CrateOverview, error)

	// ExtractItem reads a single item page.
	ExtractItem(page *Page, q DocumentQuery) (*ItemDocs, error)

	// ExtractModule reads the item listing of a module page.
	ExtractModule(page *Page) (*ModuleListing, error)
}
