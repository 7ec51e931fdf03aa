package goquery

import (
	"strings"

	rustdocs "github.com/Michael-Obele/rust-docs"
	"github.com/PuerkitoBio/goquery"
)

// MaxContentLength bounds CrateOverview.Content in runes.
const MaxContentLength = 5000

// Ensure Extractor implements rustdocs.Extractor at compile time.
var _ rustdocs.Extractor = (*Extractor)(nil)

// Extractor reads rustdoc pages with CSS selectors. Selectors are tolerant of
// the layouts docs.rs has served over time; a missing section is reported as
// an empty value.
type Extractor struct {
	strategies []ItemStrategy
}

// ExtractorOption configures an Extractor.
type ExtractorOption func(*Extractor)

// WithItemStrategies replaces DefaultItemStrategies.
func WithItemStrategies(s ...ItemStrategy) ExtractorOption {
	return func(e *Extractor) {
		e.strategies = s
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...ExtractorOption) *Extractor {
	e := &Extractor{strategies: DefaultItemStrategies}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExtractOverview reads a crate root page.
func (e *Extractor) ExtractOverview(page *rustdocs.Page, q rustdocs.DocumentQuery) (*rustdocs.CrateOverview, error) {
	doc, err := parse(page)
	if err != nil {
		return nil, err
	}
	q = q.Normalize()

	return &rustdocs.CrateOverview{
		Name:        q.Crate,
		Version:     q.Version,
		Description: firstText(doc, ".docblock"),
		ItemLists:   e.itemLists(doc),
		Content:     truncate(strings.TrimSpace(doc.Find("main").Text()), MaxContentLength),
		URL:         page.URL,
	}, nil
}

// ExtractItem reads a single item page.
func (e *Extractor) ExtractItem(page *rustdocs.Page, q rustdocs.DocumentQuery) (*rustdocs.ItemDocs, error) {
	doc, err := parse(page)
	if err != nil {
		return nil, err
	}
	q = q.Normalize()

	implementations := []string{}
	doc.Find("#trait-implementations-list h3, #implementations-list h3").Each(func(_ int, s *goquery.Selection) {
		if text := strings.TrimSpace(s.Text()); text != "" {
			implementations = append(implementations, text)
		}
	})

	var examples []string
	doc.Find(".docblock pre.rust, .example-wrap pre.rust").Each(func(_ int, s *goquery.Selection) {
		if text := strings.TrimSpace(s.Text()); text != "" {
			examples = append(examples, text)
		}
	})

	return &rustdocs.ItemDocs{
		Name:            q.ItemName,
		Type:            q.ItemType,
		Signature:       firstText(doc, ".item-decl", ".rust.item-decl"),
		Description:     firstText(doc, ".docblock"),
		Methods:         childTexts(doc, ".method, .impl-items .method", ".code-header, .fn"),
		Variants:        childTexts(doc, ".variant", ".code-header"),
		Implementations: implementations,
		Examples:        strings.Join(examples, "\n\n"),
		URL:             page.URL,
	}, nil
}

// ExtractModule reads the item listing of a crate root or module page.
func (e *Extractor) ExtractModule(page *rustdocs.Page) (*rustdocs.ModuleListing, error) {
	doc, err := parse(page)
	if err != nil {
		return nil, err
	}
	return &rustdocs.ModuleListing{
		ItemLists: e.itemLists(doc),
		URL:       page.URL,
	}, nil
}

func (e *Extractor) itemLists(doc *goquery.Document) rustdocs.ItemLists {
	return rustdocs.ItemLists{
		Modules:   extractItems(doc, CategoryModules, e.strategies),
		Structs:   extractItems(doc, CategoryStructs, e.strategies),
		Enums:     extractItems(doc, CategoryEnums, e.strategies),
		Traits:    extractItems(doc, CategoryTraits, e.strategies),
		Functions: extractItems(doc, CategoryFunctions, e.strategies),
		Macros:    extractItems(doc, CategoryMacros, e.strategies),
		Types:     extractItems(doc, CategoryTypes, e.strategies),
		Constants: extractItems(doc, CategoryConstants, e.strategies),
	}
}

func parse(page *rustdocs.Page) (*goquery.Document, error) {
	if page == nil {
		return nil, rustdocs.Errorf(rustdocs.EINVALID, "no page to extract")
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page.HTML))
	if err != nil {
		return nil, rustdocs.Errorf(rustdocs.EINVALID, "failed to parse HTML: %v", err)
	}
	return doc, nil
}
