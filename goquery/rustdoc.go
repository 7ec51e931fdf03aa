package goquery

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Category is an item section of a rustdoc crate or module page.
type Category struct {
	// SectionID is the id of the heading that opens the section.
	SectionID string
	// AnchorClass is the class rustdoc puts on links to items of this kind.
	AnchorClass string
}

// Categories in the order rustdoc renders them.
var (
	CategoryModules   = Category{SectionID: "modules", AnchorClass: "mod"}
	CategoryStructs   = Category{SectionID: "structs", AnchorClass: "struct"}
	CategoryEnums     = Category{SectionID: "enums", AnchorClass: "enum"}
	CategoryTraits    = Category{SectionID: "traits", AnchorClass: "trait"}
	CategoryFunctions = Category{SectionID: "functions", AnchorClass: "fn"}
	CategoryMacros    = Category{SectionID: "macros", AnchorClass: "macro"}
	CategoryTypes     = Category{SectionID: "types", AnchorClass: "type"}
	CategoryConstants = Category{SectionID: "constants", AnchorClass: "constant"}
)

// ItemStrategy collects item names for one category from a section heading.
// It returns nil when its layout is not present.
type ItemStrategy func(section *goquery.Selection, c Category) []string

// DefaultItemStrategies are tried in order until one returns names:
// the current item table layout, the same table keyed by anchor class, and
// the legacy left-column layout.
var DefaultItemStrategies = []ItemStrategy{
	ItemTableStrategy,
	AnchorClassStrategy,
	LegacyLayoutStrategy,
}

// ItemTableStrategy reads "dt a" entries of the item table that directly
// follows the section heading.
func ItemTableStrategy(section *goquery.Selection, _ Category) []string {
	return texts(section.NextFiltered(".item-table").Find("dt a"))
}

// AnchorClassStrategy reads anchors carrying the category's class inside the
// item table that directly follows the section heading.
func AnchorClassStrategy(section *goquery.Selection, c Category) []string {
	return texts(section.NextFiltered(".item-table").Find(fmt.Sprintf("a.%s", c.AnchorClass)))
}

// LegacyLayoutStrategy reads ".item-left a" anywhere under the section's
// parent, the layout of older rustdoc releases.
func LegacyLayoutStrategy(section *goquery.Selection, _ Category) []string {
	return texts(section.Parent().Find(".item-left a"))
}

func extractItems(doc *goquery.Document, c Category, strategies []ItemStrategy) []string {
	section := doc.Find("#" + c.SectionID).First()
	if section.Length() == 0 {
		return []string{}
	}
	for _, s := range strategies {
		if names := s(section, c); len(names) > 0 {
			return names
		}
	}
	return []string{}
}

// firstText returns the trimmed text of the first element matching any of
// selectors, tried in order.
func firstText(doc *goquery.Document, selectors ...string) string {
	for _, sel := range selectors {
		if s := doc.Find(sel).First(); s.Length() > 0 {
			if text := strings.TrimSpace(s.Text()); text != "" {
				return text
			}
		}
	}
	return ""
}

// childTexts returns, for every element matching parent, the trimmed text of
// its first descendant matching child. Empty texts are skipped.
func childTexts(doc *goquery.Document, parent, child string) []string {
	out := []string{}
	doc.Find(parent).Each(func(_ int, s *goquery.Selection) {
		if text := strings.TrimSpace(s.Find(child).First().Text()); text != "" {
			out = append(out, text)
		}
	})
	return out
}

func texts(sel *goquery.Selection) []string {
	var out []string
	sel.Each(func(_ int, s *goquery.Selection) {
		if text := strings.TrimSpace(s.Text()); text != "" {
			out = append(out, text)
		}
	})
	return out
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
