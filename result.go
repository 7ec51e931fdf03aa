package rustdocs

// ItemLists holds the names documented in each item category of a crate or
// module page. Every list is non-nil.
type ItemLists struct {
	Modules   []string `json:"modules"`
	Structs   []string `json:"structs"`
	Enums     []string `json:"enums"`
	Traits    []string `json:"traits"`
	Functions []string `json:"functions"`
	Macros    []string `json:"macros"`
	Types     []string `json:"types"`
	Constants []string `json:"constants"`
}

// CrateOverview is the structured root page of a crate.
type CrateOverview struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Description string `json:"description"`
	ItemLists   `yaml:",inline"`
	Content     string `json:"content"`
	URL         string `json:"url"`
}

// ItemDocs is the structured page of a single item.
type ItemDocs struct {
	Name            string   `json:"name"`
	Type            ItemType `json:"type"`
	Signature       string   `json:"signature"`
	Description     string   `json:"description"`
	Methods         []string `json:"methods"`
	Variants        []string `json:"variants"`
	Implementations []string `json:"implementations"`
	Examples        string   `json:"examples"`
	URL             string   `json:"url"`
}

// ModuleListing is the categorized item listing of a module.
type ModuleListing struct {
	ItemLists `yaml:",inline"`
	URL       string `json:"url"`
}

// CrateOverviewMarkdown is a crate root page rendered as markdown.
type CrateOverviewMarkdown struct {
	Name     string `json:"name"`
	Version  string `json:"version"`
	Markdown string `json:"markdown"`
	URL      string `json:"url"`
}

// ItemDocsMarkdown is an item page rendered as markdown.
type ItemDocsMarkdown struct {
	Name     string   `json:"name"`
	Type     ItemType `json:"type"`
	Markdown string   `json:"markdown"`
	URL      string   `json:"url"`
}

// ModuleListingMarkdown is a module page rendered as markdown.
type ModuleListingMarkdown struct {
	Markdown string `json:"markdown"`
	URL      string `json:"url"`
}

// Crate is registry metadata for one crate.
type Crate struct {
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Version       string   `json:"version"`
	Downloads     int64    `json:"downloads"`
	Documentation string   `json:"documentation,omitempty"`
	Repository    string   `json:"repository,omitempty"`
	Homepage      string   `json:"homepage,omitempty"`
	Keywords      []string `json:"keywords"`
	Categories    []string `json:"categories"`
}

// SearchResult is one page of registry search results. Total counts the
// crates returned.
type SearchResult struct {
	Crates []Crate `json:"crates"`
	Total  int     `json:"total"`
}

// NewItemLists returns ItemLists with every list empty and non-nil.
func NewItemLists() ItemLists {
	return ItemLists{
		Modules:   []string{},
		Structs:   []string{},
		Enums:     []string{},
		Traits:    []string{},
		Functions: []string{},
		Macros:    []string{},
		Types:     []string{},
		Constants: []string{},
	}
}
