package rustdocs

import "strings"

// Search limits.
const (
	DefaultSearchLimit = 10
	MaxSearchLimit     = 100
)

// SearchInput is the input of a crates.io search.
type SearchInput struct {
	Query string `json:"query" jsonschema:"search terms matched against crate names, descriptions and keywords"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of crates to return (1-100, default 10)"`
}

// WithDefaults fills unset fields.
func (in SearchInput) WithDefaults() SearchInput {
	in.Query = strings.TrimSpace(in.Query)
	if in.Limit == 0 {
		in.Limit = DefaultSearchLimit
	}
	return in
}

// Validate returns EINVALID when the query is blank or the limit is out of range.
func (in SearchInput) Validate() error {
	if strings.TrimSpace(in.Query) == "" {
		return Errorf(EINVALID, "search query required")
	}
	if in.Limit < 1 || in.Limit > MaxSearchLimit {
		return Errorf(EINVALID, "limit must be between 1 and %d, got %d", MaxSearchLimit, in.Limit)
	}
	return nil
}

// CrateInput names a single crate on crates.io.
type CrateInput struct {
	Crate string `json:"crate_name" jsonschema:"exact crate name as published on crates.io"`
}

// Validate returns EINVALID when the crate name is missing or malformed.
func (in CrateInput) Validate() error {
	return validateCrate(strings.TrimSpace(in.Crate))
}

// OverviewInput requests the root page of a crate.
type OverviewInput struct {
	Crate   string `json:"crate_name" jsonschema:"crate name, hyphens and underscores are equivalent"`
	Version string `json:"version,omitempty" jsonschema:"crate version (default latest)"`
}

// Query returns the canonical page query.
func (in OverviewInput) Query() DocumentQuery {
	return DocumentQuery{Crate: in.Crate, Version: in.Version}.Normalize()
}

// Validate returns EINVALID for malformed fields.
func (in OverviewInput) Validate() error {
	return in.Query().Validate()
}

// ItemInput requests the page of a single item.
type ItemInput struct {
	Crate    string   `json:"crate_name" jsonschema:"crate name"`
	Version  string   `json:"version,omitempty" jsonschema:"crate version (default latest)"`
	ItemType ItemType `json:"item_type" jsonschema:"one of struct, enum, trait, fn, macro, type"`
	ItemName string   `json:"item_name" jsonschema:"item name, e.g. Runtime"`
	Module   string   `json:"module_path,omitempty" jsonschema:"module path inside the crate, e.g. sync or runtime::task"`
}

// Query returns the canonical page query.
func (in ItemInput) Query() DocumentQuery {
	return DocumentQuery{
		Crate:      in.Crate,
		Version:    in.Version,
		ModulePath: in.Module,
		ItemType:   ItemType(strings.ToLower(strings.TrimSpace(string(in.ItemType)))),
		ItemName:   in.ItemName,
	}.Normalize()
}

// Validate returns EINVALID for malformed fields. Item type and name are
// required.
func (in ItemInput) Validate() error {
	q := in.Query()
	if q.ItemType == "" {
		return Errorf(EINVALID, "item type required")
	}
	if q.ItemName == "" {
		return Errorf(EINVALID, "item name required")
	}
	return q.Validate()
}

// ModuleInput requests the item listing of a module, or of the crate root
// when Module is empty.
type ModuleInput struct {
	Crate   string `json:"crate_name" jsonschema:"crate name"`
	Version string `json:"version,omitempty" jsonschema:"crate version (default latest)"`
	Module  string `json:"module_path,omitempty" jsonschema:"module path inside the crate, empty for the crate root"`
}

// Query returns the canonical page query.
func (in ModuleInput) Query() DocumentQuery {
	return DocumentQuery{Crate: in.Crate, Version: in.Version, ModulePath: in.Module}.Normalize()
}

// Validate returns EINVALID for malformed fields.
func (in ModuleInput) Validate() error {
	return in.Query().Validate()
}
