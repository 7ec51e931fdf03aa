package rustdocs

import (
	"fmt"
	"regexp"
	"strings"
)

// LatestVersion is the version sentinel docs.rs resolves to the newest
// published release.
const LatestVersion = "latest"

// ItemType is the kind of a documented item. Values match the prefix docs.rs
// uses in item page file names (e.g. "struct.Runtime.html").
type ItemType string

// Item types accepted by item documentation lookups.
const (
	ItemStruct ItemType = "struct"
	ItemEnum   ItemType = "enum"
	ItemTrait  ItemType = "trait"
	ItemFn     ItemType = "fn"
	ItemMacro  ItemType = "macro"
	ItemAlias  ItemType = "type"
)

// ItemTypes lists every valid ItemType in display order.
var ItemTypes = []ItemType{ItemStruct, ItemEnum, ItemTrait, ItemFn, ItemMacro, ItemAlias}

// ParseItemType validates s as an ItemType.
func ParseItemType(s string) (ItemType, error) {
	t := ItemType(strings.ToLower(strings.TrimSpace(s)))
	for _, v := range ItemTypes {
		if t == v {
			return t, nil
		}
	}
	return "", Errorf(EINVALID, "invalid item type %q: must be one of struct, enum, trait, fn, macro, type", s)
}

var (
	crateNameRE  = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
	itemNameRE   = regexp.MustCompile(`^[A-Za-z0-9_]+$`)
	moduleSegRE  = regexp.MustCompile(`^[A-Za-z0-9_]+$`)
	whitespaceRE = regexp.MustCompile(`\s`)
)

// NormalizeCrateName rewrites hyphens to underscores, the form docs.rs uses
// for the crate's root module path segment. Applying it twice is a no-op.
func NormalizeCrateName(name string) string {
	return strings.ReplaceAll(name, "-", "_")
}

// NormalizeVersion trims v and defaults an empty value to LatestVersion.
func NormalizeVersion(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return LatestVersion
	}
	return v
}

// NormalizeModulePath converts a module path written with either "::" or
// "/" separators into the slash form used in URLs. Empty segments are
// dropped and hyphens become underscores.
func NormalizeModulePath(module string) string {
	module = strings.TrimSpace(module)
	module = strings.ReplaceAll(module, "::", "/")
	parts := strings.Split(module, "/")
	segs := parts[:0]
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		segs = append(segs, NormalizeCrateName(p))
	}
	return strings.Join(segs, "/")
}

// DocumentQuery is the logical identity of one docs.rs page.
type DocumentQuery struct {
	Crate      string
	Version    string
	ModulePath string
	ItemType   ItemType
	ItemName   string
}

// Normalize returns a copy of q with every field in canonical form.
func (q DocumentQuery) Normalize() DocumentQuery {
	return DocumentQuery{
		Crate:      strings.TrimSpace(q.Crate),
		Version:    NormalizeVersion(q.Version),
		ModulePath: NormalizeModulePath(q.ModulePath),
		ItemType:   ItemType(strings.ToLower(strings.TrimSpace(string(q.ItemType)))),
		ItemName:   strings.TrimSpace(q.ItemName),
	}
}

// IsItem reports whether q addresses a single item page.
func (q DocumentQuery) IsItem() bool {
	return q.ItemName != ""
}

// IsLatest reports whether q resolves through the "latest" pointer.
func (q DocumentQuery) IsLatest() bool {
	return NormalizeVersion(q.Version) == LatestVersion
}

// Path returns the docs.rs URL path for q:
//
//	/{crate}/{version}/{crate}/[{module}/][{type}.{name}.html]
//
// Both crate segments use the underscore form.
func (q DocumentQuery) Path() string {
	q = q.Normalize()
	crate := NormalizeCrateName(q.Crate)

	var b strings.Builder
	fmt.Fprintf(&b, "/%s/%s/%s/", crate, q.Version, crate)
	if q.ModulePath != "" {
		b.WriteString(q.ModulePath)
		b.WriteString("/")
	}
	if q.IsItem() {
		fmt.Fprintf(&b, "%s.%s.html", q.ItemType, q.ItemName)
	}
	return b.String()
}

// URL joins baseURL and Path.
func (q DocumentQuery) URL(baseURL string) string {
	return strings.TrimRight(baseURL, "/") + q.Path()
}

// Validate reports malformed fields as EINVALID.
func (q DocumentQuery) Validate() error {
	q = q.Normalize()
	if err := validateCrate(q.Crate); err != nil {
		return err
	}
	if whitespaceRE.MatchString(q.Version) {
		return Errorf(EINVALID, "invalid version %q", q.Version)
	}
	if q.ModulePath != "" {
		for _, seg := range strings.Split(q.ModulePath, "/") {
			if !moduleSegRE.MatchString(seg) {
				return Errorf(EINVALID, "invalid module path %q", q.ModulePath)
			}
		}
	}
	if q.IsItem() || q.ItemType != "" {
		if _, err := ParseItemType(string(q.ItemType)); err != nil {
			return err
		}
		if q.ItemName == "" {
			return Errorf(EINVALID, "item name required")
		}
		if !itemNameRE.MatchString(q.ItemName) {
			return Errorf(EINVALID, "invalid item name %q", q.ItemName)
		}
	}
	return nil
}

// NotFoundMessage describes a missing page in terms the caller can act on.
func (q DocumentQuery) NotFoundMessage() string {
	q = q.Normalize()
	module := q.ModulePath
	if module == "" {
		module = "root"
	}
	switch {
	case q.IsItem():
		return fmt.Sprintf("Item '%s' of type '%s' not found in crate '%s' module '%s'. "+
			"Use list_modules to find the correct module path, then retry with the module parameter.",
			q.ItemName, q.ItemType, q.Crate, module)
	case q.ModulePath != "":
		return fmt.Sprintf("Crate '%s' module '%s' not found. Use list_modules on the crate root to see available modules.",
			q.Crate, q.ModulePath)
	default:
		return fmt.Sprintf("Crate '%s' not found on docs.rs. Use search_crates to find the exact crate name.", q.Crate)
	}
}

func validateCrate(name string) error {
	if name == "" {
		return Errorf(EINVALID, "crate name required")
	}
	if !crateNameRE.MatchString(name) {
		return Errorf(EINVALID, "invalid crate name %q", name)
	}
	return nil
}
