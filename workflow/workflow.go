// Package workflow holds the catalog of guided Rust task templates. Each
// template renders a user message that walks through the documentation
// tools before any code is written.
package workflow

import (
	"sort"
	"strings"
	"text/template"

	rustdocs "github.com/Michael-Obele/rust-docs"
)

// Param is a named template argument.
type Param struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Required    bool   `json:"required"`

	// Default is substituted when an optional param is unset.
	Default string `json:"default,omitempty"`
}

// Template is a named workflow.
type Template struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Params      []Param `json:"params"`

	body *template.Template
}

// versionParam is shared by every template.
var versionParam = Param{
	Name:        "version",
	Description: "crate version to use when querying documentation",
	Default:     rustdocs.LatestVersion,
}

var catalog = map[string]Template{}

func register(name, description, body string, params ...Param) {
	params = append(params, versionParam)
	catalog[name] = Template{
		Name:        name,
		Description: description,
		Params:      params,
		body:        template.Must(template.New(name).Option("missingkey=error").Parse(body)),
	}
}

// List returns every template sorted by name.
func List() []Template {
	out := make([]Template, 0, len(catalog))
	for _, t := range catalog {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Get returns the named template, or ENOTFOUND.
func Get(name string) (Template, error) {
	t, ok := catalog[name]
	if !ok {
		return Template{}, rustdocs.Errorf(rustdocs.ENOTFOUND, "workflow template %q not found", name)
	}
	return t, nil
}

// Render renders the named template with args.
func Render(name string, args map[string]string) (string, error) {
	t, err := Get(name)
	if err != nil {
		return "", err
	}
	return t.Render(args)
}

// Render fills the template. Missing required params fail with EINVALID;
// unknown args are ignored.
func (t Template) Render(args map[string]string) (string, error) {
	data := make(map[string]string, len(t.Params))
	for _, p := range t.Params {
		v := strings.TrimSpace(args[p.Name])
		if v == "" {
			if p.Required {
				return "", rustdocs.Errorf(rustdocs.EINVALID, "workflow %q requires %q", t.Name, p.Name)
			}
			v = p.Default
		}
		data[p.Name] = v
	}

	var sb strings.Builder
	if err := t.body.Execute(&sb, data); err != nil {
		return "", rustdocs.Errorf(rustdocs.EINTERNAL, "render workflow %q: %v", t.Name, err)
	}
	return strings.TrimSpace(sb.String()), nil
}
