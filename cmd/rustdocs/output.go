package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	rustdocs "github.com/Michael-Obele/rust-docs"
	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

var (
	colorCyan = lipgloss.Color("36")
	colorBlue = lipgloss.Color("75")
	colorGray = lipgloss.Color("245")
	colorDim  = lipgloss.Color("240")

	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleHeading = lipgloss.NewStyle().Bold(true)
	styleLink    = lipgloss.NewStyle().Foreground(colorBlue).Underline(true)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
	styleNumber  = lipgloss.NewStyle().Foreground(colorCyan)
	styleCode    = lipgloss.NewStyle().Foreground(colorGray)
)

// render writes v as JSON or YAML, or calls text for the text format.
func render(deps *Dependencies, v any, text func(w io.Writer)) error {
	switch deps.Output {
	case "json":
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(deps.Stdout)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		text(deps.Stdout)
		return nil
	}
}

func printSearch(w io.Writer, r *rustdocs.SearchResult) {
	if len(r.Crates) == 0 {
		fmt.Fprintln(w, "No crates found.")
		return
	}
	for _, c := range r.Crates {
		fmt.Fprintf(w, "%s %s  %s downloads\n", styleTitle.Render(c.Name), styleDim.Render(c.Version), styleNumber.Render(fmt.Sprint(c.Downloads)))
		if c.Description != "" {
			fmt.Fprintf(w, "  %s\n", strings.TrimSpace(c.Description))
		}
	}
}

func printCrate(w io.Writer, c *rustdocs.Crate) {
	fmt.Fprintf(w, "%s %s\n", styleTitle.Render(c.Name), styleDim.Render(c.Version))
	if c.Description != "" {
		fmt.Fprintf(w, "%s\n", strings.TrimSpace(c.Description))
	}
	fmt.Fprintf(w, "\nDownloads:     %s\n", styleNumber.Render(fmt.Sprint(c.Downloads)))
	for _, l := range []struct{ label, url string }{
		{"Documentation", c.Documentation},
		{"Repository", c.Repository},
		{"Homepage", c.Homepage},
	} {
		if l.url != "" {
			fmt.Fprintf(w, "%-14s %s\n", l.label+":", styleLink.Render(l.url))
		}
	}
	if len(c.Keywords) > 0 {
		fmt.Fprintf(w, "Keywords:      %s\n", strings.Join(c.Keywords, ", "))
	}
	if len(c.Categories) > 0 {
		fmt.Fprintf(w, "Categories:    %s\n", strings.Join(c.Categories, ", "))
	}
}

func printOverview(w io.Writer, o *rustdocs.CrateOverview) {
	fmt.Fprintf(w, "%s %s\n", styleTitle.Render(o.Name), styleDim.Render(o.Version))
	fmt.Fprintln(w, styleLink.Render(o.URL))
	if o.Description != "" {
		fmt.Fprintf(w, "\n%s\n", o.Description)
	}
	printItemLists(w, o.ItemLists)
}

func printModules(w io.Writer, m *rustdocs.ModuleListing) {
	fmt.Fprintln(w, styleLink.Render(m.URL))
	printItemLists(w, m.ItemLists)
}

func printItemLists(w io.Writer, l rustdocs.ItemLists) {
	for _, section := range []struct {
		title string
		names []string
	}{
		{"Modules", l.Modules},
		{"Structs", l.Structs},
		{"Enums", l.Enums},
		{"Traits", l.Traits},
		{"Functions", l.Functions},
		{"Macros", l.Macros},
		{"Types", l.Types},
		{"Constants", l.Constants},
	} {
		if len(section.names) == 0 {
			continue
		}
		fmt.Fprintf(w, "\n%s\n", styleHeading.Render(fmt.Sprintf("%s (%d)", section.title, len(section.names))))
		for _, name := range section.names {
			fmt.Fprintf(w, "  %s\n", name)
		}
	}
}

func printItem(w io.Writer, d *rustdocs.ItemDocs) {
	fmt.Fprintf(w, "%s %s\n", styleDim.Render(string(d.Type)), styleTitle.Render(d.Name))
	fmt.Fprintln(w, styleLink.Render(d.URL))
	if d.Signature != "" {
		fmt.Fprintf(w, "\n%s\n", styleCode.Render(d.Signature))
	}
	if d.Description != "" {
		fmt.Fprintf(w, "\n%s\n", d.Description)
	}
	for _, section := range []struct {
		title string
		lines []string
	}{
		{"Methods", d.Methods},
		{"Variants", d.Variants},
		{"Implementations", d.Implementations},
	} {
		if len(section.lines) == 0 {
			continue
		}
		fmt.Fprintf(w, "\n%s\n", styleHeading.Render(section.title))
		for _, line := range section.lines {
			fmt.Fprintf(w, "  %s\n", line)
		}
	}
	if d.Examples != "" {
		fmt.Fprintf(w, "\n%s\n%s\n", styleHeading.Render("Examples"), styleCode.Render(d.Examples))
	}
}

// printMarkdown writes rendered markdown as-is so it can be piped.
func printMarkdown(w io.Writer, md string) {
	fmt.Fprintln(w, md)
}
