package main

import (
	"fmt"
	"io"

	rustdocs "github.com/Michael-Obele/rust-docs"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	out, err := deps.Registry.SearchCrates(deps.Ctx, rustdocs.SearchInput{Query: c.Query, Limit: c.Limit})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", rustdocs.ErrorMessage(err))
		return err
	}
	return render(deps, out, func(w io.Writer) { printSearch(w, out) })
}

// Run executes the info command.
func (c *InfoCmd) Run(deps *Dependencies) error {
	out, err := deps.Registry.CrateInfo(deps.Ctx, rustdocs.CrateInput{Crate: c.Crate})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", rustdocs.ErrorMessage(err))
		return err
	}
	return render(deps, out, func(w io.Writer) { printCrate(w, out) })
}
