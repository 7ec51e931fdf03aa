package main

import (
	"fmt"
	"io"

	rustdocs "github.com/Michael-Obele/rust-docs"
	"golang.org/x/sync/errgroup"
)

// Run executes the overview command.
func (c *OverviewCmd) Run(deps *Dependencies) error {
	in := rustdocs.OverviewInput{Crate: c.Crate, Version: c.Version}

	if deps.markdown() {
		out, err := deps.Markdown.CrateOverview(deps.Ctx, in)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", rustdocs.ErrorMessage(err))
			return err
		}
		return render(deps, out, func(w io.Writer) { printMarkdown(w, out.Markdown) })
	}

	out, err := deps.Docs.CrateOverview(deps.Ctx, in)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", rustdocs.ErrorMessage(err))
		return err
	}
	return render(deps, out, func(w io.Writer) { printOverview(w, out) })
}

// Run executes the item command. Items are fetched concurrently and printed
// in argument order; the first failure cancels the rest.
func (c *ItemCmd) Run(deps *Dependencies) error {
	if c.Concurrency < 1 {
		c.Concurrency = 1
	}

	results := make([]any, len(c.Names))
	g, ctx := errgroup.WithContext(deps.Ctx)
	g.SetLimit(c.Concurrency)
	for i, name := range c.Names {
		in := rustdocs.ItemInput{
			Crate:    c.Crate,
			Version:  c.Version,
			ItemType: rustdocs.ItemType(c.Type),
			ItemName: name,
			Module:   c.Module,
		}
		g.Go(func() error {
			if deps.markdown() {
				out, err := deps.Markdown.ItemDocs(ctx, in)
				results[i] = out
				return err
			}
			out, err := deps.Docs.ItemDocs(ctx, in)
			results[i] = out
			return err
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", rustdocs.ErrorMessage(err))
		return err
	}

	var v any = results
	if len(results) == 1 {
		v = results[0]
	}
	return render(deps, v, func(w io.Writer) {
		for i, r := range results {
			if i > 0 {
				fmt.Fprintln(w)
			}
			switch r := r.(type) {
			case *rustdocs.ItemDocs:
				printItem(w, r)
			case *rustdocs.ItemDocsMarkdown:
				printMarkdown(w, r.Markdown)
			}
		}
	})
}

// Run executes the modules command.
func (c *ModulesCmd) Run(deps *Dependencies) error {
	in := rustdocs.ModuleInput{Crate: c.Crate, Version: c.Version, Module: c.Module}

	if deps.markdown() {
		out, err := deps.Markdown.ModuleListing(deps.Ctx, in)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", rustdocs.ErrorMessage(err))
			return err
		}
		return render(deps, out, func(w io.Writer) { printMarkdown(w, out.Markdown) })
	}

	out, err := deps.Docs.ModuleListing(deps.Ctx, in)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", rustdocs.ErrorMessage(err))
		return err
	}
	return render(deps, out, func(w io.Writer) { printModules(w, out) })
}
