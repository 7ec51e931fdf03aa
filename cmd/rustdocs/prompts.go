package main

import (
	"fmt"
	"io"

	rustdocs "github.com/Michael-Obele/rust-docs"
	"github.com/Michael-Obele/rust-docs/workflow"
)

// Run executes the prompts list command.
func (c *PromptsListCmd) Run(deps *Dependencies) error {
	templates := workflow.List()
	return render(deps, templates, func(w io.Writer) {
		for _, t := range templates {
			fmt.Fprintf(w, "%s  %s\n", styleTitle.Render(t.Name), t.Description)
			for _, p := range t.Params {
				req := styleDim.Render("optional")
				if p.Required {
					req = "required"
				}
				fmt.Fprintf(w, "    %-16s %s  %s\n", p.Name, req, styleDim.Render(p.Description))
			}
		}
	})
}

// Run executes the prompts show command.
func (c *PromptsShowCmd) Run(deps *Dependencies) error {
	text, err := workflow.Render(c.Name, c.Args)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", rustdocs.ErrorMessage(err))
		if rustdocs.ErrorCode(err) == rustdocs.ENOTFOUND {
			fmt.Fprintln(deps.Stderr, "Use 'rustdocs prompts list' to see available templates.")
		}
		return err
	}
	fmt.Fprintln(deps.Stdout, text)
	return nil
}
