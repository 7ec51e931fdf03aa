package main

import (
	rdchi "github.com/Michael-Obele/rust-docs/chi"
	rdmcp "github.com/Michael-Obele/rust-docs/mcp"
)

// Run executes the serve command until the context is cancelled.
func (c *ServeCmd) Run(deps *Dependencies) error {
	addr := c.Addr
	if addr == "" {
		addr = deps.Config.Server.Addr
	}
	srv := rdchi.NewServer(deps.Registry, deps.Docs, deps.Markdown, deps.Cache, deps.Logger)
	return srv.ListenAndServe(deps.Ctx, addr)
}

// Run executes the mcp command. The documentation tools return markdown
// when the markdown format is selected.
func (c *MCPCmd) Run(deps *Dependencies) error {
	cfg := rdmcp.Config{Registry: deps.Registry, Docs: deps.Docs}
	if deps.markdown() {
		cfg.Markdown = deps.Markdown
	}
	deps.Logger.Info("mcp server starting", "markdown", deps.markdown())
	return rdmcp.Run(deps.Ctx, rdmcp.NewServer(cfg))
}
