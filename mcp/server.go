// Package mcp exposes the documentation operations and workflow templates
// as a Model Context Protocol server.
package mcp

import (
	"context"
	"errors"

	rustdocs "github.com/Michael-Obele/rust-docs"
	"github.com/Michael-Obele/rust-docs/workflow"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ServerName is the implementation name announced to clients.
const ServerName = "rust-docs"

// Tool names.
const (
	ToolSearchCrates  = "search_crates"
	ToolCrateInfo     = "get_crate_info"
	ToolCrateOverview = "get_crate_overview"
	ToolItemDocs      = "get_item_docs"
	ToolListModules   = "list_modules"
)

// Config selects the services behind the tools. When Markdown is set the
// documentation tools return rendered markdown and Docs is not used.
type Config struct {
	Registry rustdocs.RegistryService
	Docs     rustdocs.DocsService
	Markdown rustdocs.MarkdownDocsService
}

// NewServer builds a server with every tool and workflow prompt registered.
func NewServer(cfg Config) *mcp.Server {
	s := mcp.NewServer(&mcp.Implementation{Name: ServerName, Version: rustdocs.Version}, nil)

	addRegistryTools(s, cfg.Registry)
	if cfg.Markdown != nil {
		addMarkdownTools(s, cfg.Markdown)
	} else {
		addDocsTools(s, cfg.Docs)
	}
	addPrompts(s)
	return s
}

// Run serves s over stdin/stdout until ctx is done or the client disconnects.
func Run(ctx context.Context, s *mcp.Server) error {
	return s.Run(ctx, &mcp.StdioTransport{})
}

const (
	searchDescription = "Search crates.io for Rust crates by name or keyword. " +
		"Use it to find the exact crate name before querying documentation."
	crateInfoDescription = "Get crates.io metadata for a crate: latest version, description, " +
		"downloads, links, keywords and categories."
	overviewDescription = "Get the docs.rs overview of a crate: its description and the " +
		"modules, structs, enums, traits, functions, macros, types and constants at the crate root."
	itemDescription = "Get docs.rs documentation for one item (struct, enum, trait, fn, macro or type). " +
		"Items outside the crate root need module_path; use list_modules to find it."
	modulesDescription = "List the items of a crate module, or of the crate root when module_path is empty. " +
		"Use it to locate the module path of an item."
)

func addRegistryTools(s *mcp.Server, svc rustdocs.RegistryService) {
	mcp.AddTool(s, &mcp.Tool{Name: ToolSearchCrates, Description: searchDescription},
		func(ctx context.Context, _ *mcp.CallToolRequest, in rustdocs.SearchInput) (*mcp.CallToolResult, rustdocs.SearchResult, error) {
			out, err := svc.SearchCrates(ctx, in)
			if err != nil {
				return nil, rustdocs.SearchResult{}, toolError(err)
			}
			return nil, *out, nil
		})

	mcp.AddTool(s, &mcp.Tool{Name: ToolCrateInfo, Description: crateInfoDescription},
		func(ctx context.Context, _ *mcp.CallToolRequest, in rustdocs.CrateInput) (*mcp.CallToolResult, rustdocs.Crate, error) {
			out, err := svc.CrateInfo(ctx, in)
			if err != nil {
				return nil, rustdocs.Crate{}, toolError(err)
			}
			return nil, *out, nil
		})
}

func addDocsTools(s *mcp.Server, svc rustdocs.DocsService) {
	mcp.AddTool(s, &mcp.Tool{Name: ToolCrateOverview, Description: overviewDescription},
		func(ctx context.Context, _ *mcp.CallToolRequest, in rustdocs.OverviewInput) (*mcp.CallToolResult, rustdocs.CrateOverview, error) {
			out, err := svc.CrateOverview(ctx, in)
			if err != nil {
				return nil, rustdocs.CrateOverview{}, toolError(err)
			}
			return nil, *out, nil
		})

	mcp.AddTool(s, &mcp.Tool{Name: ToolItemDocs, Description: itemDescription},
		func(ctx context.Context, _ *mcp.CallToolRequest, in rustdocs.ItemInput) (*mcp.CallToolResult, rustdocs.ItemDocs, error) {
			out, err := svc.ItemDocs(ctx, in)
			if err != nil {
				return nil, rustdocs.ItemDocs{}, toolError(err)
			}
			return nil, *out, nil
		})

	mcp.AddTool(s, &mcp.Tool{Name: ToolListModules, Description: modulesDescription},
		func(ctx context.Context, _ *mcp.CallToolRequest, in rustdocs.ModuleInput) (*mcp.CallToolResult, rustdocs.ModuleListing, error) {
			out, err := svc.ModuleListing(ctx, in)
			if err != nil {
				return nil, rustdocs.ModuleListing{}, toolError(err)
			}
			return nil, *out, nil
		})
}

func addMarkdownTools(s *mcp.Server, svc rustdocs.MarkdownDocsService) {
	mcp.AddTool(s, &mcp.Tool{Name: ToolCrateOverview, Description: overviewDescription + " Returned as markdown."},
		func(ctx context.Context, _ *mcp.CallToolRequest, in rustdocs.OverviewInput) (*mcp.CallToolResult, rustdocs.CrateOverviewMarkdown, error) {
			out, err := svc.CrateOverview(ctx, in)
			if err != nil {
				return nil, rustdocs.CrateOverviewMarkdown{}, toolError(err)
			}
			return markdownResult(out.Markdown), *out, nil
		})

	mcp.AddTool(s, &mcp.Tool{Name: ToolItemDocs, Description: itemDescription + " Returned as markdown."},
		func(ctx context.Context, _ *mcp.CallToolRequest, in rustdocs.ItemInput) (*mcp.CallToolResult, rustdocs.ItemDocsMarkdown, error) {
			out, err := svc.ItemDocs(ctx, in)
			if err != nil {
				return nil, rustdocs.ItemDocsMarkdown{}, toolError(err)
			}
			return markdownResult(out.Markdown), *out, nil
		})

	mcp.AddTool(s, &mcp.Tool{Name: ToolListModules, Description: modulesDescription + " Returned as markdown."},
		func(ctx context.Context, _ *mcp.CallToolRequest, in rustdocs.ModuleInput) (*mcp.CallToolResult, rustdocs.ModuleListingMarkdown, error) {
			out, err := svc.ModuleListing(ctx, in)
			if err != nil {
				return nil, rustdocs.ModuleListingMarkdown{}, toolError(err)
			}
			return markdownResult(out.Markdown), *out, nil
		})
}

// markdownResult puts the rendered page in the text content so clients
// that ignore structured output still read markdown rather than JSON.
func markdownResult(md string) *mcp.CallToolResult {
	return &mcp.CallToolResult{Content: []mcp.Content{&mcp.TextContent{Text: md}}}
}

// toolError reduces err to its message; the SDK reports it to the client as
// a single text error.
func toolError(err error) error {
	return errors.New(rustdocs.ErrorMessage(err))
}

func addPrompts(s *mcp.Server) {
	for _, tmpl := range workflow.List() {
		args := make([]*mcp.PromptArgument, len(tmpl.Params))
		for i, p := range tmpl.Params {
			args[i] = &mcp.PromptArgument{Name: p.Name, Description: p.Description, Required: p.Required}
		}
		s.AddPrompt(&mcp.Prompt{Name: tmpl.Name, Description: tmpl.Description, Arguments: args}, promptHandler(tmpl))
	}
}

func promptHandler(tmpl workflow.Template) mcp.PromptHandler {
	return func(_ context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		text, err := tmpl.Render(req.Params.Arguments)
		if err != nil {
			return nil, toolError(err)
		}
		return &mcp.GetPromptResult{
			Description: tmpl.Description,
			Messages: []*mcp.PromptMessage{
				{Role: "user", Content: &mcp.TextContent{Text: text}},
			},
		}, nil
	}
}
