package main

import (
	"context"
	"io"
	"log/slog"

	rustdocs "github.com/Michael-Obele/rust-docs"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Config   Config
	Output   string
	Cache    rustdocs.Cache
	Registry rustdocs.RegistryService
	Docs     rustdocs.DocsService
	Markdown rustdocs.MarkdownDocsService
}

// markdown reports whether documentation commands render markdown.
func (d *Dependencies) markdown() bool {
	return d.Config.Docs.Format == FormatMarkdown
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config   string `help:"Config file path" type:"path" placeholder:"FILE"`
	Markdown bool   `short:"m" help:"Render documentation pages as markdown"`
	Output   string `short:"o" enum:"text,json,yaml" default:"text" help:"Output format (text, json, yaml)"`
	Verbose  bool   `short:"v" help:"Enable debug logging"`

	Search   SearchCmd   `cmd:"" help:"Search crates.io"`
	Info     InfoCmd     `cmd:"" help:"Show crates.io metadata for a crate"`
	Overview OverviewCmd `cmd:"" help:"Show the docs.rs overview of a crate"`
	Item     ItemCmd     `cmd:"" help:"Show documentation for one or more items"`
	Modules  ModulesCmd  `cmd:"" help:"List the items of a crate module"`
	Prompts  PromptsCmd  `cmd:"" help:"List or render workflow templates"`
	Serve    ServeCmd    `cmd:"" help:"Serve the JSON API over HTTP"`
	MCP      MCPCmd      `cmd:"" name:"mcp" help:"Serve the MCP protocol over stdio"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query string `arg:"" help:"Search terms"`
	Limit int    `short:"n" default:"10" help:"Maximum number of results (1-100)"`
}

// InfoCmd is the "info" subcommand.
type InfoCmd struct {
	Crate string `arg:"" help:"Crate name"`
}

// OverviewCmd is the "overview" subcommand.
type OverviewCmd struct {
	Crate   string `arg:"" help:"Crate name"`
	Version string `help:"Crate version" default:"latest"`
}

// ItemCmd is the "item" subcommand.
type ItemCmd struct {
	Crate       string   `arg:"" help:"Crate name"`
	Type        string   `arg:"" help:"Item type (struct, enum, trait, fn, macro, type)"`
	Names       []string `arg:"" help:"Item names"`
	Version     string   `help:"Crate version" default:"latest"`
	Module      string   `help:"Module path, e.g. sync::mpsc"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent fetch limit"`
}

// ModulesCmd is the "modules" subcommand.
type ModulesCmd struct {
	Crate   string `arg:"" help:"Crate name"`
	Module  string `arg:"" optional:"" help:"Module path; the crate root when omitted"`
	Version string `help:"Crate version" default:"latest"`
}

// PromptsCmd groups the workflow template subcommands.
type PromptsCmd struct {
	List PromptsListCmd `cmd:"" default:"1" help:"List workflow templates"`
	Show PromptsShowCmd `cmd:"" help:"Render a workflow template"`
}

// PromptsListCmd is the "prompts list" subcommand.
type PromptsListCmd struct{}

// PromptsShowCmd is the "prompts show" subcommand.
type PromptsShowCmd struct {
	Name string            `arg:"" help:"Template name"`
	Args map[string]string `short:"a" name:"arg" help:"Template argument as key=value (repeatable)"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `help:"Listen address (default from config)"`
}

// MCPCmd is the "mcp" subcommand.
type MCPCmd struct{}
