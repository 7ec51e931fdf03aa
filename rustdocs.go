// Package rustdocs retrieves Rust crate documentation from docs.rs and
// crates.io. It fetches rendered docs.rs pages, extracts structured fields or
// renders markdown, and caches results in memory with freshness rules that
// depend on whether a version is pinned.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, htmltomarkdown/, inmem/).
package rustdocs

// Version is reported in the User-Agent of outgoing requests and by the
// MCP server implementation info.
const Version = "1.0.0"

// RepositoryURL identifies the project to the remote services it calls.
const RepositoryURL = "https://github.com/Michael-Obele/rust-docs"
