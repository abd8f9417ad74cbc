// Package mcp provides an MCP (Model Context Protocol) server adapter for sercha-site.
// It lets AI assistants search the site's blog posts, release notes and docs.
package mcp

import "errors"

// ErrMissingSearchService is returned when the search service is not provided.
var ErrMissingSearchService = errors.New("mcp: search service is required")
