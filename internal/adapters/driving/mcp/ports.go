package mcp

import (
	"github.com/custodia-labs/sercha-site/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Search ranks indexed content.
	Search driving.SearchService

	// Content lists and fetches published records.
	Content driving.ContentService

	// Tags serves tag aggregations.
	Tags driving.TagService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	// Content and Tags are optional; their tools and resources report empty.
	return nil
}
