// Package tui provides an interactive terminal user interface for sercha-site.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/sercha-site/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Search ranks indexed content.
	Search driving.SearchService

	// Content lists and fetches records.
	Content driving.ContentService

	// Tags provides tag counts and tagged records.
	Tags driving.TagService

	// Index exposes the current snapshot and rebuilds it.
	Index driving.IndexService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	search driving.SearchService,
	content driving.ContentService,
	tags driving.TagService,
	index driving.IndexService,
) *Ports {
	return &Ports{
		Search:  search,
		Content: content,
		Tags:    tags,
		Index:   index,
	}
}

// Validate ensures all required ports are set.
// Only Search is required; views backed by a missing port show an error.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Search == nil {
		return ErrMissingSearchService
	}
	return nil
}
