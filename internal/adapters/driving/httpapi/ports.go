package httpapi

import (
	"github.com/custodia-labs/sercha-site/internal/core/domain"
	"github.com/custodia-labs/sercha-site/internal/core/ports/driving"
)

// RecordURLFunc resolves the public path of a record.
type RecordURLFunc func(rec *domain.ContentRecord) string

// Ports aggregates all driving port interfaces required by the HTTP server.
type Ports struct {
	// Search ranks indexed content.
	Search driving.SearchService

	// Index rebuilds and reports the current snapshot.
	Index driving.IndexService

	// Content lists published records.
	Content driving.ContentService

	// Tags serves tag aggregations.
	Tags driving.TagService

	// Sitemap enumerates sitemap URLs.
	Sitemap driving.SitemapService

	// RecordURL fills the url field of content listings. Optional.
	RecordURL RecordURLFunc
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	if p.Index == nil {
		return ErrMissingIndexService
	}
	// Content, Tags and Sitemap are optional; their routes are not mounted.
	return nil
}
