package domain

import "time"

// SitemapKind distinguishes content pages from tag pages.
type SitemapKind string

// Sitemap entry kinds.
const (
	SitemapContent SitemapKind = "content"
	SitemapTag     SitemapKind = "tag"
	SitemapIndex   SitemapKind = "index"
)

// SitemapEntry is one URL the sitemap enumerates.
type SitemapEntry struct {
	// Loc is the absolute URL.
	Loc string

	// LastModified is the newest modification time behind the URL.
	LastModified time.Time

	// Kind is the page kind.
	Kind SitemapKind

	// SourceType is set for content pages and per-source tag pages.
	SourceType SourceType
}
