package driving

import (
	"context"

	"github.com/custodia-labs/sercha-site/internal/core/domain"
)

// SitemapService enumerates the URLs a sitemap should list.
type SitemapService interface {
	// Entries returns the index page, every content URL and every tag URL.
	// A failed source only removes its own entries.
	Entries(ctx context.Context) ([]domain.SitemapEntry, error)
}
