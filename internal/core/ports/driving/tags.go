package driving

import (
	"context"

	"github.com/custodia-labs/sercha-site/internal/core/domain"
)

// TagFilter narrows a tag aggregation.
type TagFilter struct {
	// SourceType restricts counting to one source. Empty means all.
	SourceType domain.SourceType

	// Category restricts counting to records in one category. Empty means all.
	Category string
}

// TagService provides tag aggregations for navigation and sitemaps.
type TagService interface {
	// Tags returns tag counts ordered by count descending, then tag ascending.
	Tags(ctx context.Context, filter TagFilter) ([]domain.TagAggregate, error)

	// ByCategory returns tag counts grouped by record category.
	ByCategory(ctx context.Context) (map[string][]domain.TagAggregate, error)

	// Tagged returns the records carrying tag, most recent first.
	Tagged(ctx context.Context, tag string) ([]domain.ContentRecord, error)
}
