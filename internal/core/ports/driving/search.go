package driving

import (
	"context"

	"github.com/custodia-labs/sercha-site/internal/core/domain"
)

// SearchService provides search capabilities to external actors.
type SearchService interface {
	// Search ranks indexed content against query.
	// Returns domain.ErrQueryTooLong for overlong queries and an empty slice for blank ones.
	Search(ctx context.Context, query string, opts domain.SearchOptions) ([]domain.SearchResult, error)
}
