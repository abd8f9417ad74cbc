package driven

import (
	"context"

	"github.com/custodia-labs/sercha-site/internal/core/domain"
)

// ContentLoader reads one content source from storage.
type ContentLoader interface {
	// Load walks the source root and returns every non-draft file it could parse.
	// Per-file failures are reported in LoadResult.Warnings and do not abort the walk.
	// A missing or unreadable root returns domain.ErrSourceUnavailable.
	Load(ctx context.Context, src domain.SourceConfig) (*domain.LoadResult, error)
}
