package driving

import (
	"context"

	"github.com/custodia-labs/sercha-site/internal/core/domain"
)

// ContentService exposes the published records of the current snapshot.
type ContentService interface {
	// List returns records most recent first. An empty sourceType means all sources.
	List(ctx context.Context, sourceType domain.SourceType) ([]domain.ContentRecord, error)

	// Get returns one record by source type and slug.
	Get(ctx context.Context, key domain.RecordKey) (*domain.ContentRecord, error)
}
