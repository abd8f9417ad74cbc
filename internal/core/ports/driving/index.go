package driving

import (
	"context"

	"github.com/custodia-labs/sercha-site/internal/core/domain"
)

// IndexService builds and publishes index snapshots.
type IndexService interface {
	// Rebuild loads every source, builds a new snapshot and makes it current.
	Rebuild(ctx context.Context) (*domain.Snapshot, error)

	// Build loads every source and builds a snapshot without publishing it.
	Build(ctx context.Context) (*domain.Snapshot, error)

	// Current returns the published snapshot.
	// Returns domain.ErrIndexUnavailable before the first successful Rebuild.
	Current(ctx context.Context) (*domain.Snapshot, error)
}
