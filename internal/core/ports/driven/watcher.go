package driven

import (
	"context"

	"github.com/custodia-labs/sercha-site/internal/core/domain"
)

// ChangeWatcher reports changes to content files.
type ChangeWatcher interface {
	// Watch starts watching the given sources. The returned channel is closed
	// when ctx is cancelled or Close is called.
	Watch(ctx context.Context, sources []domain.SourceConfig) (<-chan domain.ChangeEvent, error)

	// Close stops watching and releases resources.
	Close() error
}
