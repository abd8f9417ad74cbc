package driven

import (
	"github.com/custodia-labs/sercha-site/internal/core/domain"
)

// SnapshotStore holds the snapshot that readers currently see.
// Implementations must be safe for concurrent use; Current never blocks on Swap.
type SnapshotStore interface {
	// Current returns the active snapshot, or nil before the first build.
	Current() *domain.Snapshot

	// Swap installs next as the active snapshot and returns the previous one.
	Swap(next *domain.Snapshot) *domain.Snapshot
}
