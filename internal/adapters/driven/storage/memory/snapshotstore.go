package memory

import (
	"sync/atomic"

	"github.com/custodia-labs/sercha-site/internal/core/domain"
	"github.com/custodia-labs/sercha-site/internal/core/ports/driven"
)

// Ensure SnapshotStore implements the interface.
var _ driven.SnapshotStore = (*SnapshotStore)(nil)

// SnapshotStore holds the current snapshot behind an atomic pointer.
// Readers never block, and a reader holding a snapshot keeps a consistent
// view while a newer one is swapped in.
type SnapshotStore struct {
	current atomic.Pointer[domain.Snapshot]
}

// NewSnapshotStore creates an empty snapshot store.
func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{}
}

// Current returns the active snapshot, or nil before the first swap.
func (s *SnapshotStore) Current() *domain.Snapshot {
	return s.current.Load()
}

// Swap installs next and returns the previous snapshot.
func (s *SnapshotStore) Swap(next *domain.Snapshot) *domain.Snapshot {
	return s.current.Swap(next)
}
