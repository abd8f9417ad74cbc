package memory

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sercha-site/internal/core/domain"
)

func TestNewSnapshotStore(t *testing.T) {
	store := NewSnapshotStore()
	require.NotNil(t, store)
	assert.Nil(t, store.Current())
}

func TestSnapshotStore_Swap(t *testing.T) {
	store := NewSnapshotStore()
	first := &domain.Snapshot{ID: "first"}
	second := &domain.Snapshot{ID: "second"}

	prev := store.Swap(first)
	assert.Nil(t, prev)
	assert.Same(t, first, store.Current())

	prev = store.Swap(second)
	assert.Same(t, first, prev)
	assert.Same(t, second, store.Current())
	assert.Equal(t, "first", prev.ID, "previous snapshot must be untouched")
}

func TestSnapshotStore_ConcurrentAccess(t *testing.T) {
	store := NewSnapshotStore()
	store.Swap(&domain.Snapshot{ID: "initial"})

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			store.Swap(&domain.Snapshot{ID: "next"})
		}()
		go func() {
			defer wg.Done()
			snap := store.Current()
			assert.NotNil(t, snap)
		}()
	}
	wg.Wait()
}
