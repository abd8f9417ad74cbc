package services

import (
	"context"

	"github.com/custodia-labs/sercha-site/internal/core/domain"
	"github.com/custodia-labs/sercha-site/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-site/internal/core/ports/driving"
)

// Ensure ContentService implements the interface.
var _ driving.ContentService = (*ContentService)(nil)

// ContentService serves records from the current snapshot.
type ContentService struct {
	store driven.SnapshotStore
}

// NewContentService creates a new content service.
func NewContentService(store driven.SnapshotStore) *ContentService {
	return &ContentService{store: store}
}

// List returns records most recent first, optionally for one source type.
func (s *ContentService) List(_ context.Context, sourceType domain.SourceType) ([]domain.ContentRecord, error) {
	snap := s.store.Current()
	if snap == nil {
		return nil, domain.ErrIndexUnavailable
	}
	if sourceType == "" {
		return snap.Records, nil
	}
	if !sourceType.IsValid() {
		return nil, domain.ErrUnsupportedType
	}
	return snap.RecordsBySource(sourceType), nil
}

// Get returns one record by key.
func (s *ContentService) Get(_ context.Context, key domain.RecordKey) (*domain.ContentRecord, error) {
	snap := s.store.Current()
	if snap == nil {
		return nil, domain.ErrIndexUnavailable
	}
	rec, ok := snap.Find(key)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return rec, nil
}
