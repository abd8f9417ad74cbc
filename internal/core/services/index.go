package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/sercha-site/internal/core/domain"
	"github.com/custodia-labs/sercha-site/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-site/internal/core/ports/driving"
	"github.com/custodia-labs/sercha-site/internal/logger"
)

// Ensure IndexService implements the interface.
var _ driving.IndexService = (*IndexService)(nil)

// IndexService builds snapshots and publishes them through a SnapshotStore.
// Rebuilds are serialised; readers keep using the previous snapshot until
// the swap.
type IndexService struct {
	collector *Collector
	stripper  driven.TextPipeline
	links     *LinkBuilder
	store     driven.SnapshotStore

	mu  sync.Mutex
	now func() time.Time
}

// NewIndexService creates a new index service.
func NewIndexService(
	collector *Collector,
	stripper driven.TextPipeline,
	links *LinkBuilder,
	store driven.SnapshotStore,
) *IndexService {
	return &IndexService{
		collector: collector,
		stripper:  stripper,
		links:     links,
		store:     store,
		now:       time.Now,
	}
}

// Build loads every source and builds a snapshot without publishing it.
// A panic during the build is recovered and returned as an error.
func (s *IndexService) Build(ctx context.Context) (snap *domain.Snapshot, err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("index build panicked: %v", r)
			snap, err = nil, fmt.Errorf("index build panicked: %v", r)
		}
	}()

	records, reports, err := s.collector.Collect(ctx)
	if err != nil {
		return nil, err
	}

	logger.Section("Index Build")
	tags := AggregateTags(records)
	for i := range records {
		records[i].Tags = domain.SortTagsForDisplay(records[i].Tags, tags)
	}
	index := BuildIndex(records, s.stripper, s.links.RecordPath)
	logger.Debug("indexed %d entries, %d tags", len(index), len(tags))

	return &domain.Snapshot{
		ID:      uuid.New().String(),
		BuiltAt: s.now(),
		Records: records,
		Index:   index,
		Tags:    tags,
		Reports: reports,
	}, nil
}

// Rebuild builds a snapshot and makes it current. On failure the previous
// snapshot stays in place.
func (s *IndexService) Rebuild(ctx context.Context) (*domain.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	snap, err := s.Build(ctx)
	if err != nil {
		logger.Error("rebuild failed, keeping previous snapshot: %v", err)
		return nil, err
	}
	s.store.Swap(snap)

	logger.Info("snapshot %s: %d records, %d tags in %s",
		snap.ID, len(snap.Records), len(snap.Tags), time.Since(start).Round(time.Millisecond))
	if err := SourceErrors(snap); err != nil {
		logger.Warn("snapshot %s is partial: %v", snap.ID, err)
	}
	return snap, nil
}

// Current returns the published snapshot.
func (s *IndexService) Current(_ context.Context) (*domain.Snapshot, error) {
	snap := s.store.Current()
	if snap == nil {
		return nil, domain.ErrIndexUnavailable
	}
	return snap, nil
}

// SourceErrors joins the errors of every source that failed to load, or
// returns nil when all sources loaded.
func SourceErrors(snap *domain.Snapshot) error {
	if snap == nil {
		return domain.ErrIndexUnavailable
	}
	var errs []error
	for _, r := range snap.Reports {
		if r.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", r.SourceType, r.Err))
		}
	}
	return errors.Join(errs...)
}
