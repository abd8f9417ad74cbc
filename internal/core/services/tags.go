package services

import (
	"context"
	"sort"

	"github.com/custodia-labs/sercha-site/internal/core/domain"
	"github.com/custodia-labs/sercha-site/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-site/internal/core/ports/driving"
)

// AggregateTags counts tags across records, split by source type.
// Drafts and blank tags are ignored. A tag repeated within one record counts once.
// The result is ordered by count descending, then tag ascending.
func AggregateTags(records []domain.ContentRecord) []domain.TagAggregate {
	byTag := make(map[string]*domain.TagAggregate)
	for i := range records {
		rec := &records[i]
		if rec.Draft {
			continue
		}
		for _, tag := range domain.DedupeTags(rec.Tags) {
			agg, ok := byTag[tag]
			if !ok {
				agg = &domain.TagAggregate{Tag: tag}
				byTag[tag] = agg
			}
			agg.Add(rec.SourceType)
		}
	}

	out := make([]domain.TagAggregate, 0, len(byTag))
	for _, agg := range byTag {
		if agg.Count > 0 {
			out = append(out, *agg)
		}
	}
	sortAggregates(out)
	return out
}

// AggregateTagsByCategory aggregates tags separately for each record category.
func AggregateTagsByCategory(records []domain.ContentRecord) map[string][]domain.TagAggregate {
	groups := make(map[string][]domain.ContentRecord)
	for i := range records {
		category := records[i].Category
		if category == "" {
			category = domain.DefaultCategory
		}
		groups[category] = append(groups[category], records[i])
	}

	out := make(map[string][]domain.TagAggregate, len(groups))
	for category, recs := range groups {
		out[category] = AggregateTags(recs)
	}
	return out
}

// AggregateTagsBySource aggregates tags over the records of one source type.
func AggregateTagsBySource(records []domain.ContentRecord, sourceType domain.SourceType) []domain.TagAggregate {
	filtered := make([]domain.ContentRecord, 0, len(records))
	for i := range records {
		if records[i].SourceType == sourceType {
			filtered = append(filtered, records[i])
		}
	}
	return AggregateTags(filtered)
}

func sortAggregates(aggs []domain.TagAggregate) {
	sort.Slice(aggs, func(i, j int) bool {
		if aggs[i].Count != aggs[j].Count {
			return aggs[i].Count > aggs[j].Count
		}
		return aggs[i].Tag < aggs[j].Tag
	})
}

// Ensure TagService implements the interface.
var _ driving.TagService = (*TagService)(nil)

// TagService serves tag aggregations from the current snapshot.
type TagService struct {
	store driven.SnapshotStore
}

// NewTagService creates a new tag service.
func NewTagService(store driven.SnapshotStore) *TagService {
	return &TagService{store: store}
}

// Tags returns tag counts for the records matching filter.
func (s *TagService) Tags(_ context.Context, filter driving.TagFilter) ([]domain.TagAggregate, error) {
	snap := s.store.Current()
	if snap == nil {
		return nil, domain.ErrIndexUnavailable
	}
	if filter.SourceType != "" && !filter.SourceType.IsValid() {
		return nil, domain.ErrUnsupportedType
	}
	switch {
	case filter.SourceType == "" && filter.Category == "":
		return snap.Tags, nil
	case filter.Category == "":
		return AggregateTagsBySource(snap.Records, filter.SourceType), nil
	}

	records := make([]domain.ContentRecord, 0, len(snap.Records))
	for i := range snap.Records {
		rec := &snap.Records[i]
		if rec.Category != filter.Category {
			continue
		}
		records = append(records, *rec)
	}
	if filter.SourceType != "" {
		return AggregateTagsBySource(records, filter.SourceType), nil
	}
	return AggregateTags(records), nil
}

// ByCategory returns tag counts grouped by category.
func (s *TagService) ByCategory(_ context.Context) (map[string][]domain.TagAggregate, error) {
	snap := s.store.Current()
	if snap == nil {
		return nil, domain.ErrIndexUnavailable
	}
	return AggregateTagsByCategory(snap.Records), nil
}

// Tagged returns the records carrying tag, most recent first.
func (s *TagService) Tagged(_ context.Context, tag string) ([]domain.ContentRecord, error) {
	snap := s.store.Current()
	if snap == nil {
		return nil, domain.ErrIndexUnavailable
	}
	out := make([]domain.ContentRecord, 0)
	for i := range snap.Records {
		if snap.Records[i].HasTag(tag) {
			out = append(out, snap.Records[i])
		}
	}
	return out, nil
}
