package services

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/custodia-labs/sercha-site/internal/core/domain"
	"github.com/custodia-labs/sercha-site/internal/core/ports/driven"
)

// --- Mock implementations for service testing ---

// mockLoader implements driven.ContentLoader with canned results per source type.
type mockLoader struct {
	mu      sync.Mutex
	results map[domain.SourceType]*domain.LoadResult
	errs    map[domain.SourceType]error
	panics  map[domain.SourceType]bool
	calls   int
}

func newMockLoader() *mockLoader {
	return &mockLoader{
		results: make(map[domain.SourceType]*domain.LoadResult),
		errs:    make(map[domain.SourceType]error),
		panics:  make(map[domain.SourceType]bool),
	}
}

func (m *mockLoader) Load(ctx context.Context, src domain.SourceConfig) (*domain.LoadResult, error) {
	m.mu.Lock()
	m.calls++
	result, err, panics := m.results[src.Type], m.errs[src.Type], m.panics[src.Type]
	m.mu.Unlock()

	if panics {
		panic("loader exploded")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err != nil {
		return nil, err
	}
	if result == nil {
		return &domain.LoadResult{Source: src}, nil
	}
	return result, nil
}

// setFiles sets the parsed files returned for a source type.
func (m *mockLoader) setFiles(t domain.SourceType, files ...domain.ParsedFile) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results[t] = &domain.LoadResult{Files: files}
}

// passthroughNormaliser implements driven.NormaliserRegistry by copying
// common metadata into a record without any fallbacks.
type passthroughNormaliser struct{}

func (passthroughNormaliser) Normalise(file *domain.ParsedFile) (domain.ContentRecord, error) {
	c := file.Meta.Common()
	if c.Title == "" {
		return domain.ContentRecord{}, domain.ErrMissingTitle
	}
	return domain.ContentRecord{
		ID:          file.Slug,
		SourceType:  file.SourceType(),
		Title:       c.Title,
		Description: c.Description,
		Body:        file.Body,
		Tags:        domain.DedupeTags(c.Tags),
		Category:    c.Category,
		PublishedAt: c.PublishedAt,
		UpdatedAt:   c.UpdatedAt,
		Draft:       c.Draft,
	}, nil
}

func (passthroughNormaliser) Register(driven.Normaliser) {}

func (passthroughNormaliser) SourceTypes() []domain.SourceType {
	return domain.AllSourceTypes()
}

// identityStripper implements driven.TextPipeline without changing text.
type identityStripper struct{}

func (identityStripper) Strip(text string) string { return text }

// countingStore implements driven.SnapshotStore and counts reads.
type countingStore struct {
	current atomic.Pointer[domain.Snapshot]
	reads   atomic.Int32
	swaps   atomic.Int32
}

func (s *countingStore) Current() *domain.Snapshot {
	s.reads.Add(1)
	return s.current.Load()
}

func (s *countingStore) Swap(next *domain.Snapshot) *domain.Snapshot {
	s.swaps.Add(1)
	return s.current.Swap(next)
}

// storeWith returns a store whose current snapshot holds records, with the
// index and tags derived the same way IndexService derives them.
func storeWith(records ...domain.ContentRecord) *countingStore {
	SortRecords(records)
	links := NewLinkBuilder(domain.DefaultSettings().Site)
	store := &countingStore{}
	store.current.Store(&domain.Snapshot{
		ID:      "test",
		Records: records,
		Index:   BuildIndex(records, identityStripper{}, links.RecordPath),
		Tags:    AggregateTags(records),
	})
	return store
}

// mockIndexService implements driving.IndexService and counts rebuilds.
type mockIndexService struct {
	rebuilds atomic.Int32
	err      error
}

func (m *mockIndexService) Rebuild(_ context.Context) (*domain.Snapshot, error) {
	m.rebuilds.Add(1)
	if m.err != nil {
		return nil, m.err
	}
	return &domain.Snapshot{}, nil
}

func (m *mockIndexService) Build(_ context.Context) (*domain.Snapshot, error) {
	return &domain.Snapshot{}, nil
}

func (m *mockIndexService) Current(_ context.Context) (*domain.Snapshot, error) {
	return nil, domain.ErrIndexUnavailable
}

// mockWatcher implements driven.ChangeWatcher with a caller-fed channel.
type mockWatcher struct {
	events chan domain.ChangeEvent
	err    error
}

func (m *mockWatcher) Watch(_ context.Context, _ []domain.SourceConfig) (<-chan domain.ChangeEvent, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.events, nil
}

func (m *mockWatcher) Close() error { return nil }

// --- Fixture helpers ---

var baseTime = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func day(n int) time.Time {
	return baseTime.AddDate(0, 0, n)
}

func blogFile(slug, title string, tags []string, published time.Time) domain.ParsedFile {
	return domain.ParsedFile{
		Slug: slug,
		Path: "blog/" + slug + ".md",
		Meta: domain.BlogMeta{CommonMeta: domain.CommonMeta{Title: title, Tags: tags, PublishedAt: published}},
	}
}

func record(t domain.SourceType, id, title string, tags []string, modified time.Time) domain.ContentRecord {
	return domain.ContentRecord{
		ID:          id,
		SourceType:  t,
		Title:       title,
		Tags:        tags,
		Category:    domain.DefaultCategory,
		PublishedAt: modified,
		UpdatedAt:   modified,
	}
}

func allSources() []domain.SourceConfig {
	return []domain.SourceConfig{
		{Type: domain.SourceBlog, Root: "blog"},
		{Type: domain.SourceRelease, Root: "releases"},
		{Type: domain.SourceDoc, Root: "docs"},
	}
}
