package httpapi

import (
	"context"

	"github.com/custodia-labs/sercha-site/internal/core/domain"
	"github.com/custodia-labs/sercha-site/internal/core/ports/driving"
)

// mockSearchService is a mock implementation of driving.SearchService.
type mockSearchService struct {
	results   []domain.SearchResult
	err       error
	panicMsg  string
	lastQuery string
	lastOpts  domain.SearchOptions
}

func (m *mockSearchService) Search(
	_ context.Context,
	query string,
	opts domain.SearchOptions,
) ([]domain.SearchResult, error) {
	if m.panicMsg != "" {
		panic(m.panicMsg)
	}
	m.lastQuery = query
	m.lastOpts = opts
	return m.results, m.err
}

// mockIndexService is a mock implementation of driving.IndexService.
type mockIndexService struct {
	snap     *domain.Snapshot
	err      error
	rebuilds int
}

func (m *mockIndexService) Rebuild(_ context.Context) (*domain.Snapshot, error) {
	m.rebuilds++
	if m.err != nil {
		return nil, m.err
	}
	return m.snap, nil
}

func (m *mockIndexService) Build(_ context.Context) (*domain.Snapshot, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.snap, nil
}

func (m *mockIndexService) Current(_ context.Context) (*domain.Snapshot, error) {
	if m.snap == nil {
		return nil, domain.ErrIndexUnavailable
	}
	return m.snap, nil
}

// mockContentService is a mock implementation of driving.ContentService.
type mockContentService struct {
	records  []domain.ContentRecord
	record   *domain.ContentRecord
	err      error
	lastType domain.SourceType
	lastKey  domain.RecordKey
}

func (m *mockContentService) List(_ context.Context, t domain.SourceType) ([]domain.ContentRecord, error) {
	m.lastType = t
	return m.records, m.err
}

func (m *mockContentService) Get(_ context.Context, key domain.RecordKey) (*domain.ContentRecord, error) {
	m.lastKey = key
	return m.record, m.err
}

// mockTagService is a mock implementation of driving.TagService.
type mockTagService struct {
	tags       []domain.TagAggregate
	tagged     []domain.ContentRecord
	err        error
	lastFilter driving.TagFilter
	lastTag    string
}

func (m *mockTagService) Tags(_ context.Context, filter driving.TagFilter) ([]domain.TagAggregate, error) {
	m.lastFilter = filter
	return m.tags, m.err
}

func (m *mockTagService) ByCategory(_ context.Context) (map[string][]domain.TagAggregate, error) {
	return map[string][]domain.TagAggregate{}, m.err
}

func (m *mockTagService) Tagged(_ context.Context, tag string) ([]domain.ContentRecord, error) {
	m.lastTag = tag
	return m.tagged, m.err
}

// mockSitemapService is a mock implementation of driving.SitemapService.
type mockSitemapService struct {
	entries []domain.SitemapEntry
	err     error
}

func (m *mockSitemapService) Entries(_ context.Context) ([]domain.SitemapEntry, error) {
	return m.entries, m.err
}
