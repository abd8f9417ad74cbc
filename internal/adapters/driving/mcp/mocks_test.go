package mcp

import (
	"context"

	"github.com/custodia-labs/sercha-site/internal/core/domain"
	"github.com/custodia-labs/sercha-site/internal/core/ports/driving"
)

// mockSearchService is a mock implementation of driving.SearchService.
type mockSearchService struct {
	results  []domain.SearchResult
	err      error
	lastOpts domain.SearchOptions
}

func (m *mockSearchService) Search(
	_ context.Context,
	_ string,
	opts domain.SearchOptions,
) ([]domain.SearchResult, error) {
	m.lastOpts = opts
	return m.results, m.err
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
	err        error
	lastFilter driving.TagFilter
}

func (m *mockTagService) Tags(_ context.Context, filter driving.TagFilter) ([]domain.TagAggregate, error) {
	m.lastFilter = filter
	return m.tags, m.err
}

func (m *mockTagService) ByCategory(_ context.Context) (map[string][]domain.TagAggregate, error) {
	return map[string][]domain.TagAggregate{}, m.err
}

func (m *mockTagService) Tagged(_ context.Context, _ string) ([]domain.ContentRecord, error) {
	return nil, m.err
}
