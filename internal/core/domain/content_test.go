package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestContentRecord_LastModified(t *testing.T) {
	published := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	updated := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)

	t.Run("falls back to published", func(t *testing.T) {
		r := ContentRecord{PublishedAt: published}
		assert.Equal(t, published, r.LastModified())
	})

	t.Run("prefers updated", func(t *testing.T) {
		r := ContentRecord{PublishedAt: published, UpdatedAt: updated}
		assert.Equal(t, updated, r.LastModified())
	})
}

func TestContentRecord_Key(t *testing.T) {
	blog := ContentRecord{ID: "intro", SourceType: SourceBlog}
	doc := ContentRecord{ID: "intro", SourceType: SourceDoc}

	assert.NotEqual(t, blog.Key(), doc.Key())
	assert.Equal(t, RecordKey{SourceType: SourceBlog, ID: "intro"}, blog.Key())
}

func TestDedupeTags(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{name: "nil", input: nil, expected: []string{}},
		{name: "duplicates collapse", input: []string{"api", "api", "go"}, expected: []string{"api", "go"}},
		{name: "case sensitive", input: []string{"API", "api"}, expected: []string{"API", "api"}},
		{name: "blank entries dropped", input: []string{"", "  ", "go"}, expected: []string{"go"}},
		{name: "trims whitespace", input: []string{" go ", "go"}, expected: []string{"go"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DedupeTags(tt.input))
		})
	}
}

func TestTagAggregate_Add(t *testing.T) {
	var agg TagAggregate
	agg.Add(SourceBlog)
	agg.Add(SourceBlog)
	agg.Add(SourceRelease)
	agg.Add(SourceDoc)
	agg.Add(SourceType("wiki"))

	assert.Equal(t, 4, agg.Count)
	assert.Equal(t, agg.Count, agg.SubCountSum())
	assert.Equal(t, 2, agg.CountFor(SourceBlog))
	assert.Equal(t, 1, agg.CountFor(SourceRelease))
	assert.Equal(t, 1, agg.CountFor(SourceDoc))
	assert.Equal(t, 0, agg.CountFor(SourceType("wiki")))
}

func TestMetadata_Variants(t *testing.T) {
	variants := []Metadata{BlogMeta{}, ReleaseMeta{}, DocMeta{}}
	for i, m := range variants {
		assert.Equal(t, AllSourceTypes()[i], m.Source())
	}

	f := ParsedFile{Meta: ReleaseMeta{Version: "1.0.0"}}
	assert.Equal(t, SourceRelease, f.SourceType())
	assert.Equal(t, SourceType(""), (&ParsedFile{}).SourceType())
}

func TestSortTagsForDisplay(t *testing.T) {
	aggs := []TagAggregate{
		{Tag: "go", Count: 5},
		{Tag: "api", Count: 2},
		{Tag: "cli", Count: 2},
	}
	tags := []string{"cli", "zeta", "api", "go"}

	sorted := SortTagsForDisplay(tags, aggs)

	assert.Equal(t, []string{"go", "api", "cli", "zeta"}, sorted)
	assert.Equal(t, []string{"cli", "zeta", "api", "go"}, tags, "input must not be reordered")
}
