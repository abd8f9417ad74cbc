package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot_NilSafe(t *testing.T) {
	var s *Snapshot

	assert.Empty(t, s.RecordsBySource(SourceBlog))
	assert.NotNil(t, s.RecordsBySource(SourceBlog))

	_, ok := s.Find(RecordKey{SourceType: SourceBlog, ID: "x"})
	assert.False(t, ok)

	_, ok = s.Report(SourceBlog)
	assert.False(t, ok)
}

func TestSnapshot_Lookups(t *testing.T) {
	s := &Snapshot{
		Records: []ContentRecord{
			{ID: "a", SourceType: SourceBlog},
			{ID: "a", SourceType: SourceDoc},
			{ID: "b", SourceType: SourceBlog},
		},
		Reports: []LoadReport{
			{SourceType: SourceRelease, Err: ErrSourceUnavailable},
		},
	}

	blogs := s.RecordsBySource(SourceBlog)
	require.Len(t, blogs, 2)
	assert.Equal(t, "a", blogs[0].ID)
	assert.Equal(t, "b", blogs[1].ID)

	rec, ok := s.Find(RecordKey{SourceType: SourceDoc, ID: "a"})
	require.True(t, ok)
	assert.Equal(t, SourceDoc, rec.SourceType)

	report, ok := s.Report(SourceRelease)
	require.True(t, ok)
	assert.False(t, report.Healthy())
}

func TestSearchResult_Match(t *testing.T) {
	r := SearchResult{Matches: []FieldMatch{{Field: MatchTitle, Highlighted: "<mark>Go</mark>"}}}

	m, ok := r.Match(MatchTitle)
	require.True(t, ok)
	assert.Equal(t, "<mark>Go</mark>", m.Highlighted)

	_, ok = r.Match(MatchContent)
	assert.False(t, ok)
}
