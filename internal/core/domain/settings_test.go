package domain

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSettings_Valid(t *testing.T) {
	s := DefaultSettings()
	require.NoError(t, s.Validate())
	assert.Len(t, s.Content.Sources, len(AllSourceTypes()))
	assert.Equal(t, DefaultScoringWeights(), s.Search.Weights)
}

func TestDefaultScoringWeights(t *testing.T) {
	w := DefaultScoringWeights()
	assert.Equal(t, 100, w.TitleContains)
	assert.Equal(t, 50, w.TitleExact)
	assert.Equal(t, 50, w.Description)
	assert.Equal(t, 30, w.Tag)
	assert.Equal(t, 25, w.Category)
	assert.Equal(t, 5, w.BodyOccurrence)
}

func TestSettings_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(s *Settings)
	}{
		{name: "missing base url", mutate: func(s *Settings) { s.Site.BaseURL = " " }},
		{name: "unknown source", mutate: func(s *Settings) { s.Content.Sources[0].Type = "wiki" }},
		{name: "duplicate source", mutate: func(s *Settings) { s.Content.Sources[1].Type = SourceBlog }},
		{name: "empty source dir", mutate: func(s *Settings) { s.Content.Sources[2].Root = "" }},
		{name: "zero query length", mutate: func(s *Settings) { s.Search.MaxQueryLength = 0 }},
		{name: "default above max", mutate: func(s *Settings) { s.Search.DefaultResults = 100 }},
		{name: "negative excerpt", mutate: func(s *Settings) { s.Search.ExcerptRadius = -1 }},
		{name: "negative rate", mutate: func(s *Settings) { s.Server.RateLimit = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			tt.mutate(&s)
			assert.Error(t, s.Validate())
		})
	}
}

func TestContentSettings_ResolvedSources(t *testing.T) {
	abs := filepath.Join(string(filepath.Separator), "srv", "docs")
	c := ContentSettings{
		Root: "site",
		Sources: []SourceConfig{
			{Type: SourceBlog, Root: "blog"},
			{Type: SourceDoc, Root: abs},
		},
	}

	resolved := c.ResolvedSources()

	require.Len(t, resolved, 2)
	assert.Equal(t, filepath.Join("site", "blog"), resolved[0].Root)
	assert.Equal(t, abs, resolved[1].Root)
	assert.Equal(t, "blog", c.Sources[0].Root, "original slice must not be modified")
}

func TestSiteSettings_RoutePrefix(t *testing.T) {
	s := DefaultSettings().Site
	assert.Equal(t, "/blog", s.RoutePrefix(SourceBlog))
	assert.Equal(t, "/releases", s.RoutePrefix(SourceRelease))
	assert.Equal(t, "/docs", s.RoutePrefix(SourceDoc))
	assert.Equal(t, "", s.RoutePrefix("wiki"))
}
