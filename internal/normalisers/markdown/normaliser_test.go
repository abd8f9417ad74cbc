package markdown

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/sercha-site/internal/core/domain"
)

func TestBase(t *testing.T) {
	loaded := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	published := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	t.Run("copies header fields", func(t *testing.T) {
		file := &domain.ParsedFile{
			Slug: "hello",
			Path: "content/blog/hello.md",
			Meta: domain.BlogMeta{CommonMeta: domain.CommonMeta{
				Title:       "Hello",
				Description: "desc",
				Tags:        []string{"go", "go", " api "},
				Category:    " tutorials ",
				PublishedAt: published,
				Featured:    true,
				Author:      "sam",
			}},
			Body:     "Body",
			LoadedAt: loaded,
		}

		rec := Base(file)

		assert.Equal(t, "hello", rec.ID)
		assert.Equal(t, domain.SourceBlog, rec.SourceType)
		assert.Equal(t, "Hello", rec.Title)
		assert.Equal(t, []string{"go", "api"}, rec.Tags)
		assert.Equal(t, "tutorials", rec.Category)
		assert.Equal(t, published, rec.PublishedAt)
		assert.Equal(t, published, rec.UpdatedAt)
		assert.True(t, rec.Featured)
		assert.False(t, rec.Draft)
		assert.Equal(t, "content/blog/hello.md", rec.Path)
	})

	t.Run("defaults", func(t *testing.T) {
		file := &domain.ParsedFile{
			Slug:     "untitled",
			Meta:     domain.DocMeta{},
			Body:     "intro\n# Heading Title\ntext",
			LoadedAt: loaded,
		}

		rec := Base(file)

		assert.Equal(t, "Heading Title", rec.Title)
		assert.Equal(t, "", rec.Description)
		assert.NotNil(t, rec.Tags)
		assert.Empty(t, rec.Tags)
		assert.Equal(t, loaded, rec.PublishedAt)
		assert.Equal(t, loaded, rec.UpdatedAt)
	})
}

func TestExtractTitle(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "first h1", body: "# One\n# Two", want: "One"},
		{name: "h2 ignored", body: "## Sub\ntext", want: ""},
		{name: "inside fence ignored", body: "```\n# comment\n```\n# Real", want: "Real"},
		{name: "empty", body: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractTitle(tt.body))
		})
	}
}

func TestFirstSegment(t *testing.T) {
	assert.Equal(t, "", FirstSegment("intro"))
	assert.Equal(t, "guides", FirstSegment("guides/install"))
	assert.Equal(t, "guides", FirstSegment("guides/advanced/tuning"))
}
