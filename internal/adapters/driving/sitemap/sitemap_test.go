package sitemap

import (
	"bytes"
	"encoding/xml"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sercha-site/internal/core/domain"
)

func testEntries() []domain.SitemapEntry {
	return []domain.SitemapEntry{
		{Loc: "https://example.com/", LastModified: time.Date(2024, 6, 2, 10, 0, 0, 0, time.UTC), Kind: domain.SitemapIndex},
		{Loc: "https://example.com/releases/v1.0.0", LastModified: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			Kind: domain.SitemapContent, SourceType: domain.SourceRelease},
		{Loc: "https://example.com/docs/install", Kind: domain.SitemapContent, SourceType: domain.SourceDoc},
		{Loc: "https://example.com/tags/api", Kind: domain.SitemapTag},
	}
}

func TestBuild(t *testing.T) {
	set := Build(testEntries())

	assert.Equal(t, Namespace, set.Xmlns)
	require.Len(t, set.URLs, 4)
	assert.Equal(t, URL{Loc: "https://example.com/", LastMod: "2024-06-02", ChangeFreq: "daily", Priority: "1.0"}, set.URLs[0])
	assert.Equal(t, "yearly", set.URLs[1].ChangeFreq)
	assert.Equal(t, "0.8", set.URLs[1].Priority)
	assert.Empty(t, set.URLs[2].LastMod)
	assert.Equal(t, "weekly", set.URLs[2].ChangeFreq)
	assert.Equal(t, "0.5", set.URLs[3].Priority)
}

func TestBuild_Empty(t *testing.T) {
	set := Build(nil)
	assert.NotNil(t, set.URLs)
	assert.Empty(t, set.URLs)
}

func TestMarshal(t *testing.T) {
	data, err := Marshal(testEntries())
	require.NoError(t, err)

	text := string(data)
	assert.True(t, strings.HasPrefix(text, xml.Header))
	assert.Contains(t, text, `<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`)
	assert.Contains(t, text, "<loc>https://example.com/tags/api</loc>")
	assert.Contains(t, text, "<lastmod>2024-06-01</lastmod>")

	var decoded URLSet
	require.NoError(t, xml.Unmarshal(data, &decoded))
	assert.Len(t, decoded.URLs, 4)
}

func TestMarshal_EscapesLocations(t *testing.T) {
	data, err := Marshal([]domain.SitemapEntry{{Loc: "https://example.com/?a=1&b=2", Kind: domain.SitemapIndex}})
	require.NoError(t, err)

	assert.Contains(t, string(data), "<loc>https://example.com/?a=1&amp;b=2</loc>")
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, testEntries()))

	expected, err := Marshal(testEntries())
	require.NoError(t, err)
	assert.Equal(t, expected, buf.Bytes())
}
