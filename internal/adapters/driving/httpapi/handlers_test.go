package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sercha-site/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/sercha-site/internal/adapters/driving/sitemap"
	"github.com/custodia-labs/sercha-site/internal/core/domain"
	"github.com/custodia-labs/sercha-site/internal/core/services"
)

var published = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func decodeSearch(t *testing.T, body []byte) searchResponse {
	t.Helper()
	var resp searchResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp
}

func TestSearch_ReturnsResults(t *testing.T) {
	tp := newTestPorts()
	tp.search.results = []domain.SearchResult{
		{
			Entry: domain.SearchIndexEntry{
				ID:          "webhooks",
				SourceType:  domain.SourceDoc,
				Title:       "Webhooks Guide",
				URL:         "/docs/webhooks",
				Tags:        []string{"api"},
				PublishedAt: published,
			},
			Score: 150,
			Matches: []domain.FieldMatch{
				{Field: domain.MatchTitle, Highlighted: "<mark>Webhooks</mark> Guide"},
			},
		},
	}
	srv := newTestServer(t, tp)

	rec := doRequest(t, srv, http.MethodGet, "/api/search?q=webhooks&limit=5&source=docs&source=blog")

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeSearch(t, rec.Body.Bytes())
	assert.Equal(t, "webhooks", resp.Query)
	assert.Equal(t, 1, resp.Count)
	require.Len(t, resp.Results, 1)
	got := resp.Results[0]
	assert.Equal(t, "webhooks", got.ID)
	assert.Equal(t, "doc", got.SourceType)
	assert.Equal(t, "/docs/webhooks", got.URL)
	assert.Equal(t, 150, got.Score)
	assert.True(t, got.LastModified.Equal(published))
	require.Len(t, got.Matches, 1)
	assert.Equal(t, "title", got.Matches[0].Field)
	assert.Equal(t, "<mark>Webhooks</mark> Guide", got.Matches[0].Highlighted)

	assert.Equal(t, "webhooks", tp.search.lastQuery)
	assert.Equal(t, 5, tp.search.lastOpts.Limit)
	assert.Equal(t, []domain.SourceType{domain.SourceDoc, domain.SourceBlog}, tp.search.lastOpts.SourceTypes)
}

func TestSearch_InvalidParameters(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"negative limit", "/api/search?q=a&limit=-1"},
		{"non-numeric limit", "/api/search?q=a&limit=ten"},
		{"unknown source", "/api/search?q=a&source=wiki"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tp := newTestPorts()
			srv := newTestServer(t, tp)

			rec := doRequest(t, srv, http.MethodGet, tt.query)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.NotEmpty(t, decodeError(t, rec))
			assert.Empty(t, tp.search.lastQuery)
		})
	}
}

func TestSearch_ServiceErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"query too long", domain.ErrQueryTooLong, http.StatusBadRequest},
		{"index unavailable", domain.ErrIndexUnavailable, http.StatusServiceUnavailable},
		{"unexpected", errors.New("disk on fire"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tp := newTestPorts()
			tp.search.err = tt.err
			srv := newTestServer(t, tp)

			rec := doRequest(t, srv, http.MethodGet, "/api/search?q=x")

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

// newRankingServer serves the real ranking engine over a fixed index.
func newRankingServer(t *testing.T, index []domain.SearchIndexEntry) *Server {
	t.Helper()
	store := memory.NewSnapshotStore()
	store.Swap(&domain.Snapshot{ID: "snap", Index: index})

	srv, err := NewServer(&Ports{
		Search: services.NewSearchService(store, domain.DefaultSearchConfig()),
		Index:  &mockIndexService{},
	}, domain.ServerSettings{})
	require.NoError(t, err)
	return srv
}

func TestSearch_RankingEngine(t *testing.T) {
	srv := newRankingServer(t, []domain.SearchIndexEntry{
		{ID: "guide", SourceType: domain.SourceDoc, Title: "Webhooks Guide", URL: "/docs/guide", PublishedAt: published},
		{ID: "basics", SourceType: domain.SourceDoc, Title: "API Basics", Tags: []string{"webhooks"}, URL: "/docs/basics", PublishedAt: published},
	})

	t.Run("overlong query is rejected", func(t *testing.T) {
		rec := doRequest(t, srv, http.MethodGet, "/api/search?q="+strings.Repeat("a", 201))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeError(t, rec), "query too long")
	})

	t.Run("query at the limit is accepted", func(t *testing.T) {
		rec := doRequest(t, srv, http.MethodGet, "/api/search?q="+strings.Repeat("a", 200))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("empty query returns no results", func(t *testing.T) {
		rec := doRequest(t, srv, http.MethodGet, "/api/search?q=")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"results":[]`)
		assert.Equal(t, 0, decodeSearch(t, rec.Body.Bytes()).Count)
	})

	t.Run("results are ranked", func(t *testing.T) {
		rec := doRequest(t, srv, http.MethodGet, "/api/search?q=webhooks")

		require.Equal(t, http.StatusOK, rec.Code)
		resp := decodeSearch(t, rec.Body.Bytes())
		require.Equal(t, 2, resp.Count)
		assert.Equal(t, "guide", resp.Results[0].ID)
		assert.Equal(t, 100, resp.Results[0].Score)
		assert.Equal(t, "basics", resp.Results[1].ID)
		assert.Equal(t, []string{"webhooks"}, resp.Results[1].MatchedTags)
	})
}

func TestListContent(t *testing.T) {
	tp := newTestPorts()
	tp.content.records = []domain.ContentRecord{
		{ID: "hello", SourceType: domain.SourceBlog, Title: "Hello", Body: "secret body", PublishedAt: published},
	}
	srv := newTestServer(t, tp)

	rec := doRequest(t, srv, http.MethodGet, "/api/content?source=posts")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp contentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, domain.SourceBlog, tp.content.lastType)
	assert.Equal(t, 1, resp.Count)
	assert.Equal(t, "/blog/hello", resp.Records[0].URL)
	assert.Empty(t, resp.Records[0].Body)
	assert.Nil(t, resp.Records[0].UpdatedAt)
	assert.Equal(t, []string{}, resp.Records[0].Tags)
}

func TestListContent_InvalidSource(t *testing.T) {
	srv := newTestServer(t, newTestPorts())

	rec := doRequest(t, srv, http.MethodGet, "/api/content?source=wiki")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetContent(t *testing.T) {
	tp := newTestPorts()
	tp.content.record = &domain.ContentRecord{
		ID: "guides/auth", SourceType: domain.SourceDoc, Title: "Auth", Body: "Use tokens.",
	}
	srv := newTestServer(t, tp)

	rec := doRequest(t, srv, http.MethodGet, "/api/content/docs/guides/auth")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.RecordKey{SourceType: domain.SourceDoc, ID: "guides/auth"}, tp.content.lastKey)
	var got recordVM
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Use tokens.", got.Body)
	assert.Equal(t, "/doc/guides/auth", got.URL)
}

func TestGetContent_NotFound(t *testing.T) {
	tp := newTestPorts()
	tp.content.err = domain.ErrNotFound
	srv := newTestServer(t, tp)

	rec := doRequest(t, srv, http.MethodGet, "/api/content/blog/missing")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not found", decodeError(t, rec))
}

func TestListTags(t *testing.T) {
	tp := newTestPorts()
	tp.tags.tags = []domain.TagAggregate{
		{Tag: "api", Count: 2, DocCount: 2},
		{Tag: "webhooks", Count: 1, BlogCount: 1},
	}
	srv := newTestServer(t, tp)

	rec := doRequest(t, srv, http.MethodGet, "/api/tags?source=doc&category=guides")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.SourceDoc, tp.tags.lastFilter.SourceType)
	assert.Equal(t, "guides", tp.tags.lastFilter.Category)
	var resp tagsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []tagVM{
		{Tag: "api", Count: 2, Docs: 2},
		{Tag: "webhooks", Count: 1, Blog: 1},
	}, resp.Tags)
}

func TestListTagged(t *testing.T) {
	tp := newTestPorts()
	tp.tags.tagged = []domain.ContentRecord{
		{ID: "a", SourceType: domain.SourceBlog, Title: "A", Tags: []string{"go"}},
	}
	srv := newTestServer(t, tp)

	rec := doRequest(t, srv, http.MethodGet, "/api/tags/go")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "go", tp.tags.lastTag)
	var resp taggedResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Count)
	assert.Equal(t, "A", resp.Records[0].Title)
}

func TestListTagged_UnknownTag(t *testing.T) {
	srv := newTestServer(t, newTestPorts())

	rec := doRequest(t, srv, http.MethodGet, "/api/tags/nothing")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSitemapXML(t *testing.T) {
	tp := newTestPorts()
	tp.sitemap.entries = []domain.SitemapEntry{
		{Loc: "https://example.com/", Kind: domain.SitemapIndex},
		{Loc: "https://example.com/blog/hello", Kind: domain.SitemapContent, SourceType: domain.SourceBlog, LastModified: published},
	}
	srv := newTestServer(t, tp)

	rec := doRequest(t, srv, http.MethodGet, "/sitemap.xml")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, sitemap.ContentType, rec.Header().Get("Content-Type"))
	body := rec.Body.String()
	assert.Contains(t, body, "<loc>https://example.com/blog/hello</loc>")
	assert.Contains(t, body, "<lastmod>2024-06-01</lastmod>")
}

func TestSitemapXML_IndexUnavailable(t *testing.T) {
	tp := newTestPorts()
	tp.sitemap.err = domain.ErrIndexUnavailable
	srv := newTestServer(t, tp)

	rec := doRequest(t, srv, http.MethodGet, "/sitemap.xml")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestReindex(t *testing.T) {
	tp := newTestPorts()
	tp.index.snap = &domain.Snapshot{
		ID:      "next",
		Records: []domain.ContentRecord{{ID: "a", SourceType: domain.SourceRelease}},
		Reports: []domain.LoadReport{{SourceType: domain.SourceRelease, Records: 1}},
	}
	srv := newTestServer(t, tp)

	rec := doRequest(t, srv, http.MethodPost, "/api/reindex")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, tp.index.rebuilds)
	var resp snapshotResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "next", resp.Snapshot)

	metrics := doRequest(t, srv, http.MethodGet, "/metrics").Body.String()
	assert.Contains(t, metrics, `sercha_site_index_rebuilds_total{status="ok"} 1`)
	assert.Contains(t, metrics, `sercha_site_snapshot_records{source="release"} 1`)
}

func TestReindex_Failure(t *testing.T) {
	tp := newTestPorts()
	tp.index.err = errors.New("rebuild failed")
	srv := newTestServer(t, tp)

	rec := doRequest(t, srv, http.MethodPost, "/api/reindex")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	metrics := doRequest(t, srv, http.MethodGet, "/metrics").Body.String()
	assert.Contains(t, metrics, `sercha_site_index_rebuilds_total{status="error"} 1`)
}

func TestReindex_GetNotAllowed(t *testing.T) {
	srv := newTestServer(t, newTestPorts())

	rec := doRequest(t, srv, http.MethodGet, "/api/reindex")

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
