package mcp

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sercha-site/internal/core/domain"
)

func TestNewServer(t *testing.T) {
	t.Run("nil search service returns error", func(t *testing.T) {
		ports := &Ports{}
		server, err := NewServer(ports)
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingSearchService)
	})

	t.Run("valid ports creates server", func(t *testing.T) {
		ports := &Ports{
			Search: &mockSearchService{},
		}
		server, err := NewServer(ports)
		require.NoError(t, err)
		assert.NotNil(t, server)
	})
}

func TestPorts_Validate(t *testing.T) {
	t.Run("nil search service returns error", func(t *testing.T) {
		ports := &Ports{}
		err := ports.Validate()
		assert.ErrorIs(t, err, ErrMissingSearchService)
	})

	t.Run("search only is valid", func(t *testing.T) {
		ports := &Ports{
			Search: &mockSearchService{},
		}
		err := ports.Validate()
		assert.NoError(t, err)
	})

	t.Run("all ports is valid", func(t *testing.T) {
		ports := &Ports{
			Search:  &mockSearchService{},
			Content: &mockContentService{},
			Tags:    &mockTagService{},
		}
		err := ports.Validate()
		assert.NoError(t, err)
	})
}

// connect opens an in-memory client session to s.
func connect(t *testing.T, s *Server) *mcpsdk.ClientSession {
	t.Helper()
	ctx := context.Background()
	serverT, clientT := mcpsdk.NewInMemoryTransports()

	ss, err := s.server.Connect(ctx, serverT, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = ss.Close() })

	client := mcpsdk.NewClient(&mcpsdk.Implementation{Name: "test", Version: "1"}, nil)
	cs, err := client.Connect(ctx, clientT, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cs.Close() })
	return cs
}

func TestServer_Session(t *testing.T) {
	search := &mockSearchService{results: []domain.SearchResult{{
		Entry: domain.SearchIndexEntry{ID: "guides/webhooks", SourceType: domain.SourceDoc, Title: "Webhooks Guide"},
		Score: 120,
	}}}
	s, err := NewServer(&Ports{Search: search}, WithVersion("1.4.0"))
	require.NoError(t, err)

	cs := connect(t, s)

	info := cs.InitializeResult()
	require.NotNil(t, info)
	assert.Equal(t, "sercha-site", info.ServerInfo.Name)
	assert.Equal(t, "1.4.0", info.ServerInfo.Version)
	assert.Equal(t, Instructions, info.Instructions)

	tools, err := cs.ListTools(context.Background(), nil)
	require.NoError(t, err)
	names := make([]string, 0, len(tools.Tools))
	for _, tool := range tools.Tools {
		names = append(names, tool.Name)
	}
	assert.ElementsMatch(t, []string{"search", "tags"}, names)

	res, err := cs.CallTool(context.Background(), &mcpsdk.CallToolParams{
		Name:      "search",
		Arguments: map[string]any{"query": "webhooks", "limit": 5},
	})
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.Equal(t, 5, search.lastOpts.Limit)
}

func TestWithVersion_EmptyKeepsDefault(t *testing.T) {
	s, err := NewServer(&Ports{Search: &mockSearchService{}}, WithVersion(""))

	require.NoError(t, err)
	assert.Equal(t, Version, s.version)
}

func TestServer_HealthHandler(t *testing.T) {
	s, err := NewServer(&Ports{Search: &mockSearchService{}})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}
