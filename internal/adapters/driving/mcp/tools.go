package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/sercha-site/internal/core/domain"
	"github.com/custodia-labs/sercha-site/internal/core/ports/driving"
)

// SearchInput is the input schema for the search tool.
type SearchInput struct {
	Query   string   `json:"query" jsonschema:"the search query, at most 200 characters"`
	Limit   int      `json:"limit,omitempty" jsonschema:"maximum number of results to return (default 10, max 50)"`
	Sources []string `json:"sources,omitempty" jsonschema:"restrict to these sources: blog, release, doc"`
}

// SearchOutput is the output schema for the search tool.
type SearchOutput struct {
	Results []SearchResultOutput `json:"results"`
	Count   int                  `json:"count"`
}

// SearchResultOutput represents a single search result.
type SearchResultOutput struct {
	ID          string   `json:"id"`
	SourceType  string   `json:"source_type"`
	Title       string   `json:"title"`
	URL         string   `json:"url"`
	Score       int      `json:"score"`
	Tags        []string `json:"tags,omitempty"`
	MatchedTags []string `json:"matched_tags,omitempty"`
	Excerpt     string   `json:"excerpt,omitempty"`
}

// TagsInput is the input schema for the tags tool.
type TagsInput struct {
	Source   string `json:"source,omitempty" jsonschema:"only count tags of this source: blog, release or doc"`
	Category string `json:"category,omitempty" jsonschema:"only count tags of records in this category"`
}

// TagsOutput is the output schema for the tags tool.
type TagsOutput struct {
	Tags []TagOutput `json:"tags"`
}

// TagOutput is one tag with its usage counts.
type TagOutput struct {
	Tag      string `json:"tag"`
	Count    int    `json:"count"`
	Blog     int    `json:"blog"`
	Releases int    `json:"releases"`
	Docs     int    `json:"docs"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search",
		Description: "Search blog posts, release notes and documentation by keyword",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "tags",
		Description: "List content tags with how often each is used",
	}, s.handleTags)
}

// handleSearch handles the search tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	opts := domain.SearchOptions{Limit: input.Limit}
	for _, name := range input.Sources {
		t, err := domain.ParseSourceType(name)
		if err != nil {
			return nil, SearchOutput{}, err
		}
		opts.SourceTypes = append(opts.SourceTypes, t)
	}

	results, err := s.ports.Search.Search(ctx, input.Query, opts)
	if err != nil {
		return nil, SearchOutput{}, fmt.Errorf("search: %w", err)
	}

	output := SearchOutput{
		Results: make([]SearchResultOutput, len(results)),
		Count:   len(results),
	}

	for i := range results {
		e := &results[i].Entry
		output.Results[i] = SearchResultOutput{
			ID:          e.ID,
			SourceType:  string(e.SourceType),
			Title:       e.Title,
			URL:         e.URL,
			Score:       results[i].Score,
			Tags:        e.Tags,
			MatchedTags: results[i].MatchedTags,
			Excerpt:     results[i].Excerpt,
		}
	}

	return nil, output, nil
}

// handleTags handles the tags tool invocation.
func (s *Server) handleTags(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input TagsInput,
) (*mcp.CallToolResult, TagsOutput, error) {
	output := TagsOutput{Tags: []TagOutput{}}
	if s.ports.Tags == nil {
		return nil, output, nil
	}

	filter := driving.TagFilter{Category: input.Category}
	if input.Source != "" {
		t, err := domain.ParseSourceType(input.Source)
		if err != nil {
			return nil, TagsOutput{}, err
		}
		filter.SourceType = t
	}

	aggs, err := s.ports.Tags.Tags(ctx, filter)
	if err != nil {
		return nil, TagsOutput{}, fmt.Errorf("listing tags: %w", err)
	}

	for _, a := range aggs {
		output.Tags = append(output.Tags, TagOutput{
			Tag:      a.Tag,
			Count:    a.Count,
			Blog:     a.BlogCount,
			Releases: a.ReleaseCount,
			Docs:     a.DocCount,
		})
	}
	return nil, output, nil
}
