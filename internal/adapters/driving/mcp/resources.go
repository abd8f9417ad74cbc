package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/sercha-site/internal/core/domain"
)

const (
	// URIScheme is the custom URI scheme for sercha-site resources.
	uriScheme = "sercha://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for listing sources.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "sources",
		Name:        "sources",
		Description: "Content sources with their record counts",
		MIMEType:    "application/json",
	}, s.handleSourcesResource)

	// Template for the records of one source.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "sources/{source}/content",
		Name:        "source-content",
		Description: "Published records of a source, most recent first",
		MIMEType:    "application/json",
	}, s.handleSourceContentResource)

	// Template for one record body. Doc slugs contain slashes.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "content/{source}/{+slug}",
		Name:        "content",
		Description: "Markdown body of a blog post, release note or doc page",
		MIMEType:    "text/markdown",
	}, s.handleContentResource)
}

// handleSourcesResource returns every source type with its record count.
func (s *Server) handleSourcesResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Content == nil {
		return jsonResult(req.Params.URI, []struct{}{})
	}

	records, err := s.ports.Content.List(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("listing sources: %w", err)
	}

	counts := make(map[domain.SourceType]int)
	for i := range records {
		counts[records[i].SourceType]++
	}

	type sourceInfo struct {
		Type    string `json:"type"`
		Name    string `json:"name"`
		Records int    `json:"records"`
		URI     string `json:"uri"`
	}

	infos := make([]sourceInfo, 0, len(domain.AllSourceTypes()))
	for _, t := range domain.AllSourceTypes() {
		infos = append(infos, sourceInfo{
			Type:    string(t),
			Name:    t.Description(),
			Records: counts[t],
			URI:     uriScheme + "sources/" + string(t) + "/content",
		})
	}

	return jsonResult(req.Params.URI, infos)
}

// handleSourceContentResource returns the records of one source.
func (s *Server) handleSourceContentResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Content == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	// Extract source from URI: sercha://sources/{source}/content
	source := extractSource(req.Params.URI)
	t, err := domain.ParseSourceType(source)
	if source == "" || err != nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	records, err := s.ports.Content.List(ctx, t)
	if err != nil {
		return nil, fmt.Errorf("listing content: %w", err)
	}

	type recordInfo struct {
		ID           string    `json:"id"`
		Title        string    `json:"title"`
		Description  string    `json:"description,omitempty"`
		Tags         []string  `json:"tags"`
		Category     string    `json:"category"`
		LastModified time.Time `json:"last_modified"`
		URI          string    `json:"uri"`
	}

	infos := make([]recordInfo, len(records))
	for i := range records {
		rec := &records[i]
		infos[i] = recordInfo{
			ID:           rec.ID,
			Title:        rec.Title,
			Description:  rec.Description,
			Tags:         rec.Tags,
			Category:     rec.Category,
			LastModified: rec.LastModified(),
			URI:          uriScheme + "content/" + string(rec.SourceType) + "/" + rec.ID,
		}
	}

	return jsonResult(req.Params.URI, infos)
}

// handleContentResource returns the markdown body of one record.
func (s *Server) handleContentResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Content == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	// Extract key from URI: sercha://content/{source}/{slug}
	key, ok := extractRecordKey(req.Params.URI)
	if !ok {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	rec, err := s.ports.Content.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("getting content: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/markdown",
			Text:     "# " + rec.Title + "\n\n" + rec.Body,
		}},
	}, nil
}

func jsonResult(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractSource extracts the source from a URI like sercha://sources/{source}/content.
func extractSource(uri string) string {
	const prefix = uriScheme + "sources/"
	const suffix = "/content"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	uri = strings.TrimPrefix(uri, prefix)
	if !strings.HasSuffix(uri, suffix) {
		return ""
	}

	return strings.TrimSuffix(uri, suffix)
}

// extractRecordKey extracts the record key from a URI like
// sercha://content/{source}/{slug}. The slug may contain slashes.
func extractRecordKey(uri string) (domain.RecordKey, bool) {
	const prefix = uriScheme + "content/"

	if !strings.HasPrefix(uri, prefix) {
		return domain.RecordKey{}, false
	}

	source, slug, ok := strings.Cut(strings.TrimPrefix(uri, prefix), "/")
	if !ok || slug == "" {
		return domain.RecordKey{}, false
	}
	t, err := domain.ParseSourceType(source)
	if err != nil {
		return domain.RecordKey{}, false
	}
	return domain.RecordKey{SourceType: t, ID: slug}, true
}
