package httpapi

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/custodia-labs/sercha-site/internal/adapters/driving/sitemap"
	"github.com/custodia-labs/sercha-site/internal/core/domain"
	"github.com/custodia-labs/sercha-site/internal/core/ports/driving"
	"github.com/custodia-labs/sercha-site/internal/logger"
)

// handlers holds the route handlers and their dependencies.
type handlers struct {
	ports   *Ports
	metrics *Metrics
}

// search handles GET /api/search?q=&limit=&source=.
func (h *handlers) search(c echo.Context) error {
	var req searchRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	opts := domain.SearchOptions{Limit: req.Limit}
	for _, s := range req.Sources {
		t, err := domain.ParseSourceType(s)
		if err != nil {
			return err
		}
		opts.SourceTypes = append(opts.SourceTypes, t)
	}

	start := time.Now()
	results, err := h.ports.Search.Search(c.Request().Context(), req.Query, opts)
	if err != nil {
		return err
	}
	h.metrics.RecordSearch(time.Since(start), len(results))

	resp := searchResponse{
		Query:   req.Query,
		Count:   len(results),
		Results: make([]searchResultVM, 0, len(results)),
	}
	for i := range results {
		resp.Results = append(resp.Results, toSearchResultVM(&results[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

// listContent handles GET /api/content?source=.
func (h *handlers) listContent(c echo.Context) error {
	var req contentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	var sourceType domain.SourceType
	if req.Source != "" {
		t, err := domain.ParseSourceType(req.Source)
		if err != nil {
			return err
		}
		sourceType = t
	}

	records, err := h.ports.Content.List(c.Request().Context(), sourceType)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, contentResponse{
		Count:   len(records),
		Records: h.recordVMs(records),
	})
}

// getContent handles GET /api/content/:source/*.
func (h *handlers) getContent(c echo.Context) error {
	sourceType, err := domain.ParseSourceType(c.Param("source"))
	if err != nil {
		return err
	}
	slug := c.Param("*")
	if slug == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "slug is required")
	}

	rec, err := h.ports.Content.Get(c.Request().Context(), domain.RecordKey{SourceType: sourceType, ID: slug})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRecordVM(rec, h.recordURL(rec), true))
}

// listTags handles GET /api/tags?source=&category=.
func (h *handlers) listTags(c echo.Context) error {
	var req tagsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	filter := driving.TagFilter{Category: req.Category}
	if req.Source != "" {
		t, err := domain.ParseSourceType(req.Source)
		if err != nil {
			return err
		}
		filter.SourceType = t
	}

	aggs, err := h.ports.Tags.Tags(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	resp := tagsResponse{Tags: make([]tagVM, 0, len(aggs))}
	for _, a := range aggs {
		resp.Tags = append(resp.Tags, toTagVM(a))
	}
	return c.JSON(http.StatusOK, resp)
}

// listTagged handles GET /api/tags/:tag.
func (h *handlers) listTagged(c echo.Context) error {
	tag := c.Param("tag")
	records, err := h.ports.Tags.Tagged(c.Request().Context(), tag)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return echo.NewHTTPError(http.StatusNotFound, "no records tagged "+tag)
	}
	return c.JSON(http.StatusOK, taggedResponse{
		Tag:     tag,
		Count:   len(records),
		Records: h.recordVMs(records),
	})
}

// sitemapXML handles GET /sitemap.xml.
func (h *handlers) sitemapXML(c echo.Context) error {
	entries, err := h.ports.Sitemap.Entries(c.Request().Context())
	if err != nil {
		return err
	}
	data, err := sitemap.Marshal(entries)
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, sitemap.ContentType, data)
}

// health handles GET /healthz.
func (h *handlers) health(c echo.Context) error {
	snap, err := h.ports.Index.Current(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, snapshotResponse{
			Status:  "starting",
			Sources: []sourceReportVM{},
		})
	}
	return c.JSON(http.StatusOK, toSnapshotResponse(snap))
}

// reindex handles POST /api/reindex.
func (h *handlers) reindex(c echo.Context) error {
	snap, err := h.ports.Index.Rebuild(c.Request().Context())
	h.metrics.RecordRebuild(snap, err)
	if err != nil {
		logger.Warn("reindex failed: %v", err)
		return err
	}
	logger.Info("reindexed snapshot %s (%d records)", snap.ID, len(snap.Records))
	return c.JSON(http.StatusOK, toSnapshotResponse(snap))
}

func (h *handlers) recordVMs(records []domain.ContentRecord) []recordVM {
	out := make([]recordVM, 0, len(records))
	for i := range records {
		out = append(out, toRecordVM(&records[i], h.recordURL(&records[i]), false))
	}
	return out
}

func (h *handlers) recordURL(rec *domain.ContentRecord) string {
	if h.ports.RecordURL == nil {
		return ""
	}
	return h.ports.RecordURL(rec)
}
