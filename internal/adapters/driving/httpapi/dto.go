package httpapi

import (
	"time"

	"github.com/custodia-labs/sercha-site/internal/core/domain"
)

// --- Requests ---

type searchRequest struct {
	Query   string   `query:"q"`
	Limit   int      `query:"limit" validate:"gte=0"`
	Sources []string `query:"source" validate:"dive,sourcetype"`
}

type contentRequest struct {
	Source string `query:"source" validate:"omitempty,sourcetype"`
}

type tagsRequest struct {
	Source   string `query:"source" validate:"omitempty,sourcetype"`
	Category string `query:"category" validate:"max=200"`
}

// --- Responses ---

type searchResponse struct {
	Query   string           `json:"query"`
	Count   int              `json:"count"`
	Results []searchResultVM `json:"results"`
}

type searchResultVM struct {
	ID           string    `json:"id"`
	SourceType   string    `json:"sourceType"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	URL          string    `json:"url"`
	Tags         []string  `json:"tags"`
	Category     string    `json:"category,omitempty"`
	LastModified time.Time `json:"lastModified"`
	Score        int       `json:"score"`
	Matches      []matchVM `json:"matches"`
	MatchedTags  []string  `json:"matchedTags,omitempty"`
	Excerpt      string    `json:"excerpt,omitempty"`
}

type matchVM struct {
	Field       string `json:"field"`
	Highlighted string `json:"highlighted"`
}

type recordVM struct {
	ID          string     `json:"id"`
	SourceType  string     `json:"sourceType"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	URL         string     `json:"url,omitempty"`
	Tags        []string   `json:"tags"`
	Category    string     `json:"category"`
	Version     string     `json:"version,omitempty"`
	Author      string     `json:"author,omitempty"`
	Featured    bool       `json:"featured,omitempty"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
	Body        string     `json:"body,omitempty"`
}

type contentResponse struct {
	Count   int        `json:"count"`
	Records []recordVM `json:"records"`
}

type tagVM struct {
	Tag      string `json:"tag"`
	Count    int    `json:"count"`
	Blog     int    `json:"blog"`
	Releases int    `json:"releases"`
	Docs     int    `json:"docs"`
}

type tagsResponse struct {
	Tags []tagVM `json:"tags"`
}

type taggedResponse struct {
	Tag     string     `json:"tag"`
	Count   int        `json:"count"`
	Records []recordVM `json:"records"`
}

type sourceReportVM struct {
	Type     string `json:"type"`
	Healthy  bool   `json:"healthy"`
	Records  int    `json:"records"`
	Drafts   int    `json:"drafts"`
	Warnings int    `json:"warnings"`
	Error    string `json:"error,omitempty"`
}

type snapshotResponse struct {
	Status   string           `json:"status"`
	Snapshot string           `json:"snapshot,omitempty"`
	BuiltAt  *time.Time       `json:"builtAt,omitempty"`
	Records  int              `json:"records"`
	Tags     int              `json:"tags"`
	Sources  []sourceReportVM `json:"sources"`
}

// --- Mapping ---

func toSearchResultVM(r *domain.SearchResult) searchResultVM {
	e := &r.Entry
	matches := make([]matchVM, 0, len(r.Matches))
	for _, m := range r.Matches {
		matches = append(matches, matchVM{Field: string(m.Field), Highlighted: m.Highlighted})
	}
	return searchResultVM{
		ID:           e.ID,
		SourceType:   string(e.SourceType),
		Title:        e.Title,
		Description:  e.Description,
		URL:          e.URL,
		Tags:         nonNil(e.Tags),
		Category:     e.Category,
		LastModified: e.LastModified(),
		Score:        r.Score,
		Matches:      matches,
		MatchedTags:  r.MatchedTags,
		Excerpt:      r.Excerpt,
	}
}

func toRecordVM(rec *domain.ContentRecord, url string, withBody bool) recordVM {
	vm := recordVM{
		ID:          rec.ID,
		SourceType:  string(rec.SourceType),
		Title:       rec.Title,
		Description: rec.Description,
		URL:         url,
		Tags:        nonNil(rec.Tags),
		Category:    rec.Category,
		Version:     rec.Version,
		Author:      rec.Author,
		Featured:    rec.Featured,
		PublishedAt: timePtr(rec.PublishedAt),
		UpdatedAt:   timePtr(rec.UpdatedAt),
	}
	if withBody {
		vm.Body = rec.Body
	}
	return vm
}

func toTagVM(a domain.TagAggregate) tagVM {
	return tagVM{
		Tag:      a.Tag,
		Count:    a.Count,
		Blog:     a.BlogCount,
		Releases: a.ReleaseCount,
		Docs:     a.DocCount,
	}
}

func toSnapshotResponse(snap *domain.Snapshot) snapshotResponse {
	resp := snapshotResponse{
		Status:   "ok",
		Snapshot: snap.ID,
		BuiltAt:  timePtr(snap.BuiltAt),
		Records:  len(snap.Records),
		Tags:     len(snap.Tags),
		Sources:  make([]sourceReportVM, 0, len(snap.Reports)),
	}
	for _, r := range snap.Reports {
		vm := sourceReportVM{
			Type:     string(r.SourceType),
			Healthy:  r.Healthy(),
			Records:  r.Records,
			Drafts:   r.Drafts,
			Warnings: len(r.Warnings),
		}
		if r.Err != nil {
			vm.Error = r.Err.Error()
			resp.Status = "degraded"
		}
		resp.Sources = append(resp.Sources, vm)
	}
	return resp
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
