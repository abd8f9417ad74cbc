package services

import (
	"github.com/custodia-labs/sercha-site/internal/core/domain"
	"github.com/custodia-labs/sercha-site/internal/core/ports/driven"
)

// LinkFunc returns the destination link for a record.
type LinkFunc func(rec *domain.ContentRecord) string

// BuildIndex projects every non-draft record into a search index entry,
// stripping markup from the body. Records keep their input order and are
// never merged, even when two sources share a title.
func BuildIndex(records []domain.ContentRecord, stripper driven.TextPipeline, link LinkFunc) []domain.SearchIndexEntry {
	entries := make([]domain.SearchIndexEntry, 0, len(records))
	for i := range records {
		rec := &records[i]
		if rec.Draft {
			continue
		}
		entry := domain.SearchIndexEntry{
			ID:          rec.ID,
			SourceType:  rec.SourceType,
			Title:       rec.Title,
			Description: rec.Description,
			Content:     stripper.Strip(rec.Body),
			Tags:        append([]string(nil), rec.Tags...),
			Category:    rec.Category,
			PublishedAt: rec.PublishedAt,
			UpdatedAt:   rec.UpdatedAt,
		}
		if link != nil {
			entry.URL = link(rec)
		}
		entries = append(entries, entry)
	}
	return entries
}
