package domain

import (
	"strings"
	"time"
)

// DefaultCategory is assigned to records whose header names no category.
const DefaultCategory = "general"

// ContentRecord is the unified shape every source is normalised into.
// It is the canonical representation consumed by tags, index and sitemap.
type ContentRecord struct {
	// ID is the URL-safe slug, unique within SourceType.
	ID string

	// SourceType is the source the record was loaded from.
	SourceType SourceType

	// Title is the human-readable title. Always non-empty.
	Title string

	// Description is the summary line. Empty when the header has none.
	Description string

	// Body is the full markdown body. Only the indexer and the renderer read it.
	Body string

	// Tags is a deduplicated, case-sensitive tag set.
	Tags []string

	// Category groups records (docs section, release channel).
	Category string

	// PublishedAt is the publication time.
	PublishedAt time.Time

	// UpdatedAt is the last modification time. Falls back to PublishedAt.
	UpdatedAt time.Time

	// Draft marks unpublished content. Normalised records never have it set.
	Draft bool

	// Featured is a presentation hint. The core never ranks on it.
	Featured bool

	// Version is the release version for release notes.
	Version string

	// Author is the optional byline.
	Author string

	// Path is the source file path, for diagnostics only.
	Path string
}

// RecordKey identifies a record across source types.
type RecordKey struct {
	SourceType SourceType
	ID         string
}

// Key returns the (SourceType, ID) pair that is unique across all content.
func (r *ContentRecord) Key() RecordKey {
	return RecordKey{SourceType: r.SourceType, ID: r.ID}
}

// LastModified returns UpdatedAt, or PublishedAt when UpdatedAt is unset.
func (r *ContentRecord) LastModified() time.Time {
	if r.UpdatedAt.IsZero() {
		return r.PublishedAt
	}
	return r.UpdatedAt
}

// HasTag reports whether the record carries tag (case-sensitive).
func (r *ContentRecord) HasTag(tag string) bool {
	for _, t := range r.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// DedupeTags returns tags with duplicates and blank entries removed.
// First occurrence wins; surrounding whitespace is trimmed.
func DedupeTags(tags []string) []string {
	if len(tags) == 0 {
		return []string{}
	}
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
