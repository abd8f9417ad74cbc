// Package markdown holds the record building shared by every content normaliser.
package markdown

import (
	"path"
	"strings"

	"github.com/custodia-labs/sercha-site/internal/core/domain"
)

// Base builds the fields every source type fills the same way.
// Title and Category may still be empty; callers apply their own fallbacks.
func Base(file *domain.ParsedFile) domain.ContentRecord {
	common := file.Meta.Common()

	published := common.PublishedAt
	if published.IsZero() {
		published = file.LoadedAt
	}
	updated := common.UpdatedAt
	if updated.IsZero() {
		updated = published
	}

	title := common.Title
	if title == "" {
		title = ExtractTitle(file.Body)
	}

	return domain.ContentRecord{
		ID:          file.Slug,
		SourceType:  file.SourceType(),
		Title:       title,
		Description: common.Description,
		Body:        file.Body,
		Tags:        domain.DedupeTags(common.Tags),
		Category:    strings.TrimSpace(common.Category),
		PublishedAt: published,
		UpdatedAt:   updated,
		Featured:    common.Featured,
		Author:      common.Author,
		Path:        file.Path,
	}
}

// ExtractTitle returns the text of the first level-one heading, or "".
func ExtractTitle(body string) string {
	inFence := false
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "```") || strings.HasPrefix(line, "~~~") {
			inFence = !inFence
			continue
		}
		if !inFence && strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(strings.TrimPrefix(line, "#"))
		}
	}
	return ""
}

// FirstSegment returns the first directory of a slug, or "" for top-level slugs.
func FirstSegment(slug string) string {
	dir := path.Dir(slug)
	if dir == "." || dir == "/" {
		return ""
	}
	if i := strings.Index(dir, "/"); i >= 0 {
		return dir[:i]
	}
	return dir
}
