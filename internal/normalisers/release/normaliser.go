// Package release normalises release notes.
package release

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/sercha-site/internal/core/domain"
	"github.com/custodia-labs/sercha-site/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-site/internal/normalisers/markdown"
)

// DefaultCategory is the channel release notes fall into when the header names none.
const DefaultCategory = "release"

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Normaliser handles release notes.
type Normaliser struct{}

// New creates a new release notes normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// SourceType returns domain.SourceRelease.
func (n *Normaliser) SourceType() domain.SourceType {
	return domain.SourceRelease
}

// Normalise converts a release note. A note without a title is titled after
// its version, and the version is taken from the slug when the header omits it.
func (n *Normaliser) Normalise(file *domain.ParsedFile) (domain.ContentRecord, error) {
	if file == nil {
		return domain.ContentRecord{}, domain.ErrInvalidInput
	}
	meta, ok := file.Meta.(domain.ReleaseMeta)
	if !ok {
		return domain.ContentRecord{}, fmt.Errorf("%w: %T is not release metadata", domain.ErrUnsupportedType, file.Meta)
	}

	rec := markdown.Base(file)
	rec.Version = meta.Version
	if rec.Version == "" && looksLikeVersion(file.Slug) {
		rec.Version = file.Slug
	}

	if meta.Title == "" && rec.Version != "" {
		rec.Title = "Release " + rec.Version
	}
	if rec.Title == "" {
		return domain.ContentRecord{}, fmt.Errorf("%w: %s", domain.ErrMissingTitle, file.Path)
	}
	if rec.Category == "" {
		rec.Category = DefaultCategory
	}
	return rec, nil
}

// looksLikeVersion reports whether s reads like "v1.2.3" or "1.2".
func looksLikeVersion(s string) bool {
	s = strings.TrimPrefix(strings.ToLower(s), "v")
	if s == "" || s[0] < '0' || s[0] > '9' {
		return false
	}
	return strings.Contains(s, ".") && !strings.Contains(s, "/")
}
