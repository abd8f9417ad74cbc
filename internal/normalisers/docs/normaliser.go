// Package docs normalises documentation pages.
package docs

import (
	"fmt"

	"github.com/custodia-labs/sercha-site/internal/core/domain"
	"github.com/custodia-labs/sercha-site/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-site/internal/normalisers/markdown"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Normaliser handles documentation pages.
type Normaliser struct{}

// New creates a new documentation normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// SourceType returns domain.SourceDoc.
func (n *Normaliser) SourceType() domain.SourceType {
	return domain.SourceDoc
}

// Normalise converts a documentation page. The category falls back to the
// header section, then to the first directory of the page path.
func (n *Normaliser) Normalise(file *domain.ParsedFile) (domain.ContentRecord, error) {
	if file == nil {
		return domain.ContentRecord{}, domain.ErrInvalidInput
	}
	meta, ok := file.Meta.(domain.DocMeta)
	if !ok {
		return domain.ContentRecord{}, fmt.Errorf("%w: %T is not doc metadata", domain.ErrUnsupportedType, file.Meta)
	}

	rec := markdown.Base(file)
	if rec.Title == "" {
		return domain.ContentRecord{}, fmt.Errorf("%w: %s", domain.ErrMissingTitle, file.Path)
	}
	if rec.Category == "" {
		rec.Category = meta.Section
	}
	if rec.Category == "" {
		rec.Category = markdown.FirstSegment(file.Slug)
	}
	if rec.Category == "" {
		rec.Category = domain.DefaultCategory
	}
	return rec, nil
}
