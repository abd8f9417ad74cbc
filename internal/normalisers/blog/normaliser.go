// Package blog normalises blog posts.
package blog

import (
	"fmt"

	"github.com/custodia-labs/sercha-site/internal/core/domain"
	"github.com/custodia-labs/sercha-site/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-site/internal/normalisers/markdown"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Normaliser handles blog posts.
type Normaliser struct{}

// New creates a new blog normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// SourceType returns domain.SourceBlog.
func (n *Normaliser) SourceType() domain.SourceType {
	return domain.SourceBlog
}

// Normalise converts a blog post. The legacy summary field is used when
// the post has no description.
func (n *Normaliser) Normalise(file *domain.ParsedFile) (domain.ContentRecord, error) {
	if file == nil {
		return domain.ContentRecord{}, domain.ErrInvalidInput
	}
	meta, ok := file.Meta.(domain.BlogMeta)
	if !ok {
		return domain.ContentRecord{}, fmt.Errorf("%w: %T is not blog metadata", domain.ErrUnsupportedType, file.Meta)
	}

	rec := markdown.Base(file)
	if rec.Title == "" {
		return domain.ContentRecord{}, fmt.Errorf("%w: %s", domain.ErrMissingTitle, file.Path)
	}
	if rec.Description == "" {
		rec.Description = meta.Summary
	}
	if rec.Category == "" {
		rec.Category = domain.DefaultCategory
	}
	return rec, nil
}
