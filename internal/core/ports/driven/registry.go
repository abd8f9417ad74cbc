package driven

import (
	"github.com/custodia-labs/sercha-site/internal/core/domain"
)

// NormaliserRegistry dispatches parsed files to the normaliser for their source type.
type NormaliserRegistry interface {
	// Normalise converts a file using the normaliser registered for its source type.
	// Returns domain.ErrUnsupportedType when none is registered.
	Normalise(file *domain.ParsedFile) (domain.ContentRecord, error)

	// Register adds a normaliser, replacing any previous one for the same source type.
	Register(normaliser Normaliser)

	// SourceTypes returns the source types that have a normaliser.
	SourceTypes() []domain.SourceType
}
