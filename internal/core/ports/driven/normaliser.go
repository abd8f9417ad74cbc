package driven

import (
	"github.com/custodia-labs/sercha-site/internal/core/domain"
)

// Normaliser maps a parsed file of one source type into a ContentRecord.
// Normalisers are pure: they never touch the filesystem.
type Normaliser interface {
	// SourceType returns the source type this normaliser handles.
	SourceType() domain.SourceType

	// Normalise converts the file into the unified record shape.
	// Returns domain.ErrMissingTitle when no title can be derived.
	Normalise(file *domain.ParsedFile) (domain.ContentRecord, error)
}
