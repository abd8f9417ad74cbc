package normalisers

import (
	"fmt"
	"sort"
	"sync"

	"github.com/custodia-labs/sercha-site/internal/core/domain"
	"github.com/custodia-labs/sercha-site/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-site/internal/normalisers/blog"
	"github.com/custodia-labs/sercha-site/internal/normalisers/docs"
	"github.com/custodia-labs/sercha-site/internal/normalisers/release"
)

// Ensure Registry implements the interface.
var _ driven.NormaliserRegistry = (*Registry)(nil)

// Registry dispatches files to the normaliser for their source type.
type Registry struct {
	mu          sync.RWMutex
	normalisers map[domain.SourceType]driven.Normaliser
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{normalisers: make(map[domain.SourceType]driven.Normaliser)}
}

// NewDefaultRegistry creates a registry with a normaliser for every source type.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(blog.New())
	r.Register(release.New())
	r.Register(docs.New())
	return r
}

// Register adds a normaliser, replacing any previous one for its source type.
func (r *Registry) Register(n driven.Normaliser) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.normalisers[n.SourceType()] = n
}

// Normalise converts file with the normaliser registered for its source type.
func (r *Registry) Normalise(file *domain.ParsedFile) (domain.ContentRecord, error) {
	if file == nil || file.Meta == nil {
		return domain.ContentRecord{}, domain.ErrInvalidInput
	}
	r.mu.RLock()
	n, ok := r.normalisers[file.SourceType()]
	r.mu.RUnlock()
	if !ok {
		return domain.ContentRecord{}, fmt.Errorf("%w: no normaliser for %q", domain.ErrUnsupportedType, file.SourceType())
	}
	return n.Normalise(file)
}

// SourceTypes returns the registered source types in canonical order.
func (r *Registry) SourceTypes() []domain.SourceType {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.SourceType, 0, len(r.normalisers))
	for t := range r.normalisers {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order() < out[j].Order() })
	return out
}
