package postprocessors

import (
	"fmt"
	"sort"

	"github.com/custodia-labs/sercha-site/internal/core/ports/driven"
)

// BuilderFunc creates a TextTransform from generic config.
// Config is a map of transform-specific settings parsed from user config.
type BuilderFunc func(cfg map[string]any) (driven.TextTransform, error)

// Registry maps transform names to their builders.
// It allows dynamic construction of pipelines from configuration.
type Registry struct {
	builders map[string]BuilderFunc
}

// NewRegistry creates a new transform registry.
func NewRegistry() *Registry {
	return &Registry{
		builders: make(map[string]BuilderFunc),
	}
}

// Register adds a transform builder to the registry.
// Name should be unique and match the transform's Name() return value.
func (r *Registry) Register(name string, builder BuilderFunc) {
	r.builders[name] = builder
}

// Build creates a transform by name with the given config.
// Returns error if the transform name is not registered.
func (r *Registry) Build(name string, cfg map[string]any) (driven.TextTransform, error) {
	builder, ok := r.builders[name]
	if !ok {
		return nil, fmt.Errorf("unknown transform: %s", name)
	}
	return builder(cfg)
}

// BuildPipeline creates a pipeline from transform names, in order.
func (r *Registry) BuildPipeline(names []string, cfg map[string]map[string]any) (*Pipeline, error) {
	p := NewPipeline()
	for _, name := range names {
		t, err := r.Build(name, cfg[name])
		if err != nil {
			return nil, err
		}
		p.Add(t)
	}
	return p, nil
}

// Has returns true if a transform with the given name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.builders[name]
	return ok
}

// Names returns all registered transform names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.builders))
	for name := range r.builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
