// Package postprocessors provides the content processing applied to record
// bodies before they are indexed.
package postprocessors

import (
	"github.com/custodia-labs/sercha-site/internal/core/ports/driven"
)

// Ensure Pipeline implements the interface.
var _ driven.TextPipeline = (*Pipeline)(nil)

// Pipeline chains multiple TextTransforms and runs them in order.
// It implements the TextPipeline interface.
type Pipeline struct {
	transforms []driven.TextTransform
}

// NewPipeline creates a new processing pipeline with the given transforms.
// Transforms are executed in the order provided.
func NewPipeline(transforms ...driven.TextTransform) *Pipeline {
	return &Pipeline{
		transforms: transforms,
	}
}

// Process runs text through all transforms once, in order.
func (p *Pipeline) Process(text string) string {
	for _, t := range p.transforms {
		text = t.Apply(text)
	}
	return text
}

// Strip runs the pipeline until its output stops changing, so that
// Strip(Strip(x)) == Strip(x). Transforms must never lengthen text; a pass
// that does ends the loop so a misbehaving transform cannot spin forever.
func (p *Pipeline) Strip(text string) string {
	for {
		next := p.Process(text)
		if next == text || len(next) > len(text) {
			return next
		}
		text = next
	}
}

// Add appends a transform to the pipeline.
func (p *Pipeline) Add(t driven.TextTransform) {
	p.transforms = append(p.transforms, t)
}

// Len returns the number of transforms in the pipeline.
func (p *Pipeline) Len() int {
	return len(p.transforms)
}

// Names returns the transform names in execution order.
func (p *Pipeline) Names() []string {
	names := make([]string, 0, len(p.transforms))
	for _, t := range p.transforms {
		names = append(names, t.Name())
	}
	return names
}
