package driven

// TextTransform is one step of the markup stripping pipeline used by the indexer.
// Transforms are chained in order; each receives the previous step's output.
type TextTransform interface {
	// Name returns the transform name for logging and configuration.
	Name() string

	// Apply returns text with this step's markup removed.
	Apply(text string) string
}

// TextPipeline chains multiple TextTransforms.
type TextPipeline interface {
	// Strip runs text through all transforms until the output stops changing.
	// Strip(Strip(x)) must equal Strip(x).
	Strip(text string) string
}
