package postprocessors

import (
	"github.com/custodia-labs/sercha-site/internal/core/domain"
	"github.com/custodia-labs/sercha-site/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-site/internal/postprocessors/markup"
)

// DefaultOrder is the order the stripping transforms run in. Code goes first
// so markup inside code samples is never interpreted; whitespace goes last.
var DefaultOrder = []string{
	markup.NameFencedCode,
	markup.NameInlineCode,
	markup.NameHTMLTags,
	markup.NameImages,
	markup.NameLinks,
	markup.NameHeadings,
	markup.NameEmphasis,
	markup.NameBlocks,
	markup.NameWhitespace,
}

// RegisterDefaults registers all built-in transforms with the registry.
// Call this during application initialisation to enable standard transforms.
func RegisterDefaults(r *Registry) {
	r.Register(markup.NameFencedCode, fixed(markup.FencedCode()))
	r.Register(markup.NameInlineCode, fixed(markup.InlineCode()))
	r.Register(markup.NameHTMLTags, fixed(markup.HTMLTags()))
	r.Register(markup.NameImages, buildImages)
	r.Register(markup.NameLinks, fixed(markup.Links()))
	r.Register(markup.NameHeadings, fixed(markup.Headings()))
	r.Register(markup.NameEmphasis, fixed(markup.Emphasis()))
	r.Register(markup.NameBlocks, fixed(markup.BlockMarkers()))
	r.Register(markup.NameWhitespace, fixed(markup.Whitespace()))
}

// NewStripPipeline returns the default markup stripping pipeline.
func NewStripPipeline() *Pipeline {
	return NewConfiguredStripPipeline(domain.DefaultSearchConfig())
}

// NewConfiguredStripPipeline returns the stripping pipeline with the
// transform options taken from the search settings.
func NewConfiguredStripPipeline(cfg domain.SearchConfig) *Pipeline {
	r := NewRegistry()
	RegisterDefaults(r)
	p, err := r.BuildPipeline(DefaultOrder, map[string]map[string]any{
		markup.NameImages: {"keep_alt": cfg.KeepImageAlt},
	})
	if err != nil {
		// Every default name is registered above.
		panic(err)
	}
	return p
}

var defaultStrip = NewStripPipeline()

// Strip removes all markdown and HTML markup from text and collapses
// whitespace. Strip is idempotent.
func Strip(text string) string {
	return defaultStrip.Strip(text)
}

// fixed returns a builder for a transform that takes no config.
// Transforms are stateless, so the instance is shared.
func fixed(t driven.TextTransform) BuilderFunc {
	return func(map[string]any) (driven.TextTransform, error) {
		return t, nil
	}
}

// buildImages creates the images transform from generic config.
// Supported config keys:
//   - keep_alt (bool): Keep alt text (default: true)
func buildImages(cfg map[string]any) (driven.TextTransform, error) {
	var opts []markup.Option
	if keep, ok := cfg["keep_alt"].(bool); ok {
		opts = append(opts, markup.WithAltText(keep))
	}
	return markup.Images(opts...), nil
}
