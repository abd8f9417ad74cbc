// Package markup provides the text transforms that strip markdown and HTML
// markup from content bodies before they are indexed.
package markup

import (
	"regexp"
	"strings"

	"github.com/custodia-labs/sercha-site/internal/core/ports/driven"
)

// Transform names, in the order the default pipeline applies them.
const (
	NameFencedCode = "fenced_code"
	NameInlineCode = "inline_code"
	NameHTMLTags   = "html_tags"
	NameImages     = "images"
	NameLinks      = "links"
	NameHeadings   = "headings"
	NameEmphasis   = "emphasis"
	NameBlocks     = "block_markers"
	NameWhitespace = "whitespace"
)

// rule is one regexp replacement.
type rule struct {
	re   *regexp.Regexp
	repl string
}

// Transform applies a fixed list of regexp replacements in order.
// It implements the TextTransform interface.
type Transform struct {
	name  string
	rules []rule
	post  func(string) string
}

// Ensure Transform implements the interface.
var _ driven.TextTransform = (*Transform)(nil)

// Name returns the transform name.
func (t *Transform) Name() string {
	return t.name
}

// Apply runs every replacement rule over text.
func (t *Transform) Apply(text string) string {
	for _, r := range t.rules {
		text = r.re.ReplaceAllString(text, r.repl)
	}
	if t.post != nil {
		text = t.post(text)
	}
	return text
}

func newTransform(name string, rules ...rule) *Transform {
	return &Transform{name: name, rules: rules}
}

func replace(pattern, repl string) rule {
	return rule{re: regexp.MustCompile(pattern), repl: repl}
}

// FencedCode removes ``` and ~~~ fenced code blocks, fences included.
// An unclosed fence is left for the inline code transform.
func FencedCode() *Transform {
	return newTransform(NameFencedCode,
		replace("(?ms)^[ \t]*```.*?^[ \t]*```[^\n]*$", "\n"),
		replace("(?ms)^[ \t]*~~~.*?^[ \t]*~~~[^\n]*$", "\n"),
	)
}

// InlineCode removes `code` spans.
func InlineCode() *Transform {
	return newTransform(NameInlineCode,
		replace("`+[^`\n]*`+", ""),
	)
}

// HTMLTags removes HTML tags and comments, keeping the text between tags.
func HTMLTags() *Transform {
	return newTransform(NameHTMLTags,
		replace(`(?s)<!--.*?-->`, ""),
		replace(`</?[a-zA-Z][^<>]*>`, ""),
	)
}

// Option configures the images transform.
type Option func(*imageOptions)

type imageOptions struct {
	keepAlt bool
}

// WithAltText controls whether image alt text is kept. Defaults to true.
func WithAltText(keep bool) Option {
	return func(o *imageOptions) {
		o.keepAlt = keep
	}
}

// Images replaces ![alt](url) with its alt text.
func Images(opts ...Option) *Transform {
	o := imageOptions{keepAlt: true}
	for _, opt := range opts {
		opt(&o)
	}
	repl := "$1"
	if !o.keepAlt {
		repl = ""
	}
	return newTransform(NameImages,
		replace(`!\[([^\]]*)\]\([^)]*\)`, repl),
		replace(`!\[([^\]]*)\]\[[^\]]*\]`, repl),
	)
}

// Links replaces [label](url) and [label][ref] with the label.
// Reference definitions ("[ref]: url") are removed.
func Links() *Transform {
	return newTransform(NameLinks,
		replace(`(?m)^[ \t]*\[[^\]]+\]:[ \t]*\S+.*$`, ""),
		replace(`\[([^\]]*)\]\([^)]*\)`, "$1"),
		replace(`\[([^\]]+)\]\[[^\]]*\]`, "$1"),
	)
}

// Headings removes ATX heading markers.
func Headings() *Transform {
	return newTransform(NameHeadings,
		replace(`(?m)^[ \t]*#{1,6}[ \t]+`, ""),
		replace(`(?m)^[ \t]*#{1,6}[ \t]*$`, ""),
	)
}

// Emphasis unwraps bold, italic and strikethrough spans.
// Underscores inside words are kept so snake_case survives.
func Emphasis() *Transform {
	return newTransform(NameEmphasis,
		replace(`\*\*([^*\n]+)\*\*`, "$1"),
		replace(`__([^_\n]+)__`, "$1"),
		replace(`~~([^~\n]+)~~`, "$1"),
		replace(`\*([^*\s][^*\n]*)\*`, "$1"),
		replace(`(^|[^\w])_([^_\s][^_\n]*)_($|[^\w])`, "$1$2$3"),
	)
}

// BlockMarkers removes blockquote markers, horizontal rules and list bullets.
func BlockMarkers() *Transform {
	return newTransform(NameBlocks,
		replace(`(?m)^[ \t]*(?:>[ \t]?)+`, ""),
		replace(`(?m)^[ \t]*([-*_][ \t]*){3,}$`, ""),
		replace(`(?m)^[ \t]*(?:(?:[-*+]|\d+[.)])[ \t]+)+`, ""),
	)
}

// Whitespace collapses all whitespace runs to one space and trims the ends.
func Whitespace() *Transform {
	t := newTransform(NameWhitespace, replace(`\s+`, " "))
	t.post = strings.TrimSpace
	return t
}
