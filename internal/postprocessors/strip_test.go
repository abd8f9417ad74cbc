package postprocessors

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrip(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain text", input: "hello world", want: "hello world"},
		{name: "heading", input: "# Title\n\nBody", want: "Title Body"},
		{name: "fenced code removed", input: "before\n```go\nfunc main() {}\n```\nafter", want: "before after"},
		{name: "tilde fence removed", input: "a\n~~~\nsecret\n~~~\nb", want: "a b"},
		{name: "inline code removed", input: "run `make build` now", want: "run now"},
		{name: "link keeps label", input: "see [the docs](https://example.com)", want: "see the docs"},
		{name: "image keeps alt", input: "![architecture diagram](arch.png)", want: "architecture diagram"},
		{name: "emphasis unwrapped", input: "**bold** and *italic* and ~~gone~~ and _under_", want: "bold and italic and gone and under"},
		{name: "snake case kept", input: "set max_results here", want: "set max_results here"},
		{name: "html tags removed", input: "<div class=\"note\">Hi <b>there</b></div>", want: "Hi there"},
		{name: "html comment removed", input: "a <!-- hidden --> b", want: "a b"},
		{name: "lists and quotes", input: "> quoted\n- one\n* two\n1. three", want: "quoted one two three"},
		{name: "horizontal rule", input: "a\n\n---\n\nb", want: "a b"},
		{name: "comparison kept", input: "a < b > c", want: "a < b > c"},
		{name: "nested link in emphasis", input: "**[Go](https://go.dev)**", want: "Go"},
		{name: "deep quote", input: strings.Repeat("> ", 40) + "hello", want: "hello"},
		{name: "stacked bullets", input: "- - * + item\n1. 2) step", want: "item step"},
		{name: "empty", input: "", want: ""},
		{name: "whitespace only", input: " \n\t ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Strip(tt.input))
		})
	}
}

// TestStrip_Idempotent checks strip(strip(x)) == strip(x) on inputs whose
// first pass exposes new markup.
func TestStrip_Idempotent(t *testing.T) {
	inputs := []string{
		"# # nested heading",
		"**__double__**",
		"> > > deep quote",
		"[**label**](url) and ![*alt*](img)",
		"<b>**bold in html**</b>",
		"`unclosed code",
		"```\nunclosed fence\nstill code",
		"- - - list or rule",
		"_a_ _b_ _c_",
		"text with trailing #",
		"[outer [inner](a)](b)",
		"* * *\n# Heading\n1) item\n",
		"<<b>b>",
		"mixed\r\nline\r\nendings",
		strings.Repeat("> ", 40) + "hello",
		strings.Repeat("> ", 200) + "**deep** quote",
		strings.Repeat(">", 64) + "\n" + strings.Repeat("- ", 64) + "item",
		strings.Repeat("**", 40) + "x" + strings.Repeat("**", 40),
		strings.Repeat("[", 50) + "label" + strings.Repeat("](u)", 50),
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			once := Strip(in)
			assert.Equal(t, once, Strip(once))
		})
	}
}
