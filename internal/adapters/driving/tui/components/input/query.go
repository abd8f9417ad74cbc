// Package input provides the query input of the search view.
package input

import (
	"fmt"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/sercha-site/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/sercha-site/internal/core/domain"
)

// DefaultMaxLength bounds the query when no limit is configured.
const DefaultMaxLength = 200

// counterThreshold is the fraction of the limit at which the length counter appears.
const counterThreshold = 0.8

// QueryInput is a single-line query field. Its label names the active
// source filter and a counter warns as the query nears the length bound.
type QueryInput struct {
	textinput textinput.Model
	styles    *styles.Styles
	source    domain.SourceType
	width     int
}

// NewQueryInput creates a focused query input.
func NewQueryInput(s *styles.Styles) *QueryInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = "Search posts, releases and docs..."
	ti.CharLimit = DefaultMaxLength
	ti.Width = 50
	ti.Focus()

	return &QueryInput{textinput: ti, styles: s, width: 50}
}

// Init starts the cursor blink.
func (q *QueryInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update forwards messages to the text field.
func (q *QueryInput) Update(msg tea.Msg) (*QueryInput, tea.Cmd) {
	var cmd tea.Cmd
	q.textinput, cmd = q.textinput.Update(msg)
	return q, cmd
}

// View renders label, field and, near the limit, the length counter.
func (q *QueryInput) View() string {
	parts := []string{
		q.styles.Title.Render(q.Label()),
		q.styles.InputField.Render(q.textinput.View()),
	}
	if c := q.counter(); c != "" {
		parts = append(parts, " "+c)
	}
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}

func (q *QueryInput) counter() string {
	limit := q.textinput.CharLimit
	if limit <= 0 {
		return ""
	}
	n := utf8.RuneCountInString(q.textinput.Value())
	if float64(n) < counterThreshold*float64(limit) {
		return ""
	}
	text := fmt.Sprintf("%d/%d", n, limit)
	if n >= limit {
		return q.styles.Warning.Render(text)
	}
	return q.styles.Muted.Render(text)
}

// Label returns the prompt, naming the source filter when one is set.
func (q *QueryInput) Label() string {
	if q.source == "" {
		return "Search: "
	}
	return "Search " + string(q.source) + ": "
}

// SetSource sets the source filter shown in the label. Empty means all sources.
func (q *QueryInput) SetSource(t domain.SourceType) {
	q.source = t
}

// Source returns the source filter shown in the label.
func (q *QueryInput) Source() domain.SourceType {
	return q.source
}

// SetMaxLength bounds the query in runes. Zero or less restores the default.
func (q *QueryInput) SetMaxLength(n int) {
	if n <= 0 {
		n = DefaultMaxLength
	}
	q.textinput.CharLimit = n
}

// MaxLength returns the query bound in runes.
func (q *QueryInput) MaxLength() int {
	return q.textinput.CharLimit
}

// Value returns the query.
func (q *QueryInput) Value() string {
	return q.textinput.Value()
}

// SetValue replaces the query. Input beyond the bound is truncated.
func (q *QueryInput) SetValue(value string) {
	q.textinput.SetValue(value)
}

// Focus gives the field keyboard focus.
func (q *QueryInput) Focus() tea.Cmd {
	return q.textinput.Focus()
}

// Blur removes keyboard focus.
func (q *QueryInput) Blur() {
	q.textinput.Blur()
}

// Focused reports whether the field has keyboard focus.
func (q *QueryInput) Focused() bool {
	return q.textinput.Focused()
}

// SetWidth fits the field to width, leaving room for the label and counter.
func (q *QueryInput) SetWidth(width int) {
	q.width = width
	q.textinput.Width = max(width-len(q.Label())-12, 20)
}

// Width returns the width last set.
func (q *QueryInput) Width() int {
	return q.width
}

// Reset clears the query. The source filter is kept.
func (q *QueryInput) Reset() {
	q.textinput.Reset()
}
