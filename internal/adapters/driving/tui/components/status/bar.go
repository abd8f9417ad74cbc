// Package status provides the status line of the search view.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/sercha-site/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/sercha-site/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/sercha-site/internal/core/domain"
)

// State is what the search view is doing.
type State string

const (
	StateReady     State = "ready"
	StateSearching State = "searching"
	StateResults   State = "results"
	StateError     State = "error"
)

// Bar shows the search state on the left and key hints on the right.
// With results it breaks the count down by source type.
type Bar struct {
	styles *styles.Styles
	keymap *keymap.KeyMap
	width  int

	state   State
	message string
	filter  domain.SourceType

	total    int
	bySource map[domain.SourceType]int
}

// NewBar creates a status bar in the ready state.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &Bar{styles: s, keymap: km, width: 80, state: StateReady}
}

// View renders the bar padded to its width.
func (b *Bar) View() string {
	left := b.renderState()
	if b.filter != "" {
		left += b.styles.Muted.Render(" · " + b.filter.Description())
	}
	right := b.renderHints()

	gap := max(b.width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return b.styles.StatusBar.Width(b.width).Render(left + strings.Repeat(" ", gap) + right)
}

func (b *Bar) renderState() string {
	switch b.state {
	case StateSearching:
		return b.styles.Muted.Render("Searching...")
	case StateError:
		if b.message == "" {
			return b.styles.Error.Render("Error")
		}
		return b.styles.Error.Render("Error: " + b.message)
	case StateResults:
		if b.message != "" {
			return b.styles.Normal.Render(b.message)
		}
		return b.styles.Normal.Render(b.Summary())
	case StateReady:
	}
	if b.message != "" {
		return b.styles.Normal.Render(b.message)
	}
	return b.styles.Muted.Render("Ready")
}

func (b *Bar) renderHints() string {
	bindings := b.Hints()
	hints := make([]string, 0, len(bindings))
	for _, kb := range bindings {
		h := kb.Help()
		hints = append(hints, h.Key+": "+h.Desc)
	}
	return b.styles.Muted.Render(strings.Join(hints, " | "))
}

// Summary describes the last result set, e.g. "3 results (1 blog, 2 doc)".
func (b *Bar) Summary() string {
	switch b.total {
	case 0:
		return "No results"
	case 1:
		return "1 result"
	}
	parts := make([]string, 0, len(b.bySource))
	for _, t := range domain.AllSourceTypes() {
		if n := b.bySource[t]; n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, t))
		}
	}
	if len(parts) < 2 {
		return fmt.Sprintf("%d results", b.total)
	}
	return fmt.Sprintf("%d results (%s)", b.total, strings.Join(parts, ", "))
}

// SetResults records a completed search and switches to the results state.
func (b *Bar) SetResults(results []domain.SearchResult) {
	b.state = StateResults
	b.message = ""
	b.total = len(results)
	b.bySource = make(map[domain.SourceType]int, len(domain.AllSourceTypes()))
	for i := range results {
		b.bySource[results[i].Entry.SourceType]++
	}
}

// SetSearching marks a search as in flight.
func (b *Bar) SetSearching() {
	b.state = StateSearching
	b.message = ""
}

// SetError shows err until the next search.
func (b *Bar) SetError(err error) {
	b.state = StateError
	b.message = ""
	if err != nil {
		b.message = err.Error()
	}
}

// SetMessage overrides the state text.
func (b *Bar) SetMessage(message string) {
	b.message = message
}

// SetFilter sets the source filter shown after the state. Empty hides it.
func (b *Bar) SetFilter(t domain.SourceType) {
	b.filter = t
}

// SetWidth sets the rendered width.
func (b *Bar) SetWidth(width int) {
	b.width = width
}

// Clear returns to the ready state. The filter is kept.
func (b *Bar) Clear() {
	b.state = StateReady
	b.message = ""
	b.total = 0
	b.bySource = nil
}

// State returns the current state.
func (b *Bar) State() State { return b.state }

// Message returns the override text.
func (b *Bar) Message() string { return b.message }

// Filter returns the source filter.
func (b *Bar) Filter() domain.SourceType { return b.filter }

// ResultCount returns the size of the last result set.
func (b *Bar) ResultCount() int { return b.total }

// SourceCount returns how many of the last results came from t.
func (b *Bar) SourceCount(t domain.SourceType) int { return b.bySource[t] }

// Width returns the rendered width.
func (b *Bar) Width() int { return b.width }

// Hints returns the key bindings shown for the current state.
func (b *Bar) Hints() []key.Binding {
	if b.state == StateResults && b.total > 0 {
		return b.keymap.ResultsHelp()
	}
	return b.keymap.ShortHelp()
}
