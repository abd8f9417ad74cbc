// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/sercha-site/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/sercha-site/internal/core/domain"
)

// ResultList displays search results in a navigable list.
type ResultList struct {
	results  []domain.SearchResult
	selected int
	styles   *styles.Styles
	width    int
	height   int
	pre      string
	post     string
}

// NewResultList creates a new result list component.
func NewResultList(s *styles.Styles) *ResultList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &ResultList{
		results:  nil,
		selected: 0,
		styles:   s,
		width:    80,
		height:   10,
		pre:      "<mark>",
		post:     "</mark>",
	}
}

// SetMarkers sets the highlight markers the search service wraps matches in.
func (r *ResultList) SetMarkers(pre, post string) {
	r.pre = pre
	r.post = post
}

// Init initialises the result list.
func (r *ResultList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (r *ResultList) Update(msg tea.Msg) (*ResultList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		//nolint:exhaustive // handling only relevant key types
		switch msg.Type {
		case tea.KeyUp:
			r.MoveUp()
		case tea.KeyDown:
			r.MoveDown()
		default:
			// Handle other keys
		}
		switch msg.String() {
		case "k":
			r.MoveUp()
		case "j":
			r.MoveDown()
		}
	}
	return r, nil
}

// View renders the result list.
func (r *ResultList) View() string {
	if len(r.results) == 0 {
		return r.styles.Muted.Render("No results")
	}

	lines := make([]string, 0, len(r.results)*2+2)

	// Header
	header := r.styles.Subtitle.Render(fmt.Sprintf("Results (%d)", len(r.results))) +
		r.styles.Muted.Render(fmt.Sprintf("  %d/%d", r.selected+1, len(r.results)))
	lines = append(lines, header, "")

	// Each result takes three lines
	visibleCount := (r.height - 4) / 3
	if visibleCount < 1 {
		visibleCount = 1
	}

	start := 0
	if r.selected >= visibleCount {
		start = r.selected - visibleCount + 1
	}
	end := start + visibleCount
	if end > len(r.results) {
		end = len(r.results)
	}

	for i := start; i < end; i++ {
		line := r.renderResult(i, &r.results[i])
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

// renderResult formats a single search result with its best preview.
func (r *ResultList) renderResult(index int, result *domain.SearchResult) string {
	indicator := "  "
	if index == r.selected {
		indicator = "> "
	}

	title := result.Entry.Title
	if title == "" {
		title = result.Entry.ID
	}

	maxTitleLen := r.width - 24
	if maxTitleLen < 10 {
		maxTitleLen = 10
	}
	title = truncate(title, maxTitleLen)

	score := fmt.Sprintf("%d", result.Score)
	badge := r.styles.SourceBadge(result.Entry.SourceType)

	var titleLine string
	if index == r.selected {
		titleLine = r.styles.Selected.Render(fmt.Sprintf("%s%-*s  %s", indicator, maxTitleLen, title, score))
	} else {
		titleLine = r.styles.Normal.Render(fmt.Sprintf("%s%-*s  ", indicator, maxTitleLen, title)) +
			r.styles.Muted.Render(score)
	}

	urlLine := "    " + badge + " " + r.styles.Subtitle.Render(result.Entry.URL)
	if tags := matchedTags(result); tags != "" {
		urlLine += "  " + r.styles.Match.Render(tags)
	}

	preview := previewText(result)
	maxPreviewLen := r.width - 6
	if maxPreviewLen < 20 {
		maxPreviewLen = 20
	}
	preview = r.styles.Highlight(truncateMarked(preview, maxPreviewLen, r.pre, r.post), r.pre, r.post)
	previewLine := r.styles.Muted.Render("    ") + preview

	return titleLine + "\n" + urlLine + "\n" + previewLine
}

// matchedTags renders the tags that matched the query as "#a #b".
func matchedTags(result *domain.SearchResult) string {
	if len(result.MatchedTags) == 0 {
		return ""
	}
	return "#" + strings.Join(result.MatchedTags, " #")
}

// previewText picks the excerpt, then the description match, then the description.
func previewText(result *domain.SearchResult) string {
	if result.Excerpt != "" {
		return result.Excerpt
	}
	if m, ok := result.Match(domain.MatchDescription); ok {
		return m.Highlighted
	}
	return result.Entry.Description
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

// truncateMarked truncates s counting only visible runes, closing an open
// highlight span at the cut.
func truncateMarked(s string, n int, pre, post string) string {
	if pre == "" || post == "" {
		return truncate(s, n)
	}
	visible := strings.ReplaceAll(strings.ReplaceAll(s, pre, ""), post, "")
	if utf8.RuneCountInString(visible) <= n {
		return s
	}

	var b strings.Builder
	count, open := 0, false
	for len(s) > 0 && count < n-3 {
		switch {
		case strings.HasPrefix(s, pre):
			b.WriteString(pre)
			s = s[len(pre):]
			open = true
		case strings.HasPrefix(s, post):
			b.WriteString(post)
			s = s[len(post):]
			open = false
		default:
			r, size := utf8.DecodeRuneInString(s)
			b.WriteRune(r)
			s = s[size:]
			count++
		}
	}
	if open {
		b.WriteString(post)
	}
	b.WriteString("...")
	return b.String()
}

// SetResults updates the result list.
func (r *ResultList) SetResults(results []domain.SearchResult) {
	r.results = results
	r.selected = 0
}

// Results returns the current results.
func (r *ResultList) Results() []domain.SearchResult {
	return r.results
}

// Selected returns the index of the selected result.
func (r *ResultList) Selected() int {
	return r.selected
}

// SetSelected sets the selected index.
func (r *ResultList) SetSelected(index int) {
	if index >= 0 && index < len(r.results) {
		r.selected = index
	}
}

// SelectedResult returns the currently selected result, or nil if none.
func (r *ResultList) SelectedResult() *domain.SearchResult {
	if len(r.results) == 0 || r.selected < 0 || r.selected >= len(r.results) {
		return nil
	}
	return &r.results[r.selected]
}

// MoveUp moves selection up.
func (r *ResultList) MoveUp() {
	if r.selected > 0 {
		r.selected--
	}
}

// MoveDown moves selection down.
func (r *ResultList) MoveDown() {
	if r.selected < len(r.results)-1 {
		r.selected++
	}
}

// SetDimensions sets the component dimensions.
func (r *ResultList) SetDimensions(width, height int) {
	r.width = width
	r.height = height
}

// Width returns the current width.
func (r *ResultList) Width() int {
	return r.width
}

// Height returns the current height.
func (r *ResultList) Height() int {
	return r.height
}

// Count returns the number of results.
func (r *ResultList) Count() int {
	return len(r.results)
}

// IsEmpty returns whether the list is empty.
func (r *ResultList) IsEmpty() bool {
	return len(r.results) == 0
}
