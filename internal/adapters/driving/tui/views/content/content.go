// Package content provides the record content view for the TUI.
package content

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/sercha-site/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/sercha-site/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/sercha-site/internal/core/domain"
	"github.com/custodia-labs/sercha-site/internal/core/ports/driving"
)

// ErrNoContentService indicates that no content service was provided.
var ErrNoContentService = errors.New("content service not available")

// View shows the header and body of one record.
type View struct {
	styles         *styles.Styles
	contentService driving.ContentService
	ctx            context.Context

	key          domain.RecordKey
	back         messages.ViewType
	record       *domain.ContentRecord
	lines        []string
	scrollOffset int
	width        int
	height       int
	ready        bool
	err          error
	loading      bool
}

// NewView creates a new content view.
func NewView(s *styles.Styles, contentService driving.ContentService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:         s,
		contentService: contentService,
		ctx:            context.Background(),
		back:           messages.ViewMenu,
		width:          80,
		height:         24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Open sets the record to show and returns the command that loads it.
// back is the view Esc returns to.
func (v *View) Open(key domain.RecordKey, back messages.ViewType) tea.Cmd {
	v.key = key
	v.back = back
	v.record = nil
	v.lines = nil
	v.scrollOffset = 0
	v.err = nil
	v.loading = true
	return v.loadContent()
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// loadContent returns a command that loads the record.
func (v *View) loadContent() tea.Cmd {
	key := v.key
	return func() tea.Msg {
		if v.contentService == nil {
			return messages.ContentLoaded{Err: ErrNoContentService}
		}
		rec, err := v.contentService.Get(v.ctx, key)
		return messages.ContentLoaded{Record: rec, Err: err}
	}
}

// Update handles messages for the content view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.ContentLoaded:
		v.loading = false
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.record = msg.Record
		v.err = nil
		v.wrapContent()
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		return v, nil
	}

	return v, nil
}

// handleKeyMsg handles key presses.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.scrollOffset > 0 {
			v.scrollOffset--
		}
	case "down", "j":
		if v.scrollOffset < v.maxScrollOffset() {
			v.scrollOffset++
		}
	case "pgup", "ctrl+u":
		v.scrollOffset = max(v.scrollOffset-v.visibleLines(), 0)
	case "pgdown", "ctrl+d":
		v.scrollOffset = min(v.scrollOffset+v.visibleLines(), v.maxScrollOffset())
	case "home", "g":
		v.scrollOffset = 0
	case "end", "G":
		v.scrollOffset = v.maxScrollOffset()
	case "esc":
		back := v.back
		return v, func() tea.Msg {
			return messages.ViewChanged{View: back}
		}
	}

	return v, nil
}

// wrapContent wraps the body to fit the view width.
func (v *View) wrapContent() {
	if v.record == nil || v.record.Body == "" {
		v.lines = nil
		return
	}

	contentWidth := max(v.width-4, 20)

	rawLines := strings.Split(v.record.Body, "\n")
	v.lines = make([]string, 0, len(rawLines))
	for _, line := range rawLines {
		runes := []rune(line)
		for len(runes) > contentWidth {
			v.lines = append(v.lines, string(runes[:contentWidth]))
			runes = runes[contentWidth:]
		}
		v.lines = append(v.lines, string(runes))
	}
}

// visibleLines returns the number of body lines that can be displayed.
func (v *View) visibleLines() int {
	// Title, meta, description, separators and help
	return max(v.height-9, 1)
}

// maxScrollOffset returns the maximum scroll offset.
func (v *View) maxScrollOffset() int {
	return max(len(v.lines)-v.visibleLines(), 0)
}

// View renders the content view.
func (v *View) View() string {
	var b strings.Builder

	title := v.key.ID
	if v.record != nil {
		title = v.record.Title
	}
	b.WriteString(v.styles.Title.Render(title))
	b.WriteString("\n")

	if v.record != nil {
		b.WriteString(v.renderMeta())
		b.WriteString("\n")
		if v.record.Description != "" {
			b.WriteString(v.styles.Subtitle.Render(v.record.Description))
			b.WriteString("\n")
		}
	}

	b.WriteString(strings.Repeat("─", min(max(v.width-4, 1), 60)))
	b.WriteString("\n\n")

	switch {
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Loading content..."))
		b.WriteString("\n\n")
	case v.err != nil:
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n\n")
	case len(v.lines) == 0:
		b.WriteString(v.styles.Muted.Render("(No content)"))
		b.WriteString("\n\n")
	default:
		v.renderBody(&b)
	}

	b.WriteString(v.renderHelp())
	return b.String()
}

// renderMeta renders the source, dates, category and tags line.
func (v *View) renderMeta() string {
	rec := v.record
	parts := []string{v.styles.SourceBadge(rec.SourceType)}
	if rec.Version != "" {
		parts = append(parts, rec.Version)
	}
	if !rec.PublishedAt.IsZero() {
		parts = append(parts, rec.PublishedAt.Format(time.DateOnly))
	}
	if !rec.UpdatedAt.IsZero() && !rec.UpdatedAt.Equal(rec.PublishedAt) {
		parts = append(parts, "updated "+rec.UpdatedAt.Format(time.DateOnly))
	}
	if rec.Category != "" {
		parts = append(parts, rec.Category)
	}
	if rec.Author != "" {
		parts = append(parts, "by "+rec.Author)
	}
	line := strings.Join(parts, v.styles.Muted.Render(" · "))
	if len(rec.Tags) > 0 {
		line += "\n" + v.styles.Muted.Render("#"+strings.Join(rec.Tags, " #"))
	}
	return line
}

// renderBody writes the visible window of body lines and a scroll indicator.
func (v *View) renderBody(b *strings.Builder) {
	visible := v.visibleLines()
	end := min(v.scrollOffset+visible, len(v.lines))
	for i := v.scrollOffset; i < end; i++ {
		b.WriteString(v.styles.Normal.Render(v.lines[i]))
		b.WriteString("\n")
	}

	if len(v.lines) > visible {
		percentage := 0
		if v.maxScrollOffset() > 0 {
			percentage = v.scrollOffset * 100 / v.maxScrollOffset()
		}
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("  [%d%%] Line %d-%d of %d",
			percentage, v.scrollOffset+1, end, len(v.lines))))
	}
	b.WriteString("\n\n")
}

// renderHelp renders the help footer.
func (v *View) renderHelp() string {
	return v.styles.Help.Render("[↑/↓/PgUp/PgDn] scroll  [g/G] top/bottom  [esc] back")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.wrapContent()
}

// Record returns the loaded record, or nil.
func (v *View) Record() *domain.ContentRecord {
	return v.record
}

// Key returns the key of the record being shown.
func (v *View) Key() domain.RecordKey {
	return v.key
}

// ScrollOffset returns the index of the first visible body line.
func (v *View) ScrollOffset() int {
	return v.scrollOffset
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
