// Package tags provides the tag browser view for the TUI.
package tags

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/sercha-site/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/sercha-site/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/sercha-site/internal/core/domain"
	"github.com/custodia-labs/sercha-site/internal/core/ports/driving"
)

// ErrNoTagService indicates that no tag service was provided.
var ErrNoTagService = errors.New("tag service not available")

// filters is the order Tab cycles through. Empty means every source.
var filters = []domain.SourceType{"", domain.SourceBlog, domain.SourceRelease, domain.SourceDoc}

// View lists tag counts, optionally restricted to one source.
type View struct {
	styles     *styles.Styles
	tagService driving.TagService
	ctx        context.Context

	filter       int
	tags         []domain.TagAggregate
	selected     int
	scrollOffset int
	width        int
	height       int
	ready        bool
	err          error
	loading      bool
}

// NewView creates a new tags view.
func NewView(s *styles.Styles, tagService driving.TagService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:     s,
		tagService: tagService,
		ctx:        context.Background(),
		width:      80,
		height:     24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view and loads tags.
func (v *View) Init() tea.Cmd {
	v.loading = true
	return v.loadTags()
}

// loadTags returns a command that loads tags for the current filter.
func (v *View) loadTags() tea.Cmd {
	filter := driving.TagFilter{SourceType: v.Filter()}
	return func() tea.Msg {
		if v.tagService == nil {
			return messages.TagsLoaded{Err: ErrNoTagService}
		}
		tags, err := v.tagService.Tags(v.ctx, filter)
		return messages.TagsLoaded{Tags: tags, Err: err}
	}
}

// Update handles messages for the tags view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.TagsLoaded:
		v.loading = false
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.tags = msg.Tags
		v.err = nil
		v.selected = 0
		v.scrollOffset = 0
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
		if v.selected > 0 {
			v.selected--
			v.adjustScroll()
		}
	case "down", "j":
		if v.selected < len(v.tags)-1 {
			v.selected++
			v.adjustScroll()
		}
	case "tab":
		v.filter = (v.filter + 1) % len(filters)
		v.loading = true
		return v, v.loadTags()
	case "enter":
		if v.selected < len(v.tags) {
			tag := v.tags[v.selected].Tag
			return v, func() tea.Msg {
				return messages.TagSelected{Tag: tag}
			}
		}
	case "esc":
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	}

	return v, nil
}

// adjustScroll keeps the selected item visible.
func (v *View) adjustScroll() {
	visibleItems := v.visibleItemCount()
	if v.selected < v.scrollOffset {
		v.scrollOffset = v.selected
	} else if v.selected >= v.scrollOffset+visibleItems {
		v.scrollOffset = v.selected - visibleItems + 1
	}
}

// visibleItemCount returns the number of items that can be displayed.
func (v *View) visibleItemCount() int {
	// Title, filter line, column header, help and padding
	return max(v.height-9, 1)
}

// View renders the tags view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render(fmt.Sprintf("Tags (%d)", len(v.tags))))
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render("Showing: " + v.filterLabel()))
	b.WriteString("\n\n")

	switch {
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Loading tags..."))
		b.WriteString("\n\n")
	case v.err != nil:
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n\n")
	case len(v.tags) == 0:
		b.WriteString(v.styles.Muted.Render("No tags."))
		b.WriteString("\n\n")
	default:
		b.WriteString(v.styles.Subtitle.Render(fmt.Sprintf("  %-24s %6s %6s %8s %6s",
			"TAG", "TOTAL", "BLOG", "RELEASES", "DOCS")))
		b.WriteString("\n")
		visibleItems := v.visibleItemCount()
		end := min(v.scrollOffset+visibleItems, len(v.tags))
		for i := v.scrollOffset; i < end; i++ {
			b.WriteString(v.renderTag(i, &v.tags[i]))
			b.WriteString("\n")
		}
		if len(v.tags) > visibleItems {
			b.WriteString("\n")
			b.WriteString(v.styles.Muted.Render(fmt.Sprintf("  [%d-%d of %d]",
				v.scrollOffset+1, end, len(v.tags))))
		}
		b.WriteString("\n\n")
	}

	b.WriteString(v.styles.Help.Render("[↑/↓] navigate  [enter] records  [tab] source  [esc] back"))
	return b.String()
}

// renderTag renders a single tag line.
func (v *View) renderTag(index int, t *domain.TagAggregate) string {
	line := fmt.Sprintf("%-24s %6d %6d %8d %6d", t.Tag, t.Count, t.BlogCount, t.ReleaseCount, t.DocCount)
	if index == v.selected {
		return v.styles.Selected.Render("> " + line)
	}
	return v.styles.Normal.Render("  " + line)
}

func (v *View) filterLabel() string {
	if f := v.Filter(); f != "" {
		return f.Description()
	}
	return "all sources"
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Filter returns the source the counts are restricted to. Empty means all.
func (v *View) Filter() domain.SourceType {
	return filters[v.filter]
}

// Tags returns the listed tag counts.
func (v *View) Tags() []domain.TagAggregate {
	return v.tags
}

// SelectedIndex returns the currently selected tag index.
func (v *View) SelectedIndex() int {
	return v.selected
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
