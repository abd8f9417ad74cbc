// Package records provides the record list view for the TUI.
package records

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

var (
	// ErrNoContentService indicates that no content service was provided.
	ErrNoContentService = errors.New("content service not available")

	// ErrNoTagService indicates that no tag service was provided.
	ErrNoTagService = errors.New("tag service not available")
)

// View lists records of one source or one tag.
type View struct {
	styles         *styles.Styles
	contentService driving.ContentService
	tagService     driving.TagService
	ctx            context.Context

	title        string
	back         messages.ViewType
	records      []domain.ContentRecord
	selected     int
	scrollOffset int
	width        int
	height       int
	ready        bool
	err          error
	loading      bool
}

// NewView creates a new records view. Either service may be nil.
func NewView(s *styles.Styles, contentService driving.ContentService, tagService driving.TagService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:         s,
		contentService: contentService,
		tagService:     tagService,
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

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// ShowSource lists every record of sourceType. Esc returns to the sources view.
func (v *View) ShowSource(sourceType domain.SourceType) tea.Cmd {
	title := sourceType.Description()
	v.reset(title, messages.ViewSources)
	return func() tea.Msg {
		if v.contentService == nil {
			return messages.RecordsLoaded{Title: title, Err: ErrNoContentService}
		}
		recs, err := v.contentService.List(v.ctx, sourceType)
		return messages.RecordsLoaded{Title: title, Records: recs, Err: err}
	}
}

// ShowTag lists every record carrying tag. Esc returns to the tags view.
func (v *View) ShowTag(tag string) tea.Cmd {
	title := "#" + tag
	v.reset(title, messages.ViewTags)
	return func() tea.Msg {
		if v.tagService == nil {
			return messages.RecordsLoaded{Title: title, Err: ErrNoTagService}
		}
		recs, err := v.tagService.Tagged(v.ctx, tag)
		return messages.RecordsLoaded{Title: title, Records: recs, Err: err}
	}
}

func (v *View) reset(title string, back messages.ViewType) {
	v.title = title
	v.back = back
	v.records = nil
	v.selected = 0
	v.scrollOffset = 0
	v.err = nil
	v.loading = true
}

// Update handles messages for the records view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.RecordsLoaded:
		// Drop responses for a list that is no longer shown.
		if msg.Title != v.title {
			return v, nil
		}
		v.loading = false
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.records = msg.Records
		v.err = nil
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
		if v.selected < len(v.records)-1 {
			v.selected++
			v.adjustScroll()
		}
	case "enter":
		if rec := v.SelectedRecord(); rec != nil {
			key := rec.Key()
			return v, func() tea.Msg {
				return messages.RecordSelected{Key: key, From: messages.ViewRecords}
			}
		}
	case "esc":
		back := v.back
		return v, func() tea.Msg {
			return messages.ViewChanged{View: back}
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
	// Reserve lines for title, separator, help, and padding
	return max(v.height-8, 1)
}

// View renders the records view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render(fmt.Sprintf("%s (%d)", v.title, len(v.records))))
	b.WriteString("\n\n")

	switch {
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Loading records..."))
		b.WriteString("\n\n")
	case v.err != nil:
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n\n")
	case len(v.records) == 0:
		b.WriteString(v.styles.Muted.Render("No records."))
		b.WriteString("\n\n")
	default:
		visibleItems := v.visibleItemCount()
		end := min(v.scrollOffset+visibleItems, len(v.records))
		for i := v.scrollOffset; i < end; i++ {
			b.WriteString(v.renderRecord(i, &v.records[i]))
			b.WriteString("\n")
		}
		if len(v.records) > visibleItems {
			b.WriteString("\n")
			b.WriteString(v.styles.Muted.Render(fmt.Sprintf("  [%d-%d of %d]",
				v.scrollOffset+1, end, len(v.records))))
		}
		b.WriteString("\n\n")
	}

	b.WriteString(v.styles.Help.Render("[↑/↓] navigate  [enter] open  [esc] back"))
	return b.String()
}

// renderRecord renders a single record line.
func (v *View) renderRecord(index int, rec *domain.ContentRecord) string {
	indicator := "  "
	if index == v.selected {
		indicator = "> "
	}

	title := rec.Title
	maxTitleLen := max(v.width/2-4, 10)
	if r := []rune(title); len(r) > maxTitleLen {
		title = string(r[:maxTitleLen-3]) + "..."
	}

	date := ""
	if t := rec.LastModified(); !t.IsZero() {
		date = t.Format(time.DateOnly)
	}

	if index == v.selected {
		return v.styles.Selected.Render(fmt.Sprintf("%s%-*s  %s", indicator, maxTitleLen, title, date))
	}

	return v.styles.Normal.Render(indicator) +
		v.styles.Normal.Render(fmt.Sprintf("%-*s  ", maxTitleLen, title)) +
		v.styles.SourceBadge(rec.SourceType) + " " +
		v.styles.Muted.Render(date)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Title returns the heading of the current list.
func (v *View) Title() string {
	return v.title
}

// Records returns the listed records.
func (v *View) Records() []domain.ContentRecord {
	return v.records
}

// SelectedIndex returns the currently selected record index.
func (v *View) SelectedIndex() int {
	return v.selected
}

// SelectedRecord returns the currently selected record, or nil.
func (v *View) SelectedRecord() *domain.ContentRecord {
	if v.selected < len(v.records) {
		return &v.records[v.selected]
	}
	return nil
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
