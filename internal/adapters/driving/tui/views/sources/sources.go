// Package sources provides the sources view component for the TUI.
package sources

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

// ErrNoIndexService indicates that no index service was provided.
var ErrNoIndexService = errors.New("index service not available")

// View shows how each content source fared in the current snapshot.
type View struct {
	styles       *styles.Styles
	indexService driving.IndexService
	ctx          context.Context

	snapshot   *domain.Snapshot
	selected   int
	width      int
	height     int
	ready      bool
	err        error
	loading    bool
	rebuilding bool
}

// NewView creates a new sources view.
func NewView(s *styles.Styles, indexService driving.IndexService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:       s,
		indexService: indexService,
		ctx:          context.Background(),
		width:        80,
		height:       24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view and loads the current snapshot.
func (v *View) Init() tea.Cmd {
	v.loading = true
	return v.loadSnapshot()
}

// loadSnapshot returns a command that fetches the current snapshot.
func (v *View) loadSnapshot() tea.Cmd {
	return func() tea.Msg {
		if v.indexService == nil {
			return messages.SnapshotLoaded{Err: ErrNoIndexService}
		}
		snap, err := v.indexService.Current(v.ctx)
		return messages.SnapshotLoaded{Snapshot: snap, Err: err}
	}
}

// reindex returns a command that rebuilds the index.
func (v *View) reindex() tea.Cmd {
	return func() tea.Msg {
		if v.indexService == nil {
			return messages.ReindexCompleted{Err: ErrNoIndexService}
		}
		snap, err := v.indexService.Rebuild(v.ctx)
		return messages.ReindexCompleted{Snapshot: snap, Err: err}
	}
}

// Update handles messages for the sources view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.SnapshotLoaded:
		v.loading = false
		v.setSnapshot(msg.Snapshot, msg.Err)
		return v, nil

	case messages.ReindexCompleted:
		v.rebuilding = false
		v.setSnapshot(msg.Snapshot, msg.Err)
		return v, nil
	}

	return v, nil
}

func (v *View) setSnapshot(snap *domain.Snapshot, err error) {
	if err != nil {
		v.err = err
		return
	}
	v.snapshot = snap
	v.err = nil
	if v.selected >= len(v.reports()) {
		v.selected = 0
	}
}

// handleKeyMsg handles key presses.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.selected > 0 {
			v.selected--
		}
	case "down", "j":
		if v.selected < len(v.reports())-1 {
			v.selected++
		}
	case "enter":
		reports := v.reports()
		if v.selected < len(reports) {
			st := reports[v.selected].SourceType
			return v, func() tea.Msg {
				return messages.SourceSelected{SourceType: st}
			}
		}
	case "r":
		if v.rebuilding {
			return v, nil
		}
		v.rebuilding = true
		return v, v.reindex()
	case "esc":
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	}

	return v, nil
}

func (v *View) reports() []domain.LoadReport {
	if v.snapshot == nil {
		return nil
	}
	return v.snapshot.Reports
}

// View renders the sources view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Sources"))
	b.WriteString("\n")
	if v.snapshot != nil {
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("Snapshot %s built %s · %d records · %d tags",
			shortID(v.snapshot.ID), v.snapshot.BuiltAt.Format(time.DateTime),
			len(v.snapshot.Records), len(v.snapshot.Tags))))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch {
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Loading sources..."))
		b.WriteString("\n\n")
	case v.rebuilding:
		b.WriteString(v.styles.Muted.Render("Rebuilding index..."))
		b.WriteString("\n\n")
	case errors.Is(v.err, domain.ErrIndexUnavailable):
		b.WriteString(v.styles.Warning.Render("Index not built yet. Press r to build it."))
		b.WriteString("\n\n")
	case v.err != nil:
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n\n")
	}

	if !v.loading && !v.rebuilding {
		reports := v.reports()
		for i := range reports {
			b.WriteString(v.renderReport(i, &reports[i]))
			b.WriteString("\n")
		}
		if len(reports) > 0 {
			b.WriteString("\n")
		}
	}

	b.WriteString(v.renderHelp())
	return b.String()
}

// renderReport renders a single source line.
func (v *View) renderReport(index int, r *domain.LoadReport) string {
	indicator := "  "
	if index == v.selected {
		indicator = "> "
	}

	typeStr := fmt.Sprintf("[%s]", r.SourceType)
	var status string
	switch {
	case r.Err != nil:
		status = "failed: " + r.Err.Error()
	case len(r.Warnings) > 0:
		status = fmt.Sprintf("%d records, %d drafts, %d skipped", r.Records, r.Drafts, len(r.Warnings))
	default:
		status = fmt.Sprintf("%d records, %d drafts", r.Records, r.Drafts)
	}

	if index == v.selected {
		return v.styles.Selected.Render(fmt.Sprintf("%s%-10s %-16s %s", indicator, typeStr,
			r.SourceType.Description(), status))
	}

	statusStyle := v.styles.Normal
	if r.Err != nil {
		statusStyle = v.styles.Error
	} else if len(r.Warnings) > 0 {
		statusStyle = v.styles.Warning
	}
	return v.styles.Normal.Render(indicator) +
		v.styles.Subtitle.Render(fmt.Sprintf("%-10s ", typeStr)) +
		v.styles.Normal.Render(fmt.Sprintf("%-16s ", r.SourceType.Description())) +
		statusStyle.Render(status)
}

// renderHelp renders the help footer.
func (v *View) renderHelp() string {
	return v.styles.Help.Render("[enter] records  [r] reindex  [esc] back  [q] quit")
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Snapshot returns the snapshot being shown, or nil.
func (v *View) Snapshot() *domain.Snapshot {
	return v.snapshot
}

// SelectedIndex returns the currently selected source index.
func (v *View) SelectedIndex() int {
	return v.selected
}

// Rebuilding reports whether a reindex is in flight.
func (v *View) Rebuilding() bool {
	return v.rebuilding
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
