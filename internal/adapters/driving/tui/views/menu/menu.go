// Package menu provides the landing view of the TUI.
package menu

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/sercha-site/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/sercha-site/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/sercha-site/internal/core/domain"
)

// Item is one entry of the menu.
type Item struct {
	Label       string
	Description string

	// Shortcut selects the item directly.
	Shortcut string

	View messages.ViewType
	Quit bool
}

// DefaultItems returns the menu entries in display order.
func DefaultItems() []Item {
	return []Item{
		{Label: "Search", Description: "Rank posts, releases and docs", Shortcut: "/", View: messages.ViewSearch},
		{Label: "Tags", Description: "Browse tag counts per source", Shortcut: "t", View: messages.ViewTags},
		{Label: "Sources", Description: "Load reports and reindex", Shortcut: "s", View: messages.ViewSources},
		{Label: "Help", Description: "Key bindings", Shortcut: "?", View: messages.ViewHelp},
		{Label: "Quit", Shortcut: "q", Quit: true},
	}
}

// View is the main menu. It also shows a one-line summary of the
// published snapshot once one is known.
type View struct {
	styles   *styles.Styles
	items    []Item
	selected int
	summary  string
	width    int
	height   int
	ready    bool
}

// NewView creates the menu view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles: s,
		items:  DefaultItems(),
		width:  80,
		height: 24,
	}
}

// Init implements the view lifecycle. The menu loads nothing.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles navigation and shortcuts.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		switch k := msg.String(); k {
		case "up", "k":
			v.selected = max(v.selected-1, 0)
		case "down", "j":
			v.selected = min(v.selected+1, len(v.items)-1)
		case "enter":
			return v, v.choose(v.selected)
		default:
			if i := v.shortcut(k); i >= 0 {
				v.selected = i
				return v, v.choose(i)
			}
		}
	}
	return v, nil
}

func (v *View) shortcut(k string) int {
	for i, item := range v.items {
		if item.Shortcut == k {
			return i
		}
	}
	return -1
}

func (v *View) choose(i int) tea.Cmd {
	item := v.items[i]
	if item.Quit {
		return tea.Quit
	}
	return func() tea.Msg {
		return messages.ViewChanged{View: item.View}
	}
}

// View renders the menu.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder
	b.WriteString(v.styles.Title.Render("Sercha Site"))
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render("Product Site Search"))
	b.WriteString("\n\n")

	labelWidth := 0
	for _, item := range v.items {
		labelWidth = max(labelWidth, len(item.Label))
	}

	for i, item := range v.items {
		label := fmt.Sprintf("%-*s", labelWidth, item.Label)
		line := fmt.Sprintf("[%s] %s", item.Shortcut, label)
		if i == v.selected {
			b.WriteString("> " + v.styles.Subtitle.Render(line))
		} else {
			b.WriteString("  " + v.styles.Normal.Render(line))
		}
		if item.Description != "" {
			b.WriteString("  " + v.styles.Muted.Render(item.Description))
		}
		b.WriteString("\n")
	}

	if v.summary != "" {
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render(v.summary))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[j/k] Navigate  [Enter] Select  [q] Quit"))
	return b.String()
}

// SetSnapshot updates the summary line from a published snapshot.
// A nil snapshot clears it.
func (v *View) SetSnapshot(snap *domain.Snapshot) {
	if snap == nil {
		v.summary = ""
		return
	}
	counts := make(map[domain.SourceType]int)
	for i := range snap.Records {
		counts[snap.Records[i].SourceType]++
	}
	parts := make([]string, 0, len(domain.AllSourceTypes()))
	for _, t := range domain.AllSourceTypes() {
		parts = append(parts, fmt.Sprintf("%d %s", counts[t], t))
	}
	v.summary = fmt.Sprintf("Index: %s · %d tags", strings.Join(parts, ", "), len(snap.Tags))
}

// Summary returns the snapshot summary line.
func (v *View) Summary() string {
	return v.summary
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Selected returns the highlighted item index.
func (v *View) Selected() int {
	return v.selected
}

// Items returns the menu items in display order.
func (v *View) Items() []Item {
	return v.items
}
