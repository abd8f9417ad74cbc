package menu

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sercha-site/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/sercha-site/internal/core/domain"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// viewChange runs cmd and returns the view it switches to.
func viewChange(t *testing.T, cmd tea.Cmd) messages.ViewType {
	t.Helper()
	require.NotNil(t, cmd)
	changed, ok := cmd().(messages.ViewChanged)
	require.True(t, ok)
	return changed.View
}

func TestNewView(t *testing.T) {
	view := NewView(nil)

	require.NotNil(t, view)
	assert.NotNil(t, view.styles)
	assert.Len(t, view.Items(), 5)
	assert.Equal(t, 0, view.Selected())
	assert.Nil(t, view.Init())
}

func TestDefaultItems(t *testing.T) {
	tests := []struct {
		label    string
		shortcut string
		view     messages.ViewType
		quit     bool
	}{
		{"Search", "/", messages.ViewSearch, false},
		{"Tags", "t", messages.ViewTags, false},
		{"Sources", "s", messages.ViewSources, false},
		{"Help", "?", messages.ViewHelp, false},
		{"Quit", "q", messages.ViewMenu, true},
	}

	items := DefaultItems()
	require.Len(t, items, len(tests))
	for i, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.label, items[i].Label)
			assert.Equal(t, tt.shortcut, items[i].Shortcut)
			assert.Equal(t, tt.quit, items[i].Quit)
			if !tt.quit {
				assert.Equal(t, tt.view, items[i].View)
			}
		})
	}
}

func TestView_Navigate(t *testing.T) {
	view := NewView(nil)

	view.Update(tea.KeyMsg{Type: tea.KeyDown})
	view.Update(runes("j"))
	assert.Equal(t, 2, view.Selected())

	for range 5 {
		view.Update(runes("j"))
	}
	assert.Equal(t, 4, view.Selected(), "stops at the last item")

	view.Update(tea.KeyMsg{Type: tea.KeyUp})
	view.Update(runes("k"))
	assert.Equal(t, 2, view.Selected())

	for range 5 {
		view.Update(runes("k"))
	}
	assert.Equal(t, 0, view.Selected(), "stops at the first item")
}

func TestView_EnterChangesView(t *testing.T) {
	view := NewView(nil)
	view.Update(tea.KeyMsg{Type: tea.KeyDown})

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, messages.ViewTags, viewChange(t, cmd))
}

func TestView_Shortcuts(t *testing.T) {
	tests := []struct {
		key      string
		view     messages.ViewType
		selected int
	}{
		{"/", messages.ViewSearch, 0},
		{"t", messages.ViewTags, 1},
		{"s", messages.ViewSources, 2},
		{"?", messages.ViewHelp, 3},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			view := NewView(nil)

			_, cmd := view.Update(runes(tt.key))

			assert.Equal(t, tt.view, viewChange(t, cmd))
			assert.Equal(t, tt.selected, view.Selected())
		})
	}
}

func TestView_Quit(t *testing.T) {
	view := NewView(nil)

	_, cmd := view.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	view.Update(runes("j"))
	view.Update(runes("j"))
	view.Update(runes("j"))
	view.Update(runes("j"))
	_, cmd = view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestView_UnknownKeyIgnored(t *testing.T) {
	view := NewView(nil)

	_, cmd := view.Update(runes("x"))

	assert.Nil(t, cmd)
	assert.Equal(t, 0, view.Selected())
}

func TestView_WindowSize(t *testing.T) {
	view := NewView(nil)
	assert.Equal(t, "Initialising...", view.View())

	view.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	assert.True(t, view.ready)
	assert.Equal(t, 100, view.width)
	assert.Equal(t, 40, view.height)
}

func TestView_Render(t *testing.T) {
	view := NewView(nil)
	view.SetDimensions(80, 24)

	out := view.View()

	assert.Contains(t, out, "Sercha Site")
	assert.Contains(t, out, "Product Site Search")
	assert.Contains(t, out, "[/] Search")
	assert.Contains(t, out, "Rank posts, releases and docs")
	assert.Contains(t, out, "[q] Quit")
	assert.NotContains(t, out, "Index:")
}

func TestView_SetSnapshot(t *testing.T) {
	view := NewView(nil)
	view.SetDimensions(80, 24)

	view.SetSnapshot(&domain.Snapshot{
		Records: []domain.ContentRecord{
			{ID: "a", SourceType: domain.SourceBlog},
			{ID: "b", SourceType: domain.SourceBlog},
			{ID: "c", SourceType: domain.SourceDoc},
		},
		Tags: []domain.TagAggregate{{Tag: "api"}},
	})

	assert.Equal(t, "Index: 2 blog, 0 release, 1 doc · 1 tags", view.Summary())
	assert.Contains(t, view.View(), "Index: 2 blog")

	view.SetSnapshot(nil)
	assert.Empty(t, view.Summary())
}
