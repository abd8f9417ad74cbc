// Package keymap defines keybindings for the TUI and the help screen built from them.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap holds every binding the views react to.
type KeyMap struct {
	Quit key.Binding
	Help key.Binding
	Back key.Binding

	Up     key.Binding
	Down   key.Binding
	Select key.Binding

	// Search submits the query; NewSearch returns from results to the input.
	Search    key.Binding
	NewSearch key.Binding
	Open      key.Binding

	// Filter cycles the source filter: all, blog, release, doc.
	Filter key.Binding

	// Reindex rebuilds the index from the sources view.
	Reindex key.Binding

	// PageUp, PageDown, Top and Bottom scroll a record.
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding
}

// Section is a titled group of bindings on the help screen.
type Section struct {
	Title    string
	Bindings []key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Select:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Search:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "search")),
		NewSearch: key.NewBinding(key.WithKeys("n", "/"), key.WithHelp("n", "new search")),
		Open:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Filter:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "source")),
		Reindex:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reindex")),
		PageUp:    key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("pgup", "page up")),
		PageDown:  key.NewBinding(key.WithKeys("pgdown", "ctrl+d"), key.WithHelp("pgdn", "page down")),
		Top:       key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "top")),
		Bottom:    key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "bottom")),
	}
}

// ShortHelp returns the hints shown while typing a query.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Filter, k.Back}
}

// ResultsHelp returns the hints shown while browsing results.
func (k *KeyMap) ResultsHelp() []key.Binding {
	return []key.Binding{k.NewSearch, k.Up, k.Open, k.Back}
}

// Sections returns the help screen, one section per view. Shared bindings
// are relabelled with what they do in that view.
func (k *KeyMap) Sections() []Section {
	return []Section{
		{"Navigation", []key.Binding{k.Up, k.Down, k.Back, k.Help, relabel(k.Quit, "quit (ctrl+c anywhere)")}},
		{"Search", []key.Binding{
			relabel(k.Filter, "Cycle source filter (all, blog, release, doc)"),
			k.Search,
			relabel(k.NewSearch, "new search (n or /)"),
			relabel(k.Open, "open record"),
		}},
		{"Tags", []key.Binding{relabel(k.Filter, "Cycle source filter"), relabel(k.Select, "records with tag")}},
		{"Sources", []key.Binding{relabel(k.Select, "records of source"), relabel(k.Reindex, "rebuild the index")}},
		{"Record", []key.Binding{k.PageUp, k.PageDown, k.Top, k.Bottom}},
	}
}

// relabel copies b with a different help description.
func relabel(b key.Binding, desc string) key.Binding {
	return key.NewBinding(key.WithKeys(b.Keys()...), key.WithHelp(b.Help().Key, desc))
}
