package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/sercha-site/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/sercha-site/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/sercha-site/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/sercha-site/internal/adapters/driving/tui/views/content"
	"github.com/custodia-labs/sercha-site/internal/adapters/driving/tui/views/menu"
	"github.com/custodia-labs/sercha-site/internal/adapters/driving/tui/views/records"
	"github.com/custodia-labs/sercha-site/internal/adapters/driving/tui/views/search"
	"github.com/custodia-labs/sercha-site/internal/adapters/driving/tui/views/sources"
	"github.com/custodia-labs/sercha-site/internal/adapters/driving/tui/views/tags"
	"github.com/custodia-labs/sercha-site/internal/core/domain"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// keymap holds the bindings shared by the views and the help screen.
	keymap *keymap.KeyMap

	// menuView is the main navigation menu.
	menuView *menu.View

	// searchView is the styled search view component.
	searchView *search.View

	// tagsView lists tag counts.
	tagsView *tags.View

	// sourcesView shows per-source load reports.
	sourcesView *sources.View

	// recordsView lists the records of one source or tag.
	recordsView *records.View

	// contentView shows a single record.
	contentView *content.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()
	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		keymap:      km,
		menuView:    menu.NewView(s),
		searchView:  search.NewView(s, km, ports.Search),
		tagsView:    tags.NewView(s, ports.Tags),
		sourcesView: sources.NewView(s, ports.Index),
		recordsView: records.NewView(s, ports.Content, ports.Tags),
		contentView: content.NewView(s, ports.Content),
		currentView: messages.ViewMenu, // Start with menu
	}, nil
}

// WithContext sets the context for the app and every view that calls a service.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.searchView.WithContext(ctx)
	a.tagsView.WithContext(ctx)
	a.sourcesView.WithContext(ctx)
	a.recordsView.WithContext(ctx)
	a.contentView.WithContext(ctx)
	return a
}

// WithSearchLimit sets the maximum number of results a search returns.
func (a *App) WithSearchLimit(limit int) *App {
	a.searchView.WithLimit(limit)
	return a
}

// WithMaxQueryLength bounds the search query, in runes.
func (a *App) WithMaxQueryLength(n int) *App {
	a.searchView.WithMaxQueryLength(n)
	return a
}

// WithHighlightMarkers sets the markers the search service wraps matches in.
func (a *App) WithHighlightMarkers(pre, post string) *App {
	a.searchView.WithMarkers(pre, post)
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("sercha-site"),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
//
//nolint:gocognit,gocyclo,funlen // central message handler requires complexity
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		// Forward key messages to active view
		switch a.currentView {
		case messages.ViewMenu:
			a.menuView, cmd = a.menuView.Update(msg)
		case messages.ViewSearch:
			a.searchView, cmd = a.searchView.Update(msg)
		case messages.ViewTags:
			a.tagsView, cmd = a.tagsView.Update(msg)
		case messages.ViewSources:
			a.sourcesView, cmd = a.sourcesView.Update(msg)
		case messages.ViewRecords:
			a.recordsView, cmd = a.recordsView.Update(msg)
		case messages.ViewContent:
			a.contentView, cmd = a.contentView.Update(msg)
		case messages.ViewHelp:
			// Esc from help goes to menu
			if msg.Type == tea.KeyEsc {
				a.currentView = messages.ViewMenu
			}
		}
		return a, cmd

	case messages.ViewChanged:
		prev := a.currentView
		a.currentView = msg.View
		// Views entered from the menu start fresh; views returned to keep their state.
		if prev != messages.ViewMenu {
			return a, nil
		}
		switch msg.View {
		case messages.ViewSearch:
			a.searchView.Reset()
			return a, a.searchView.Init()
		case messages.ViewTags:
			return a, a.tagsView.Init()
		case messages.ViewSources:
			return a, a.sourcesView.Init()
		case messages.ViewMenu, messages.ViewHelp, messages.ViewRecords, messages.ViewContent:
			// No initialisation needed
		}
		return a, nil

	case messages.SearchCompleted:
		a.searchView, cmd = a.searchView.Update(msg)
		a.err = a.searchView.Err()
		return a, cmd

	case messages.TagsLoaded:
		a.tagsView, cmd = a.tagsView.Update(msg)
		return a, cmd

	case messages.SnapshotLoaded:
		if msg.Err == nil {
			a.menuView.SetSnapshot(msg.Snapshot)
		}
		a.sourcesView, cmd = a.sourcesView.Update(msg)
		return a, cmd

	case messages.ReindexCompleted:
		if msg.Err == nil {
			a.menuView.SetSnapshot(msg.Snapshot)
		}
		a.sourcesView, cmd = a.sourcesView.Update(msg)
		return a, cmd

	case messages.TagSelected:
		a.currentView = messages.ViewRecords
		return a, a.recordsView.ShowTag(msg.Tag)

	case messages.SourceSelected:
		a.currentView = messages.ViewRecords
		return a, a.recordsView.ShowSource(msg.SourceType)

	case messages.RecordsLoaded:
		a.recordsView, cmd = a.recordsView.Update(msg)
		return a, cmd

	case messages.RecordSelected:
		a.currentView = messages.ViewContent
		return a, a.contentView.Open(msg.Key, msg.From)

	case messages.ContentLoaded:
		a.contentView, cmd = a.contentView.Update(msg)
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		// Forward to current view
		switch a.currentView {
		case messages.ViewSearch:
			a.searchView, cmd = a.searchView.Update(msg)
		case messages.ViewTags:
			a.tagsView, cmd = a.tagsView.Update(msg)
		case messages.ViewRecords:
			a.recordsView, cmd = a.recordsView.Update(msg)
		case messages.ViewContent:
			a.contentView, cmd = a.contentView.Update(msg)
		case messages.ViewMenu, messages.ViewSources, messages.ViewHelp:
			// Other views don't handle error messages
		}
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	return a, nil
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewSearch:
		return a.searchView.View()
	case messages.ViewTags:
		return a.tagsView.View()
	case messages.ViewSources:
		return a.sourcesView.View()
	case messages.ViewRecords:
		return a.recordsView.View()
	case messages.ViewContent:
		return a.contentView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.menuView.View()
	}
}

// viewHelp renders the help screen from the key map.
func (a *App) viewHelp() string {
	var b strings.Builder
	b.WriteString(a.styles.Title.Render("Help"))
	b.WriteString("\n")
	for _, section := range a.keymap.Sections() {
		b.WriteString("\n")
		b.WriteString(a.styles.Subtitle.Render(section.Title + ":"))
		b.WriteString("\n")
		for _, binding := range section.Bindings {
			h := binding.Help()
			fmt.Fprintf(&b, "  %-10s %s\n", h.Key, h.Desc)
		}
	}
	b.WriteString("\n")
	b.WriteString(a.styles.Help.Render("[esc] back to menu"))
	return b.String()
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// Query returns the current search query.
func (a *App) Query() string {
	return a.searchView.Query()
}

// Results returns the current search results.
func (a *App) Results() []domain.SearchResult {
	return a.searchView.Results()
}

// SelectedIndex returns the currently selected result index.
func (a *App) SelectedIndex() int {
	return a.searchView.SelectedIndex()
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions on the app and every view.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.menuView.SetDimensions(width, height)
	a.searchView.SetDimensions(width, height)
	a.tagsView.SetDimensions(width, height)
	a.sourcesView.SetDimensions(width, height)
	a.recordsView.SetDimensions(width, height)
	a.contentView.SetDimensions(width, height)
}
