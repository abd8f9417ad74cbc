// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/sercha-site/internal/core/domain"
)

// SearchCompleted carries search results back to the model.
type SearchCompleted struct {
	Query   string
	Results []domain.SearchResult
	Err     error
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewSearch is the search input and results view.
	ViewSearch
	// ViewTags lists tag aggregates.
	ViewTags
	// ViewSources shows how each source loaded.
	ViewSources
	// ViewHelp is the help/keybindings view.
	ViewHelp
	// ViewRecords lists records for a tag or source.
	ViewRecords
	// ViewContent shows one record's body.
	ViewContent
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewSearch:
		return "search"
	case ViewTags:
		return "tags"
	case ViewSources:
		return "sources"
	case ViewHelp:
		return "help"
	case ViewRecords:
		return "records"
	case ViewContent:
		return "content"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}

// TagsLoaded carries tag aggregates for the tags view.
type TagsLoaded struct {
	Tags []domain.TagAggregate
	Err  error
}

// TagSelected signals a tag was chosen in the tags view.
type TagSelected struct {
	Tag string
}

// SourceSelected signals a source was chosen in the sources view.
type SourceSelected struct {
	SourceType domain.SourceType
}

// RecordsLoaded carries a record listing.
type RecordsLoaded struct {
	// Title describes what the records were filtered by.
	Title   string
	Records []domain.ContentRecord
	Err     error
}

// RecordSelected signals a record should be opened.
type RecordSelected struct {
	Key domain.RecordKey
	// From is the view to return to when the content view is closed.
	From ViewType
}

// ContentLoaded carries a full record for the content view.
type ContentLoaded struct {
	Record *domain.ContentRecord
	Err    error
}

// SnapshotLoaded carries the current snapshot for the sources view.
type SnapshotLoaded struct {
	Snapshot *domain.Snapshot
	Err      error
}

// ReindexCompleted signals a rebuild finished.
type ReindexCompleted struct {
	Snapshot *domain.Snapshot
	Err      error
}
