package domain

import "time"

// ChangeType represents the type of content file change.
type ChangeType int

const (
	// ChangeCreated indicates a new file.
	ChangeCreated ChangeType = iota

	// ChangeUpdated indicates a modified file.
	ChangeUpdated

	// ChangeDeleted indicates a removed or renamed file.
	ChangeDeleted
)

// String returns the string representation of the change type.
func (c ChangeType) String() string {
	switch c {
	case ChangeCreated:
		return "created"
	case ChangeUpdated:
		return "updated"
	case ChangeDeleted:
		return "deleted"
	default:
		return "unknown"
	}
}

// ChangeEvent is emitted by a watcher when a content file changes.
// The refresher rebuilds the whole snapshot; events only trigger it.
type ChangeEvent struct {
	// Type is the kind of change.
	Type ChangeType

	// SourceType is the source whose directory changed.
	SourceType SourceType

	// Path is the affected file.
	Path string

	// At is when the event was observed.
	At time.Time
}
