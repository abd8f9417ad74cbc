package domain

import "time"

// Metadata is the typed front matter of one content file.
// The set of variants is sealed: BlogMeta, ReleaseMeta and DocMeta.
type Metadata interface {
	// Source returns the source type this variant belongs to.
	Source() SourceType

	// Common returns the fields shared by every variant.
	Common() CommonMeta

	sealed()
}

// CommonMeta holds front matter fields every source understands.
type CommonMeta struct {
	Title       string
	Description string
	Tags        []string
	Category    string
	PublishedAt time.Time
	UpdatedAt   time.Time
	Draft       bool
	Featured    bool
	Author      string
}

// BlogMeta is the front matter of a blog post.
type BlogMeta struct {
	CommonMeta

	// Summary is the legacy name for the description.
	Summary string
}

// ReleaseMeta is the front matter of a release note.
type ReleaseMeta struct {
	CommonMeta

	// Version is the released version, e.g. "1.4.0".
	Version string
}

// DocMeta is the front matter of a documentation page.
type DocMeta struct {
	CommonMeta

	// Section is the docs section. Used as category when Category is empty.
	Section string

	// Weight orders pages inside a section. Presentation only.
	Weight int
}

// Source implements Metadata.
func (m BlogMeta) Source() SourceType { return SourceBlog }

// Common implements Metadata.
func (m BlogMeta) Common() CommonMeta { return m.CommonMeta }

func (BlogMeta) sealed() {}

// Source implements Metadata.
func (m ReleaseMeta) Source() SourceType { return SourceRelease }

// Common implements Metadata.
func (m ReleaseMeta) Common() CommonMeta { return m.CommonMeta }

func (ReleaseMeta) sealed() {}

// Source implements Metadata.
func (m DocMeta) Source() SourceType { return SourceDoc }

// Common implements Metadata.
func (m DocMeta) Common() CommonMeta { return m.CommonMeta }

func (DocMeta) sealed() {}

// ParsedFile is the loader's output for a single non-draft file.
type ParsedFile struct {
	// Slug is derived from the path relative to the source root.
	Slug string

	// Path is the file path on disk.
	Path string

	// Meta is the typed front matter.
	Meta Metadata

	// Body is the raw content after the front matter block.
	Body string

	// ModTime is the file modification time.
	ModTime time.Time

	// LoadedAt is when the loader read the file; the date fallback.
	LoadedAt time.Time
}

// SourceType returns the source type of the file's metadata.
func (f *ParsedFile) SourceType() SourceType {
	if f.Meta == nil {
		return ""
	}
	return f.Meta.Source()
}
