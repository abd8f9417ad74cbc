package domain

import (
	"fmt"
	"strings"
)

// SourceType identifies where a content record came from.
// The set is closed: every consumer switches over AllSourceTypes.
type SourceType string

// Available source types.
const (
	// SourceBlog is a blog post.
	SourceBlog SourceType = "blog"

	// SourceRelease is a release note.
	SourceRelease SourceType = "release"

	// SourceDoc is a documentation page.
	SourceDoc SourceType = "doc"
)

// AllSourceTypes returns every source type in canonical order.
func AllSourceTypes() []SourceType {
	return []SourceType{SourceBlog, SourceRelease, SourceDoc}
}

// IsValid returns true if the source type is recognised.
func (t SourceType) IsValid() bool {
	switch t {
	case SourceBlog, SourceRelease, SourceDoc:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (t SourceType) String() string {
	return string(t)
}

// Description returns a human-readable name for the source type.
func (t SourceType) Description() string {
	switch t {
	case SourceBlog:
		return "Blog"
	case SourceRelease:
		return "Release Notes"
	case SourceDoc:
		return "Documentation"
	default:
		return "Unknown"
	}
}

// Order returns the position of the type in AllSourceTypes, or -1.
func (t SourceType) Order() int {
	for i, st := range AllSourceTypes() {
		if st == t {
			return i
		}
	}
	return -1
}

// ParseSourceType converts user input ("blog", "releases", "docs") to a SourceType.
func ParseSourceType(s string) (SourceType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "blog", "blogs", "post", "posts":
		return SourceBlog, nil
	case "release", "releases", "changelog":
		return SourceRelease, nil
	case "doc", "docs", "documentation":
		return SourceDoc, nil
	default:
		return "", fmt.Errorf("%w: source type %q", ErrUnsupportedType, s)
	}
}

// SourceConfig tells the loader where one source type lives on disk.
type SourceConfig struct {
	// Type is the source type produced by this directory.
	Type SourceType

	// Root is the directory to walk.
	Root string

	// Extensions are the accepted file extensions including the dot.
	// Empty means DefaultExtensions.
	Extensions []string
}

// DefaultExtensions are the content file extensions accepted when none are configured.
func DefaultExtensions() []string {
	return []string{".md", ".mdx"}
}

// AcceptsExtension reports whether ext (with leading dot) is accepted.
func (c SourceConfig) AcceptsExtension(ext string) bool {
	exts := c.Extensions
	if len(exts) == 0 {
		exts = DefaultExtensions()
	}
	for _, e := range exts {
		if strings.EqualFold(e, ext) {
			return true
		}
	}
	return false
}
