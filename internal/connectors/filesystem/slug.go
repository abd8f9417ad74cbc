package filesystem

import (
	"net/url"
	"path/filepath"
	"strings"
	"unicode"
)

// SlugFromPath derives a record slug from a file path relative to root.
// Separators are normalised to "/" and the extension is stripped. In each
// segment, runs of characters other than letters, digits, ".", "_" and "~"
// become a single "-". A path with nothing usable left is percent-encoded.
func SlugFromPath(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = filepath.Base(path)
	}
	rel = filepath.ToSlash(rel)
	rel = strings.TrimSuffix(rel, filepath.Ext(rel))
	rel = strings.TrimPrefix(rel, "./")

	parts := strings.Split(rel, "/")
	segments := make([]string, 0, len(parts))
	for _, part := range parts {
		if seg := slugSegment(part); seg != "" {
			segments = append(segments, seg)
		}
	}
	if len(segments) == 0 {
		return url.PathEscape(rel)
	}
	return strings.Join(segments, "/")
}

func slugSegment(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '.' || r == '_' || r == '~' {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// isHidden checks if a path contains hidden files or directories.
// The special entries "." and ".." are not considered hidden.
func isHidden(path string) bool {
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if len(part) > 1 && part[0] == '.' && part != ".." {
			return true
		}
	}
	return false
}
