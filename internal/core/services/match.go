package services

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Case-insensitive matching that reports byte offsets into the original text,
// so highlights can be inserted without changing its case.

// equalFoldRune reports whether a and b are equal under simple Unicode case folding.
func equalFoldRune(a, b rune) bool {
	if a == b {
		return true
	}
	for r := unicode.SimpleFold(a); r != a; r = unicode.SimpleFold(r) {
		if r == b {
			return true
		}
	}
	return false
}

// hasPrefixFold reports whether s starts with prefix, ignoring case, and
// returns the byte length of the matched part of s.
func hasPrefixFold(s, prefix string) (int, bool) {
	n := 0
	for _, pr := range prefix {
		if n >= len(s) {
			return 0, false
		}
		sr, size := utf8.DecodeRuneInString(s[n:])
		if !equalFoldRune(sr, pr) {
			return 0, false
		}
		n += size
	}
	return n, true
}

// indexFold returns the byte span of the first case-insensitive match of
// substr in s at or after from, or (-1, -1).
func indexFold(s, substr string, from int) (int, int) {
	if substr == "" {
		return -1, -1
	}
	for i := from; i < len(s); {
		if n, ok := hasPrefixFold(s[i:], substr); ok {
			return i, i + n
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return -1, -1
}

// containsFold reports whether substr occurs in s, ignoring case.
func containsFold(s, substr string) bool {
	start, _ := indexFold(s, substr, 0)
	return start >= 0
}

// countFold counts non-overlapping case-insensitive occurrences of substr in s.
func countFold(s, substr string) int {
	count := 0
	for from := 0; ; {
		start, end := indexFold(s, substr, from)
		if start < 0 {
			return count
		}
		count++
		from = end
	}
}

// highlightFold wraps every non-overlapping match of substr in s with pre and post.
func highlightFold(s, substr, pre, post string) string {
	var b strings.Builder
	last := 0
	for from := 0; ; {
		start, end := indexFold(s, substr, from)
		if start < 0 {
			break
		}
		b.WriteString(s[last:start])
		b.WriteString(pre)
		b.WriteString(s[start:end])
		b.WriteString(post)
		last, from = end, end
	}
	b.WriteString(s[last:])
	return b.String()
}
