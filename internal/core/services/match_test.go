package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqualFoldRune(t *testing.T) {
	assert.True(t, equalFoldRune('a', 'A'))
	assert.True(t, equalFoldRune('ß', 'ß'))
	assert.True(t, equalFoldRune('é', 'É'))
	assert.True(t, equalFoldRune('k', '\u212A')) // Kelvin sign
	assert.False(t, equalFoldRune('a', 'b'))
}

func TestIndexFold(t *testing.T) {
	tests := []struct {
		name      string
		s, substr string
		from      int
		start     int
		end       int
	}{
		{"ascii", "Hello World", "world", 0, 6, 11},
		{"at start", "Go go", "GO", 0, 0, 2},
		{"from offset", "Go go", "go", 1, 3, 5},
		{"multibyte prefix", "héllo wörld", "WÖRLD", 0, 7, 13},
		{"not found", "abc", "d", 0, -1, -1},
		{"empty needle", "abc", "", 0, -1, -1},
		{"needle longer than haystack", "ab", "abc", 0, -1, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := indexFold(tt.s, tt.substr, tt.from)
			assert.Equal(t, tt.start, start)
			assert.Equal(t, tt.end, end)
		})
	}
}

func TestContainsFold(t *testing.T) {
	assert.True(t, containsFold("Webhooks Guide", "HOOKS"))
	assert.False(t, containsFold("Webhooks Guide", "hooky"))
	assert.False(t, containsFold("", "a"))
}

func TestCountFold(t *testing.T) {
	assert.Equal(t, 3, countFold("Go go GO", "go"))
	assert.Equal(t, 1, countFold("aaa", "aa"))
	assert.Equal(t, 0, countFold("abc", "z"))
	assert.Equal(t, 0, countFold("abc", ""))
}

func TestHighlightFold(t *testing.T) {
	assert.Equal(t, "[Go] and [go]", highlightFold("Go and go", "go", "[", "]"))
	assert.Equal(t, "nothing", highlightFold("nothing", "zzz", "[", "]"))
	assert.Equal(t, "<b>Ünï</b>cödé", highlightFold("Ünïcödé", "üNÏ", "<b>", "</b>"))
}
