package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrQueryTooLong", ErrQueryTooLong},
		{"ErrUnsupportedType", ErrUnsupportedType},
		{"ErrSourceUnavailable", ErrSourceUnavailable},
		{"ErrParse", ErrParse},
		{"ErrMissingTitle", ErrMissingTitle},
		{"ErrIndexUnavailable", ErrIndexUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestErrQueryTooLong_WrapsInvalidInput(t *testing.T) {
	assert.True(t, errors.Is(ErrQueryTooLong, ErrInvalidInput))
	assert.Equal(t, "invalid input: query too long", ErrQueryTooLong.Error())
	assert.False(t, errors.Is(ErrInvalidInput, ErrQueryTooLong))
}

func TestErrSourceUnavailable(t *testing.T) {
	assert.Equal(t, "source unavailable", ErrSourceUnavailable.Error())
	assert.False(t, errors.Is(ErrSourceUnavailable, ErrParse))
}

func TestLoadWarning_Error(t *testing.T) {
	w := LoadWarning{Path: "blog/bad.md", Err: ErrParse}

	assert.Equal(t, "blog/bad.md: parse error", w.Error())
	assert.ErrorIs(t, w, ErrParse)
}
