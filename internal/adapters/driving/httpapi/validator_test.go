package httpapi

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestValidator(t *testing.T) {
	v := newRequestValidator()

	tests := []struct {
		name    string
		req     any
		wantErr string
	}{
		{"valid search", &searchRequest{Query: "go", Limit: 5, Sources: []string{"blog", "docs"}}, ""},
		{"negative limit", &searchRequest{Limit: -1}, "limit: failed gte"},
		{"bad source", &searchRequest{Sources: []string{"wiki"}}, "source[0]: failed sourcetype"},
		{"empty content source", &contentRequest{}, ""},
		{"content source alias", &contentRequest{Source: "changelog"}, ""},
		{"bad content source", &contentRequest{Source: "nope"}, "source: failed sourcetype"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.req)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			var he *echo.HTTPError
			require.ErrorAs(t, err, &he)
			assert.Equal(t, http.StatusBadRequest, he.Code)
			assert.Contains(t, he.Message, tt.wantErr)
		})
	}
}
