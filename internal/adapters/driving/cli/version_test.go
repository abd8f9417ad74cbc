package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCmd(t *testing.T) {
	assert.Equal(t, "version", versionCmd.Use)
	assert.Equal(t, "true", versionCmd.Annotations[skipInitAnnotation])

	tests := []struct {
		name    string
		version string
		want    string
	}{
		{"release build", "1.4.2", "sercha-site version 1.4.2\n"},
		{"default", "dev", "sercha-site version dev\n"},
		{"commit suffix", "1.4.2-3-gabc123", "sercha-site version 1.4.2-3-gabc123\n"},
	}

	original := version
	t.Cleanup(func() { version = original })

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SetVersion(tt.version)

			out, err := execute(t, "version")

			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}
