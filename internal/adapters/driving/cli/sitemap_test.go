package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSitemapCmd_Stdout(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "sitemap")

	require.NoError(t, err)
	assert.Contains(t, out, "<urlset")
	assert.Contains(t, out, "<loc>http://localhost:8080/blog/launch-week</loc>")
	assert.Contains(t, out, "<loc>http://localhost:8080/docs/guides/webhooks</loc>")
	assert.Contains(t, out, "<loc>http://localhost:8080/tags/api</loc>")
}

func TestSitemapCmd_File(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	path := filepath.Join(t.TempDir(), "sitemap.xml")

	out, err := execute(t, "sitemap", "-o", path)

	require.NoError(t, err)
	assert.Contains(t, out, "URLs to "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "/releases/v1.2.0")
}

func TestSitemapCmd_UnwritablePath(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	path := filepath.Join(t.TempDir(), "missing", "sitemap.xml")

	_, err := execute(t, "sitemap", "--output", path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating sitemap file")
}

func TestSitemapCmd_NoService(t *testing.T) {
	resetServices()
	defer resetFlags()

	_, err := execute(t, "sitemap")

	assert.EqualError(t, err, "sitemap service not configured")
}
