package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sercha-site/internal/core/domain"
)

func TestConfigStore_LoadSave(t *testing.T) {
	store := NewConfigStore(domain.DefaultSettings())

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings().Site.BaseURL, loaded.Site.BaseURL)

	loaded.Site.BaseURL = "https://example.com"
	require.NoError(t, store.Save(loaded))
	assert.Equal(t, 1, store.Saves())

	reloaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", reloaded.Site.BaseURL)
	assert.Empty(t, store.Path())
}

func TestConfigStore_SaveInvalid(t *testing.T) {
	store := NewConfigStore(domain.DefaultSettings())

	bad := domain.DefaultSettings()
	bad.Site.BaseURL = ""

	err := store.Save(bad)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 0, store.Saves())
}
