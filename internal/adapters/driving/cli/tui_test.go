package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sercha-site/internal/adapters/driving/tui/messages"
)

func TestTUICmd_Exists(t *testing.T) {
	found := false
	for _, cmd := range rootCmd.Commands() {
		if cmd.Use == "tui" {
			found = true
			break
		}
	}
	assert.True(t, found, "tui command should be registered")
}

func TestTUICmd_Long(t *testing.T) {
	assert.Contains(t, tuiCmd.Long, "Tab")
	assert.Contains(t, tuiCmd.Long, "Rebuild the index")
}

func TestTUICmd_RequiresTerminal(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	original := isTerminal
	isTerminal = func() bool { return false }
	defer func() { isTerminal = original }()

	_, err := execute(t, "tui")

	assert.ErrorIs(t, err, ErrNotATerminal)
	assert.Zero(t, testIndex.RebuildCalls)
}

func TestNewTUIApp(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	require.NoError(t, ensureIndex(context.Background()))

	app, err := newTUIApp()

	require.NoError(t, err)
	require.NotNil(t, app)
	assert.Equal(t, messages.ViewMenu, app.CurrentView())
}

func TestNewTUIApp_MissingSearch(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	searchService = nil

	app, err := newTUIApp()

	require.Error(t, err)
	assert.Nil(t, app)
	assert.Contains(t, err.Error(), "failed to create TUI")
}
