package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/sercha-site/internal/adapters/driving/tui"
)

// ErrNotATerminal is returned when the TUI is started without an interactive terminal.
var ErrNotATerminal = errors.New("tui requires an interactive terminal")

// isTerminal reports whether stdin and stdout are terminals. Tests replace it.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for sercha-site.

The TUI searches across blog posts, release notes and docs, browses tags
and sources, and shows records with keyboard navigation.

Controls:
  ↑/k, ↓/j - Navigate
  Enter    - Search / Open
  Tab      - Cycle source filter
  r        - Rebuild the index (sources view)
  Esc      - Back
  q        - Quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	if !isTerminal() {
		return ErrNotATerminal
	}

	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	ctx := cmd.Context()
	if err := ensureIndex(ctx); err != nil {
		return err
	}

	// Keep the index fresh while the TUI is open
	if refresher != nil {
		go func() {
			if err := refresher.Start(ctx); err != nil {
				fmt.Fprintf(os.Stderr, "refresher stopped: %v\n", err)
			}
		}()
		defer func() {
			if err := refresher.Stop(); err != nil {
				fmt.Fprintf(os.Stderr, "refresher stop error: %v\n", err)
			}
		}()
	}

	app, err := newTUIApp()
	if err != nil {
		return err
	}
	app.WithContext(ctx)

	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}

// newTUIApp builds the TUI from the configured services.
func newTUIApp() (*tui.App, error) {
	ports := tui.NewPorts(searchService, contentService, tagService, indexService)
	app, err := tui.NewApp(ports)
	if err != nil {
		return nil, fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithSearchLimit(settings.Search.DefaultResults).
		WithMaxQueryLength(settings.Search.MaxQueryLength).
		WithHighlightMarkers(settings.Search.HighlightPre, settings.Search.HighlightPost)
	return app, nil
}
