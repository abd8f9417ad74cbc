package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/sercha-site/internal/core/services"
)

var reindexWarnings bool

var reindexCmd = &cobra.Command{
	Use:   "reindex",
	Short: "Build the index and report how each source loaded",
	Long: `Loads every content source and builds a snapshot without serving it.

Prints records, drafts and skipped files per source. Exits non-zero when
a whole source could not be loaded, so it can gate a deploy.`,
	Args: cobra.NoArgs,
	RunE: runReindex,
}

func init() {
	reindexCmd.Flags().BoolVarP(&reindexWarnings, "warnings", "w", false, "list every skipped file")
	rootCmd.AddCommand(reindexCmd)
}

func runReindex(cmd *cobra.Command, _ []string) error {
	if indexService == nil {
		return errors.New("index service not configured")
	}

	start := time.Now()
	snap, err := indexService.Build(cmd.Context())
	if err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	cmd.Printf("Snapshot %s\n\n", snap.ID)
	for _, r := range snap.Reports {
		status := "ok"
		if r.Err != nil {
			status = "FAILED: " + r.Err.Error()
		}
		cmd.Printf("  %-8s %-28s %4d records %3d drafts %3d skipped  %s\n",
			r.SourceType, r.Root, r.Records, r.Drafts, len(r.Warnings), status)
		if reindexWarnings {
			for _, w := range r.Warnings {
				cmd.Printf("      %s\n", w.Error())
			}
		}
	}
	cmd.Printf("\n%d records, %d index entries, %d tags in %s\n",
		len(snap.Records), len(snap.Index), len(snap.Tags), time.Since(start).Round(time.Millisecond))

	if err := services.SourceErrors(snap); err != nil {
		return fmt.Errorf("some sources failed: %w", err)
	}
	return nil
}
