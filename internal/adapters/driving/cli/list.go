package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/sercha-site/internal/core/domain"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list [source]",
	Short: "List published records",
	Long: `Lists published records, most recent first.

With a source argument (blog, release, doc) only that source is listed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output records as JSON")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	if contentService == nil {
		return errors.New("content service not configured")
	}

	var sourceType domain.SourceType
	if len(args) > 0 {
		st, err := domain.ParseSourceType(args[0])
		if err != nil {
			return err
		}
		sourceType = st
	}

	ctx := cmd.Context()
	if err := ensureIndex(ctx); err != nil {
		return err
	}

	records, err := contentService.List(ctx, sourceType)
	if err != nil {
		return fmt.Errorf("listing records: %w", err)
	}

	if listJSON {
		data, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal records: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	printRecords(cmd, records)
	return nil
}

// printRecords writes one line per record.
func printRecords(cmd *cobra.Command, records []domain.ContentRecord) {
	if len(records) == 0 {
		cmd.Println("No records found.")
		return
	}

	for i := range records {
		rec := &records[i]
		date := "----------"
		if t := rec.LastModified(); !t.IsZero() {
			date = t.Format(time.DateOnly)
		}
		cmd.Printf("  %s  %-9s %s\n", date, "["+string(rec.SourceType)+"]", rec.Title)
		if link := linkFor(rec); link != "" {
			cmd.Printf("  %10s  %-9s %s\n", "", "", link)
		}
	}
	cmd.Printf("\n%d record(s)\n", len(records))
}
