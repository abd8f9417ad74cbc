package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/sercha-site/internal/core/domain"
)

var (
	searchLimit   int
	searchJSON    bool
	searchSources []string
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search blog posts, release notes and docs",
	Long: `Ranks every published record against the query.

Matches are case-insensitive substrings. Titles weigh most, then
descriptions, tags and categories; each occurrence in the body adds a
little. Ties go to the most recently modified record.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 10, "maximum number of results")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	searchCmd.Flags().StringSliceVarP(&searchSources, "source", "s", nil, "restrict to source types (blog, release, doc)")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]

	if searchService == nil {
		return errors.New("search service not configured")
	}

	opts := domain.SearchOptions{Limit: searchLimit}
	for _, s := range searchSources {
		st, err := domain.ParseSourceType(s)
		if err != nil {
			return err
		}
		opts.SourceTypes = append(opts.SourceTypes, st)
	}

	ctx := cmd.Context()
	if err := ensureIndex(ctx); err != nil {
		return err
	}

	results, err := searchService.Search(ctx, query, opts)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputSearchJSON(cmd, results)
	}

	return outputSearchTable(cmd, results)
}

func outputSearchJSON(cmd *cobra.Command, results []domain.SearchResult) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchTable(cmd *cobra.Command, results []domain.SearchResult) error {
	if len(results) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	plain := markerStripper()

	cmd.Println("Results:")
	cmd.Println()
	for i := range results {
		// Format: [N] Title (score)
		entry := &results[i].Entry
		title := entry.Title
		if title == "" {
			title = entry.ID
		}

		cmd.Printf("  [%d] %s (%d)\n", i+1, title, results[i].Score)
		cmd.Printf("      [%s] %s\n", entry.SourceType, entry.URL)
		if len(results[i].MatchedTags) > 0 {
			cmd.Printf("      tags: %s\n", strings.Join(results[i].MatchedTags, ", "))
		}
		if results[i].Excerpt != "" {
			cmd.Printf("      %s\n", plain.Replace(results[i].Excerpt))
		}
		cmd.Println()
	}

	return nil
}

// markerStripper removes the configured highlight markers for plain terminal output.
func markerStripper() *strings.Replacer {
	var pairs []string
	if pre := settings.Search.HighlightPre; pre != "" {
		pairs = append(pairs, pre, "")
	}
	if post := settings.Search.HighlightPost; post != "" {
		pairs = append(pairs, post, "")
	}
	return strings.NewReplacer(pairs...)
}
