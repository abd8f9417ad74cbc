package cli

import (
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/sercha-site/internal/core/domain"
	"github.com/custodia-labs/sercha-site/internal/core/ports/driving"
)

var (
	tagsSource     string
	tagsCategory   string
	tagsByCategory bool
)

var tagsCmd = &cobra.Command{
	Use:   "tags [tag]",
	Short: "Show tag counts, or the records carrying a tag",
	Long: `Without arguments, prints every tag with its total count and the count
per source, most used first.

With a tag argument, lists the records carrying that tag.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTags,
}

func init() {
	tagsCmd.Flags().StringVarP(&tagsSource, "source", "s", "", "count only one source type")
	tagsCmd.Flags().StringVar(&tagsCategory, "category", "", "count only one category")
	tagsCmd.Flags().BoolVar(&tagsByCategory, "by-category", false, "group counts by category")
	rootCmd.AddCommand(tagsCmd)
}

func runTags(cmd *cobra.Command, args []string) error {
	if tagService == nil {
		return errors.New("tag service not configured")
	}

	ctx := cmd.Context()
	if err := ensureIndex(ctx); err != nil {
		return err
	}

	if len(args) == 1 {
		records, err := tagService.Tagged(ctx, args[0])
		if err != nil {
			return fmt.Errorf("listing tagged records: %w", err)
		}
		printRecords(cmd, records)
		return nil
	}

	if tagsByCategory {
		groups, err := tagService.ByCategory(ctx)
		if err != nil {
			return fmt.Errorf("aggregating tags: %w", err)
		}
		categories := make([]string, 0, len(groups))
		for c := range groups {
			categories = append(categories, c)
		}
		sort.Strings(categories)
		for _, c := range categories {
			cmd.Printf("[%s]\n", c)
			printTags(cmd, groups[c])
			cmd.Println()
		}
		return nil
	}

	filter := driving.TagFilter{Category: tagsCategory}
	if tagsSource != "" {
		st, err := domain.ParseSourceType(tagsSource)
		if err != nil {
			return err
		}
		filter.SourceType = st
	}

	tags, err := tagService.Tags(ctx, filter)
	if err != nil {
		return fmt.Errorf("aggregating tags: %w", err)
	}
	if len(tags) == 0 {
		cmd.Println("No tags found.")
		return nil
	}
	printTags(cmd, tags)
	return nil
}

func printTags(cmd *cobra.Command, tags []domain.TagAggregate) {
	cmd.Printf("  %-24s %6s %6s %8s %6s\n", "TAG", "TOTAL", "BLOG", "RELEASES", "DOCS")
	for _, t := range tags {
		cmd.Printf("  %-24s %6d %6d %8d %6d\n", t.Tag, t.Count, t.BlogCount, t.ReleaseCount, t.DocCount)
	}
}
