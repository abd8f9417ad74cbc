package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/sercha-site/internal/adapters/driving/sitemap"
)

var sitemapOutput string

var sitemapCmd = &cobra.Command{
	Use:   "sitemap",
	Short: "Write sitemap.xml",
	Long: `Writes a sitemap with the site index, every record URL and every tag URL.

Sources that fail to load only drop their own entries.`,
	Args: cobra.NoArgs,
	RunE: runSitemap,
}

func init() {
	sitemapCmd.Flags().StringVarP(&sitemapOutput, "output", "o", "", "write to file instead of stdout")
	rootCmd.AddCommand(sitemapCmd)
}

func runSitemap(cmd *cobra.Command, _ []string) error {
	if sitemapService == nil {
		return errors.New("sitemap service not configured")
	}

	ctx := cmd.Context()
	if err := ensureIndex(ctx); err != nil {
		return err
	}

	entries, err := sitemapService.Entries(ctx)
	if err != nil {
		return fmt.Errorf("building sitemap: %w", err)
	}

	if sitemapOutput == "" {
		return sitemap.Render(cmd.OutOrStdout(), entries)
	}

	f, err := os.Create(sitemapOutput)
	if err != nil {
		return fmt.Errorf("creating sitemap file: %w", err)
	}
	if err := sitemap.Render(f, entries); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing sitemap: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing sitemap: %w", err)
	}
	cmd.Printf("Wrote %d URLs to %s\n", len(entries), sitemapOutput)
	return nil
}
