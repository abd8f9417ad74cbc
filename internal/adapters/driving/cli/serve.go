package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/custodia-labs/sercha-site/internal/adapters/driving/httpapi"
	"github.com/custodia-labs/sercha-site/internal/logger"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the search API over HTTP",
	Long: `Builds the index, then serves search, content, tags, sitemap.xml,
health and Prometheus metrics over HTTP.

The index is rebuilt in the background on the configured interval and,
when watching is enabled, whenever content files change. Readers keep the
previous snapshot until a rebuild finishes.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides server.addr)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if searchService == nil || indexService == nil {
		return errors.New("search service not configured")
	}

	cfg := settings.Server
	if serveAddr != "" {
		cfg.Addr = serveAddr
	}

	server, err := httpapi.NewServer(&httpapi.Ports{
		Search:    searchService,
		Index:     indexService,
		Content:   contentService,
		Tags:      tagService,
		Sitemap:   sitemapService,
		RecordURL: recordURL,
	}, cfg)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	logger.SetTimestamps(true)
	g, ctx := errgroup.WithContext(cmd.Context())

	// The server answers 503 from /healthz until the first snapshot lands.
	g.Go(func() error {
		return server.Run(ctx)
	})

	g.Go(func() error {
		snap, err := indexService.Rebuild(ctx)
		server.Metrics().RecordRebuild(snap, err)
		if err != nil {
			logger.Error("initial index build failed: %v", err)
		}
		return nil
	})

	if refresher != nil {
		g.Go(func() error {
			return refresher.Start(ctx)
		})
		g.Go(func() error {
			<-ctx.Done()
			return refresher.Stop()
		})
	}

	cmd.Printf("Serving on %s\n", cfg.Addr)
	return g.Wait()
}
