// Command sercha-site loads, tags and searches product site content.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/sercha-site/internal/adapters/driven/config/file"
	"github.com/custodia-labs/sercha-site/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/sercha-site/internal/adapters/driving/cli"
	"github.com/custodia-labs/sercha-site/internal/connectors/filesystem"
	"github.com/custodia-labs/sercha-site/internal/core/services"
	"github.com/custodia-labs/sercha-site/internal/normalisers"
	"github.com/custodia-labs/sercha-site/internal/postprocessors"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.SetVersion(version)
	cli.SetConfigStoreFactory(func(path string) cli.ConfigStore {
		return file.NewConfigStore(path)
	})
	cli.SetInitializer(buildServices)

	if err := cli.Execute(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// buildServices loads configuration from path and wires every adapter.
func buildServices(path string) (*cli.Services, error) {
	settings, err := file.NewConfigStore(path).Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	sources := settings.Content.ResolvedSources()
	links := services.NewLinkBuilder(settings.Site)
	store := memory.NewSnapshotStore()

	collector := services.NewCollector(filesystem.New(), normalisers.NewDefaultRegistry(), sources)
	index := services.NewIndexService(collector, postprocessors.NewConfiguredStripPipeline(settings.Search), links, store)

	return &cli.Services{
		Settings:  settings,
		Search:    services.NewSearchService(store, settings.Search),
		Index:     index,
		Content:   services.NewContentService(store),
		Tags:      services.NewTagService(store),
		Sitemap:   services.NewSitemapService(store, links),
		Refresher: services.NewRefresher(index, filesystem.NewWatcher(), sources, settings.Refresh),
		RecordURL: links.RecordPath,
	}, nil
}
