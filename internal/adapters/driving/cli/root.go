// Package cli provides the sercha-site command line interface.
// It implements a driving adapter following hexagonal architecture principles.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/sercha-site/internal/core/domain"
	"github.com/custodia-labs/sercha-site/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-site/internal/core/ports/driving"
	"github.com/custodia-labs/sercha-site/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// skipInitAnnotation marks commands that run without loading content.
const skipInitAnnotation = "sercha-site/skip-init"

// Refresher rebuilds the index in the background while a long-running command is up.
type Refresher interface {
	Start(ctx context.Context) error
	Stop() error
}

// ConfigStore reads and writes the configuration file.
type ConfigStore interface {
	driven.ConfigStore

	// Init writes the default configuration, refusing to overwrite unless force is set.
	Init(force bool) error
}

// Services holds everything the commands need once configuration is loaded.
type Services struct {
	Settings  domain.Settings
	Search    driving.SearchService
	Index     driving.IndexService
	Content   driving.ContentService
	Tags      driving.TagService
	Sitemap   driving.SitemapService
	Refresher Refresher

	// RecordURL resolves the public path of a record.
	RecordURL func(rec *domain.ContentRecord) string
}

// Initializer builds the services from the config file at path.
type Initializer func(configPath string) (*Services, error)

var (
	configPath string
	verbose    bool

	initializer  Initializer
	configStores func(path string) ConfigStore

	settings       = domain.DefaultSettings()
	searchService  driving.SearchService
	indexService   driving.IndexService
	contentService driving.ContentService
	tagService     driving.TagService
	sitemapService driving.SitemapService
	refresher      Refresher
	recordURL      func(rec *domain.ContentRecord) string
)

var rootCmd = &cobra.Command{
	Use:   "sercha-site",
	Short: "Search and tag aggregation for a product site",
	Long: `sercha-site loads blog posts, release notes and documentation from
local content directories, aggregates their tags and ranks them for search.

It serves the results over HTTP, MCP and an interactive terminal UI.`,
	SilenceUsage:      true,
	PersistentPreRunE: initServices,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default ./sercha-site.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// SetInitializer sets the function that builds services before a command runs.
func SetInitializer(fn Initializer) {
	initializer = fn
}

// SetConfigStoreFactory sets how config commands open the config file.
func SetConfigStoreFactory(fn func(path string) ConfigStore) {
	configStores = fn
}

// SetServices installs services directly, bypassing the initializer.
func SetServices(s *Services) {
	if s == nil {
		return
	}
	settings = s.Settings
	searchService = s.Search
	indexService = s.Index
	contentService = s.Content
	tagService = s.Tags
	sitemapService = s.Sitemap
	refresher = s.Refresher
	recordURL = s.RecordURL
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// initServices loads configuration and builds services unless the command opts out.
func initServices(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)
	if skipsInit(cmd) || initializer == nil {
		return nil
	}

	svc, err := initializer(configPath)
	if err != nil {
		return fmt.Errorf("initialising: %w", err)
	}
	SetServices(svc)
	if settings.Verbose {
		logger.SetVerbose(true)
	}
	return nil
}

func skipsInit(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if _, ok := c.Annotations[skipInitAnnotation]; ok {
			return true
		}
	}
	return false
}

// ensureIndex publishes a first snapshot when none exists yet.
// One-shot commands start with an empty store.
func ensureIndex(ctx context.Context) error {
	if indexService == nil {
		return errors.New("index service not configured")
	}
	_, err := indexService.Current(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrIndexUnavailable) {
		return err
	}
	logger.Debug("no snapshot yet, building one")
	if _, err := indexService.Rebuild(ctx); err != nil {
		return fmt.Errorf("building index: %w", err)
	}
	return nil
}

// linkFor returns the public path of rec, or empty when no resolver is set.
func linkFor(rec *domain.ContentRecord) string {
	if recordURL == nil {
		return ""
	}
	return recordURL(rec)
}
