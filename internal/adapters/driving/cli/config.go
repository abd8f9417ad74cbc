package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var configInitForce bool

var configCmd = &cobra.Command{
	Use:         "config",
	Short:       "Manage the configuration file",
	Annotations: map[string]string{skipInitAnnotation: "true"},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	Long: `Writes sercha-site.toml with every setting at its default.

An existing file is kept unless --force is given.`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Long:  `Prints the configuration after defaults, the config file, .env and environment overrides.`,
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

func init() {
	configInitCmd.Flags().BoolVarP(&configInitForce, "force", "f", false, "overwrite an existing file")
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}

func openConfigStore() (ConfigStore, error) {
	if configStores == nil {
		return nil, errors.New("config store not configured")
	}
	return configStores(configPath), nil
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	store, err := openConfigStore()
	if err != nil {
		return err
	}
	if err := store.Init(configInitForce); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	cmd.Printf("Wrote %s\n", store.Path())
	return nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	store, err := openConfigStore()
	if err != nil {
		return err
	}
	s, err := store.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	cmd.Printf("Config file: %s\n\n", store.Path())

	cmd.Println("[site]")
	cmd.Printf("  base_url: %s\n", s.Site.BaseURL)
	cmd.Println()

	cmd.Println("[content]")
	cmd.Printf("  root: %s\n", s.Content.Root)
	for _, src := range s.Content.ResolvedSources() {
		cmd.Printf("  %-8s %s %v\n", src.Type, src.Root, src.Extensions)
	}
	cmd.Println()

	w := s.Search.Weights
	cmd.Println("[search]")
	cmd.Printf("  results: %d (max %d)\n", s.Search.DefaultResults, s.Search.MaxResults)
	cmd.Printf("  max_query_length: %d\n", s.Search.MaxQueryLength)
	cmd.Printf("  weights: title %d, exact %d, description %d, tag %d, category %d, body %d\n",
		w.TitleContains, w.TitleExact, w.Description, w.Tag, w.Category, w.BodyOccurrence)
	cmd.Println()

	cmd.Println("[server]")
	cmd.Printf("  addr: %s\n", s.Server.Addr)
	cmd.Printf("  rate_limit: %g/s (burst %d)\n", s.Server.RateLimit, s.Server.RateBurst)
	cmd.Println()

	cmd.Println("[refresh]")
	cmd.Printf("  interval: %s\n", s.Refresh.Interval)
	cmd.Printf("  watch: %t (debounce %s)\n", s.Refresh.Watch, s.Refresh.Debounce)
	return nil
}
