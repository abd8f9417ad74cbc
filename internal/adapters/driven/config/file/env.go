package file

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/custodia-labs/sercha-site/internal/core/domain"
)

// Environment variables that override file settings.
const (
	EnvAddr        = "SERCHA_SITE_ADDR"
	EnvBaseURL     = "SERCHA_SITE_BASE_URL"
	EnvContentRoot = "SERCHA_SITE_CONTENT_ROOT"
	EnvVerbose     = "SERCHA_SITE_VERBOSE"
)

// loadDotEnv loads variables from path into the process environment.
// Variables that are already set win. A missing file is not an error.
func loadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}
	return nil
}

// applyEnv overlays SERCHA_SITE_* variables onto settings.
func applyEnv(s *domain.Settings, lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvAddr); ok && v != "" {
		s.Server.Addr = v
	}
	if v, ok := lookup(EnvBaseURL); ok && v != "" {
		s.Site.BaseURL = v
	}
	if v, ok := lookup(EnvContentRoot); ok && v != "" {
		s.Content.Root = v
	}
	if v, ok := lookup(EnvVerbose); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, EnvVerbose, v, err)
		}
		s.Verbose = b
	}
	return nil
}
