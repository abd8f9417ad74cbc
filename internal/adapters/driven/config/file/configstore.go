package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/sercha-site/internal/core/domain"
	"github.com/custodia-labs/sercha-site/internal/core/ports/driven"
)

// DefaultFileName is the config file looked up in the working directory.
const DefaultFileName = "sercha-site.toml"

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// ConfigStore is a file-based implementation of driven.ConfigStore using TOML.
// Values missing from the file keep their defaults. A .env file next to the
// config file and SERCHA_SITE_* variables are applied on top.
type ConfigStore struct {
	mu       sync.RWMutex
	filePath string
	envFile  string
	lookup   func(string) (string, bool)
}

// Option configures a ConfigStore.
type Option func(*ConfigStore)

// WithEnvFile sets the .env file to load. An empty path disables it.
func WithEnvFile(path string) Option {
	return func(s *ConfigStore) {
		s.envFile = path
	}
}

// WithLookupEnv replaces os.LookupEnv for environment overrides.
func WithLookupEnv(lookup func(string) (string, bool)) Option {
	return func(s *ConfigStore) {
		s.lookup = lookup
	}
}

// NewConfigStore creates a config store for path.
// If path is empty, defaults to ./sercha-site.toml.
func NewConfigStore(path string, opts ...Option) *ConfigStore {
	if path == "" {
		path = DefaultFileName
	}
	s := &ConfigStore{
		filePath: path,
		envFile:  filepath.Join(filepath.Dir(path), ".env"),
		lookup:   os.LookupEnv,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads the config file, falling back to defaults when it does not
// exist, then applies environment overrides and validates the result.
func (s *ConfigStore) Load() (domain.Settings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	settings, err := s.readFile()
	if err != nil {
		return domain.Settings{}, err
	}

	if err := loadDotEnv(s.envFile); err != nil {
		return domain.Settings{}, err
	}
	if err := applyEnv(&settings, s.lookup); err != nil {
		return domain.Settings{}, err
	}

	if err := settings.Validate(); err != nil {
		return domain.Settings{}, err
	}
	return settings, nil
}

// readFile decodes the config file over the defaults (caller must hold lock).
func (s *ConfigStore) readFile() (domain.Settings, error) {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			// No config file yet - run on defaults
			return domain.DefaultSettings(), nil
		}
		return domain.Settings{}, err
	}

	cfg := fromSettings(domain.DefaultSettings())
	defaultSources := cfg.Content.Sources
	cfg.Content.Sources = nil

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return domain.Settings{}, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, s.filePath, err)
	}
	if cfg.Content.Sources == nil {
		cfg.Content.Sources = defaultSources
	}

	return cfg.toSettings()
}

// Save validates settings and writes them to the config file.
func (s *ConfigStore) Save(settings domain.Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := toml.Marshal(fromSettings(settings))
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.filePath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(s.filePath, data, 0644)
}

// Init writes the default configuration. It refuses to overwrite an
// existing file unless force is set.
func (s *ConfigStore) Init(force bool) error {
	if !force && s.Exists() {
		return fmt.Errorf("%w: %s", ErrConfigExists, s.filePath)
	}
	return s.Save(domain.DefaultSettings())
}

// Exists reports whether the config file is present.
func (s *ConfigStore) Exists() bool {
	_, err := os.Stat(s.filePath)
	return err == nil
}

// Path returns the configuration file path.
func (s *ConfigStore) Path() string {
	return s.filePath
}
