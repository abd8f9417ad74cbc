package domain

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// Settings is the complete application configuration.
type Settings struct {
	Site    SiteSettings
	Content ContentSettings
	Search  SearchConfig
	Server  ServerSettings
	Refresh RefreshSettings

	// Verbose enables debug logging.
	Verbose bool
}

// SiteSettings controls how record URLs are built.
type SiteSettings struct {
	// BaseURL is the absolute site root, without trailing slash.
	BaseURL string

	// BlogPath, ReleasePath and DocPath are the route prefixes per source.
	BlogPath    string
	ReleasePath string
	DocPath     string

	// TagPath is the route prefix for tag pages.
	TagPath string
}

// ContentSettings locates the content sources.
type ContentSettings struct {
	// Root is prepended to relative source directories.
	Root string

	// Sources is one entry per source type.
	Sources []SourceConfig
}

// ServerSettings configures the HTTP search endpoint.
type ServerSettings struct {
	// Addr is the listen address.
	Addr string

	// RateLimit is requests per second allowed per client IP. Zero disables limiting.
	RateLimit float64

	// RateBurst is the burst size for the rate limiter.
	RateBurst int

	// ReadHeaderTimeout bounds slow clients.
	ReadHeaderTimeout time.Duration
}

// RefreshSettings controls when the snapshot is rebuilt.
type RefreshSettings struct {
	// Interval rebuilds periodically. Zero disables periodic rebuilds.
	Interval time.Duration

	// Watch rebuilds when content files change.
	Watch bool

	// Debounce coalesces bursts of file events into one rebuild.
	Debounce time.Duration
}

// DefaultSettings returns settings that work against ./content.
func DefaultSettings() Settings {
	return Settings{
		Site: SiteSettings{
			BaseURL:     "http://localhost:8080",
			BlogPath:    "/blog",
			ReleasePath: "/releases",
			DocPath:     "/docs",
			TagPath:     "/tags",
		},
		Content: ContentSettings{
			Root: "content",
			Sources: []SourceConfig{
				{Type: SourceBlog, Root: "blog", Extensions: DefaultExtensions()},
				{Type: SourceRelease, Root: "releases", Extensions: DefaultExtensions()},
				{Type: SourceDoc, Root: "docs", Extensions: DefaultExtensions()},
			},
		},
		Search: DefaultSearchConfig(),
		Server: ServerSettings{
			Addr:              ":8080",
			RateLimit:         10,
			RateBurst:         20,
			ReadHeaderTimeout: 10 * time.Second,
		},
		Refresh: RefreshSettings{
			Interval: 0,
			Watch:    false,
			Debounce: 500 * time.Millisecond,
		},
	}
}

// RoutePrefix returns the URL path prefix for a source type.
func (s SiteSettings) RoutePrefix(t SourceType) string {
	switch t {
	case SourceBlog:
		return s.BlogPath
	case SourceRelease:
		return s.ReleasePath
	case SourceDoc:
		return s.DocPath
	default:
		return ""
	}
}

// ResolvedSources returns the source configs with Root joined onto relative directories.
func (c ContentSettings) ResolvedSources() []SourceConfig {
	out := make([]SourceConfig, 0, len(c.Sources))
	for _, src := range c.Sources {
		if c.Root != "" && !filepath.IsAbs(src.Root) {
			src.Root = filepath.Join(c.Root, src.Root)
		}
		out = append(out, src)
	}
	return out
}

// Validate checks the settings for values the engine cannot work with.
func (s Settings) Validate() error {
	if strings.TrimSpace(s.Site.BaseURL) == "" {
		return fmt.Errorf("%w: site.base_url is required", ErrInvalidInput)
	}
	seen := make(map[SourceType]bool)
	for _, src := range s.Content.Sources {
		if !src.Type.IsValid() {
			return fmt.Errorf("%w: content source type %q", ErrUnsupportedType, src.Type)
		}
		if seen[src.Type] {
			return fmt.Errorf("%w: content source %q configured twice", ErrInvalidInput, src.Type)
		}
		seen[src.Type] = true
		if strings.TrimSpace(src.Root) == "" {
			return fmt.Errorf("%w: content source %q has no directory", ErrInvalidInput, src.Type)
		}
	}
	if s.Search.MaxQueryLength <= 0 {
		return fmt.Errorf("%w: search.max_query_length must be positive", ErrInvalidInput)
	}
	if s.Search.MaxResults <= 0 || s.Search.DefaultResults <= 0 {
		return fmt.Errorf("%w: search result limits must be positive", ErrInvalidInput)
	}
	if s.Search.DefaultResults > s.Search.MaxResults {
		return fmt.Errorf("%w: search.default_results exceeds search.max_results", ErrInvalidInput)
	}
	if s.Search.ExcerptRadius < 0 {
		return fmt.Errorf("%w: search.excerpt_radius must not be negative", ErrInvalidInput)
	}
	if s.Server.RateLimit < 0 || s.Server.RateBurst < 0 {
		return fmt.Errorf("%w: server rate limits must not be negative", ErrInvalidInput)
	}
	return nil
}
