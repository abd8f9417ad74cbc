package file

import (
	"fmt"
	"time"

	"github.com/custodia-labs/sercha-site/internal/core/domain"
)

// fileConfig mirrors the TOML layout of sercha-site.toml.
type fileConfig struct {
	Verbose bool          `toml:"verbose"`
	Site    siteConfig    `toml:"site"`
	Content contentConfig `toml:"content"`
	Search  searchConfig  `toml:"search"`
	Server  serverConfig  `toml:"server"`
	Refresh refreshConfig `toml:"refresh"`
}

type siteConfig struct {
	BaseURL     string `toml:"base_url"`
	BlogPath    string `toml:"blog_path"`
	ReleasePath string `toml:"release_path"`
	DocPath     string `toml:"doc_path"`
	TagPath     string `toml:"tag_path"`
}

type contentConfig struct {
	Root    string         `toml:"root"`
	Sources []sourceConfig `toml:"sources"`
}

type sourceConfig struct {
	Type       string   `toml:"type"`
	Dir        string   `toml:"dir"`
	Extensions []string `toml:"extensions,omitempty"`
}

type searchConfig struct {
	DefaultResults int           `toml:"default_results"`
	MaxResults     int           `toml:"max_results"`
	MaxQueryLength int           `toml:"max_query_length"`
	ExcerptRadius  int           `toml:"excerpt_radius"`
	HighlightPre   string        `toml:"highlight_pre"`
	HighlightPost  string        `toml:"highlight_post"`
	Weights        weightsConfig `toml:"weights"`
	Strip          stripConfig   `toml:"strip"`
}

type stripConfig struct {
	KeepImageAlt bool `toml:"keep_image_alt"`
}

type weightsConfig struct {
	TitleContains  int `toml:"title_contains"`
	TitleExact     int `toml:"title_exact"`
	Description    int `toml:"description"`
	Tag            int `toml:"tag"`
	Category       int `toml:"category"`
	BodyOccurrence int `toml:"body_occurrence"`
}

type serverConfig struct {
	Addr              string  `toml:"addr"`
	RateLimit         float64 `toml:"rate_limit"`
	RateBurst         int     `toml:"rate_burst"`
	ReadHeaderTimeout string  `toml:"read_header_timeout"`
}

// Durations are written as Go duration strings ("30s", "500ms").
type refreshConfig struct {
	Interval string `toml:"interval"`
	Watch    bool   `toml:"watch"`
	Debounce string `toml:"debounce"`
}

// fromSettings converts settings into their file form.
func fromSettings(s domain.Settings) fileConfig {
	sources := make([]sourceConfig, 0, len(s.Content.Sources))
	for _, src := range s.Content.Sources {
		sources = append(sources, sourceConfig{
			Type:       string(src.Type),
			Dir:        src.Root,
			Extensions: src.Extensions,
		})
	}

	w := s.Search.Weights
	return fileConfig{
		Verbose: s.Verbose,
		Site: siteConfig{
			BaseURL:     s.Site.BaseURL,
			BlogPath:    s.Site.BlogPath,
			ReleasePath: s.Site.ReleasePath,
			DocPath:     s.Site.DocPath,
			TagPath:     s.Site.TagPath,
		},
		Content: contentConfig{
			Root:    s.Content.Root,
			Sources: sources,
		},
		Search: searchConfig{
			DefaultResults: s.Search.DefaultResults,
			MaxResults:     s.Search.MaxResults,
			MaxQueryLength: s.Search.MaxQueryLength,
			ExcerptRadius:  s.Search.ExcerptRadius,
			HighlightPre:   s.Search.HighlightPre,
			HighlightPost:  s.Search.HighlightPost,
			Strip:          stripConfig{KeepImageAlt: s.Search.KeepImageAlt},
			Weights: weightsConfig{
				TitleContains:  w.TitleContains,
				TitleExact:     w.TitleExact,
				Description:    w.Description,
				Tag:            w.Tag,
				Category:       w.Category,
				BodyOccurrence: w.BodyOccurrence,
			},
		},
		Server: serverConfig{
			Addr:              s.Server.Addr,
			RateLimit:         s.Server.RateLimit,
			RateBurst:         s.Server.RateBurst,
			ReadHeaderTimeout: formatDuration(s.Server.ReadHeaderTimeout),
		},
		Refresh: refreshConfig{
			Interval: formatDuration(s.Refresh.Interval),
			Watch:    s.Refresh.Watch,
			Debounce: formatDuration(s.Refresh.Debounce),
		},
	}
}

// toSettings converts the file form back into settings.
func (c fileConfig) toSettings() (domain.Settings, error) {
	sources := make([]domain.SourceConfig, 0, len(c.Content.Sources))
	for i, src := range c.Content.Sources {
		t, err := domain.ParseSourceType(src.Type)
		if err != nil {
			return domain.Settings{}, fmt.Errorf("%w: content.sources[%d]: %v", ErrInvalidConfig, i, err)
		}
		exts := src.Extensions
		if len(exts) == 0 {
			exts = domain.DefaultExtensions()
		}
		sources = append(sources, domain.SourceConfig{Type: t, Root: src.Dir, Extensions: exts})
	}

	readHeader, err := parseDuration("server.read_header_timeout", c.Server.ReadHeaderTimeout)
	if err != nil {
		return domain.Settings{}, err
	}
	interval, err := parseDuration("refresh.interval", c.Refresh.Interval)
	if err != nil {
		return domain.Settings{}, err
	}
	debounce, err := parseDuration("refresh.debounce", c.Refresh.Debounce)
	if err != nil {
		return domain.Settings{}, err
	}

	w := c.Search.Weights
	return domain.Settings{
		Verbose: c.Verbose,
		Site: domain.SiteSettings{
			BaseURL:     c.Site.BaseURL,
			BlogPath:    c.Site.BlogPath,
			ReleasePath: c.Site.ReleasePath,
			DocPath:     c.Site.DocPath,
			TagPath:     c.Site.TagPath,
		},
		Content: domain.ContentSettings{
			Root:    c.Content.Root,
			Sources: sources,
		},
		Search: domain.SearchConfig{
			Weights: domain.ScoringWeights{
				TitleContains:  w.TitleContains,
				TitleExact:     w.TitleExact,
				Description:    w.Description,
				Tag:            w.Tag,
				Category:       w.Category,
				BodyOccurrence: w.BodyOccurrence,
			},
			DefaultResults: c.Search.DefaultResults,
			MaxResults:     c.Search.MaxResults,
			MaxQueryLength: c.Search.MaxQueryLength,
			ExcerptRadius:  c.Search.ExcerptRadius,
			HighlightPre:   c.Search.HighlightPre,
			HighlightPost:  c.Search.HighlightPost,
			KeepImageAlt:   c.Search.Strip.KeepImageAlt,
		},
		Server: domain.ServerSettings{
			Addr:              c.Server.Addr,
			RateLimit:         c.Server.RateLimit,
			RateBurst:         c.Server.RateBurst,
			ReadHeaderTimeout: readHeader,
		},
		Refresh: domain.RefreshSettings{
			Interval: interval,
			Watch:    c.Refresh.Watch,
			Debounce: debounce,
		},
	}, nil
}

func parseDuration(key, value string) (time.Duration, error) {
	if value == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, key, err)
	}
	return d, nil
}

func formatDuration(d time.Duration) string {
	if d == 0 {
		return "0s"
	}
	return d.String()
}
