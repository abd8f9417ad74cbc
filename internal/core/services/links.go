package services

import (
	"net/url"
	"strings"

	"github.com/custodia-labs/sercha-site/internal/core/domain"
)

// LinkBuilder derives site paths and absolute URLs for records and tags.
type LinkBuilder struct {
	site domain.SiteSettings
}

// NewLinkBuilder creates a link builder for the site settings.
func NewLinkBuilder(site domain.SiteSettings) *LinkBuilder {
	return &LinkBuilder{site: site}
}

// RecordPath returns the site-relative path of a record, e.g. "/docs/guides/install".
func (l *LinkBuilder) RecordPath(rec *domain.ContentRecord) string {
	return joinPath(l.site.RoutePrefix(rec.SourceType), escapeSlug(rec.ID))
}

// SourcePath returns the listing page path for a source type, e.g. "/blog".
func (l *LinkBuilder) SourcePath(t domain.SourceType) string {
	return joinPath(l.site.RoutePrefix(t), "")
}

// TagPath returns the site-relative path of a tag page.
func (l *LinkBuilder) TagPath(tag string) string {
	return joinPath(l.site.TagPath, url.PathEscape(tag))
}

// Absolute prefixes a site-relative path with the base URL.
func (l *LinkBuilder) Absolute(path string) string {
	return strings.TrimRight(l.site.BaseURL, "/") + path
}

// escapeSlug escapes each slug segment, keeping the "/" separators.
func escapeSlug(slug string) string {
	parts := strings.Split(slug, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return strings.Join(parts, "/")
}

func joinPath(prefix, rest string) string {
	prefix = "/" + strings.Trim(prefix, "/")
	if rest == "" {
		return prefix
	}
	if prefix == "/" {
		return prefix + rest
	}
	return prefix + "/" + rest
}
