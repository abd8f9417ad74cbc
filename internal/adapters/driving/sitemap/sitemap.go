// Package sitemap renders sitemap entries as a sitemaps.org XML document.
package sitemap

import (
	"encoding/xml"
	"fmt"
	"io"
	"time"

	"github.com/custodia-labs/sercha-site/internal/core/domain"
)

// Namespace is the sitemaps.org schema namespace.
const Namespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// ContentType is the MIME type of a rendered sitemap.
const ContentType = "application/xml; charset=utf-8"

// URLSet is the root element of a sitemap.
type URLSet struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	URLs    []URL    `xml:"url"`
}

// URL is one sitemap location.
type URL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// Build converts entries into a URL set, keeping their order.
func Build(entries []domain.SitemapEntry) URLSet {
	set := URLSet{Xmlns: Namespace, URLs: make([]URL, 0, len(entries))}
	for _, e := range entries {
		u := URL{Loc: e.Loc}
		if !e.LastModified.IsZero() {
			u.LastMod = e.LastModified.UTC().Format(time.DateOnly)
		}
		switch e.Kind {
		case domain.SitemapIndex:
			u.ChangeFreq, u.Priority = "daily", "1.0"
		case domain.SitemapContent:
			u.ChangeFreq, u.Priority = changeFreq(e.SourceType), "0.8"
		case domain.SitemapTag:
			u.ChangeFreq, u.Priority = "weekly", "0.5"
		}
		set.URLs = append(set.URLs, u)
	}
	return set
}

// Marshal renders entries as an indented XML document with header.
func Marshal(entries []domain.SitemapEntry) ([]byte, error) {
	body, err := xml.MarshalIndent(Build(entries), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling sitemap: %w", err)
	}
	return append([]byte(xml.Header), append(body, '\n')...), nil
}

// Render writes the XML document for entries to w.
func Render(w io.Writer, entries []domain.SitemapEntry) error {
	data, err := Marshal(entries)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// changeFreq returns the changefreq hint for a content page.
func changeFreq(t domain.SourceType) string {
	switch t {
	case domain.SourceRelease:
		return "yearly"
	case domain.SourceDoc:
		return "weekly"
	default:
		return "monthly"
	}
}
