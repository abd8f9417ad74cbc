package services

import (
	"context"
	"time"

	"github.com/custodia-labs/sercha-site/internal/core/domain"
	"github.com/custodia-labs/sercha-site/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-site/internal/core/ports/driving"
)

// Ensure SitemapService implements the interface.
var _ driving.SitemapService = (*SitemapService)(nil)

// SitemapService enumerates sitemap URLs from the current snapshot.
type SitemapService struct {
	store driven.SnapshotStore
	links *LinkBuilder
}

// NewSitemapService creates a new sitemap service.
func NewSitemapService(store driven.SnapshotStore, links *LinkBuilder) *SitemapService {
	return &SitemapService{store: store, links: links}
}

// Entries returns the site root, one listing page per loaded source, every
// record and every tag. A source that failed to load has no records in the
// snapshot, so only its own entries are missing.
func (s *SitemapService) Entries(_ context.Context) ([]domain.SitemapEntry, error) {
	snap := s.store.Current()
	if snap == nil {
		return nil, domain.ErrIndexUnavailable
	}
	return BuildSitemap(snap, s.links), nil
}

// BuildSitemap derives sitemap entries from a snapshot.
func BuildSitemap(snap *domain.Snapshot, links *LinkBuilder) []domain.SitemapEntry {
	var newest time.Time
	newestBySource := make(map[domain.SourceType]time.Time)
	newestByTag := make(map[string]time.Time)

	content := make([]domain.SitemapEntry, 0, len(snap.Records))
	for i := range snap.Records {
		rec := &snap.Records[i]
		mod := rec.LastModified()
		content = append(content, domain.SitemapEntry{
			Loc:          links.Absolute(links.RecordPath(rec)),
			LastModified: mod,
			Kind:         domain.SitemapContent,
			SourceType:   rec.SourceType,
		})
		if mod.After(newest) {
			newest = mod
		}
		if mod.After(newestBySource[rec.SourceType]) {
			newestBySource[rec.SourceType] = mod
		}
		for _, tag := range rec.Tags {
			if mod.After(newestByTag[tag]) {
				newestByTag[tag] = mod
			}
		}
	}

	entries := make([]domain.SitemapEntry, 0, len(content)+len(snap.Tags)+4)
	entries = append(entries, domain.SitemapEntry{
		Loc:          links.Absolute("/"),
		LastModified: newest,
		Kind:         domain.SitemapIndex,
	})
	for _, t := range domain.AllSourceTypes() {
		mod, ok := newestBySource[t]
		if !ok {
			continue
		}
		entries = append(entries, domain.SitemapEntry{
			Loc:          links.Absolute(links.SourcePath(t)),
			LastModified: mod,
			Kind:         domain.SitemapIndex,
			SourceType:   t,
		})
	}
	entries = append(entries, content...)
	for _, agg := range snap.Tags {
		entries = append(entries, domain.SitemapEntry{
			Loc:          links.Absolute(links.TagPath(agg.Tag)),
			LastModified: newestByTag[agg.Tag],
			Kind:         domain.SitemapTag,
		})
	}
	return entries
}
