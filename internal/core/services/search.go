package services

import (
	"context"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/custodia-labs/sercha-site/internal/core/domain"
	"github.com/custodia-labs/sercha-site/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-site/internal/core/ports/driving"
	"github.com/custodia-labs/sercha-site/internal/logger"
)

const ellipsis = "…"

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// SearchService ranks the current snapshot's index against queries.
type SearchService struct {
	store driven.SnapshotStore
	cfg   domain.SearchConfig
}

// NewSearchService creates a new search service.
func NewSearchService(store driven.SnapshotStore, cfg domain.SearchConfig) *SearchService {
	return &SearchService{
		store: store,
		cfg:   cfg,
	}
}

// Search ranks indexed content against query.
func (s *SearchService) Search(
	_ context.Context, query string, opts domain.SearchOptions,
) ([]domain.SearchResult, error) {
	logger.Section("Search Execution")
	logger.Debug("Query: %q", query)

	if err := ValidateQuery(query, s.cfg); err != nil {
		return nil, err
	}

	snap := s.store.Current()
	if snap == nil {
		return nil, domain.ErrIndexUnavailable
	}

	entries := snap.Index
	if len(opts.SourceTypes) > 0 {
		logger.Debug("Source filter: %v", opts.SourceTypes)
		entries = filterEntries(entries, opts.SourceTypes)
	}

	results, err := RankEntries(entries, query, opts.Limit, s.cfg)
	if err != nil {
		return nil, err
	}
	logger.Debug("Returning %d results from snapshot %s", len(results), snap.ID)
	return results, nil
}

// ValidateQuery rejects queries longer than cfg.MaxQueryLength characters.
// Surrounding whitespace is not counted.
func ValidateQuery(query string, cfg domain.SearchConfig) error {
	if cfg.MaxQueryLength > 0 && utf8.RuneCountInString(strings.TrimSpace(query)) > cfg.MaxQueryLength {
		return domain.ErrQueryTooLong
	}
	return nil
}

// EffectiveLimit applies the default and the cap to a caller-supplied limit.
func EffectiveLimit(limit int, cfg domain.SearchConfig) int {
	if limit <= 0 {
		limit = cfg.DefaultResults
	}
	if cfg.MaxResults > 0 && limit > cfg.MaxResults {
		limit = cfg.MaxResults
	}
	return limit
}

// RankEntries scores entries against query and returns the best matches.
// Overlong queries fail with domain.ErrQueryTooLong before any entry is
// scanned; blank queries return an empty slice. Entries scoring zero are
// dropped. Results are ordered by score descending, then most recently
// modified, then source type and ID, and truncated to the effective limit.
func RankEntries(
	entries []domain.SearchIndexEntry, query string, limit int, cfg domain.SearchConfig,
) ([]domain.SearchResult, error) {
	if err := ValidateQuery(query, cfg); err != nil {
		return nil, err
	}
	query = strings.TrimSpace(query)
	if query == "" {
		logger.Debug("Empty query, returning no results")
		return []domain.SearchResult{}, nil
	}

	results := make([]domain.SearchResult, 0)
	for i := range entries {
		if result, ok := scoreEntry(&entries[i], query, cfg); ok {
			results = append(results, result)
		}
	}
	logger.Debug("%d of %d entries matched", len(results), len(entries))

	sortResults(results)

	if n := EffectiveLimit(limit, cfg); len(results) > n {
		results = results[:n]
	}
	return results, nil
}

// scoreEntry scores one entry. ok is false when nothing matched.
func scoreEntry(entry *domain.SearchIndexEntry, query string, cfg domain.SearchConfig) (domain.SearchResult, bool) {
	w := cfg.Weights
	result := domain.SearchResult{Entry: *entry}

	if containsFold(entry.Title, query) {
		result.Score += w.TitleContains
		if strings.EqualFold(strings.TrimSpace(entry.Title), query) {
			result.Score += w.TitleExact
		}
		result.Matches = append(result.Matches, domain.FieldMatch{
			Field:       domain.MatchTitle,
			Highlighted: highlightFold(entry.Title, query, cfg.HighlightPre, cfg.HighlightPost),
		})
	}

	if containsFold(entry.Description, query) {
		result.Score += w.Description
		result.Matches = append(result.Matches, domain.FieldMatch{
			Field:       domain.MatchDescription,
			Highlighted: highlightFold(entry.Description, query, cfg.HighlightPre, cfg.HighlightPost),
		})
	}

	for _, tag := range entry.Tags {
		if containsFold(tag, query) {
			result.Score += w.Tag
			result.MatchedTags = append(result.MatchedTags, tag)
		}
	}

	if containsFold(entry.Category, query) {
		result.Score += w.Category
	}

	if occurrences := countFold(entry.Content, query); occurrences > 0 {
		result.Score += occurrences * w.BodyOccurrence
		result.Excerpt = excerpt(entry.Content, query, cfg.ExcerptRadius)
		result.Matches = append(result.Matches, domain.FieldMatch{
			Field:       domain.MatchContent,
			Highlighted: highlightFold(result.Excerpt, query, cfg.HighlightPre, cfg.HighlightPost),
		})
	}

	return result, result.Score > 0
}

// excerpt returns up to radius characters either side of the first match of
// query in text, with an ellipsis where text was cut.
func excerpt(text, query string, radius int) string {
	start, end := indexFold(text, query, 0)
	if start < 0 {
		return ""
	}

	from := start
	for n := 0; n < radius && from > 0; n++ {
		_, size := utf8.DecodeLastRuneInString(text[:from])
		from -= size
	}
	to := end
	for n := 0; n < radius && to < len(text); n++ {
		_, size := utf8.DecodeRuneInString(text[to:])
		to += size
	}

	out := strings.TrimSpace(text[from:to])
	if from > 0 {
		out = ellipsis + out
	}
	if to < len(text) {
		out += ellipsis
	}
	return out
}

func sortResults(results []domain.SearchResult) {
	sort.SliceStable(results, func(i, j int) bool {
		a, b := &results[i], &results[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		ta, tb := a.Entry.LastModified(), b.Entry.LastModified()
		if !ta.Equal(tb) {
			return ta.After(tb)
		}
		if oa, ob := a.Entry.SourceType.Order(), b.Entry.SourceType.Order(); oa != ob {
			return oa < ob
		}
		return a.Entry.ID < b.Entry.ID
	})
}

func filterEntries(entries []domain.SearchIndexEntry, types []domain.SourceType) []domain.SearchIndexEntry {
	allowed := make(map[domain.SourceType]bool, len(types))
	for _, t := range types {
		allowed[t] = true
	}
	out := make([]domain.SearchIndexEntry, 0, len(entries))
	for i := range entries {
		if allowed[entries[i].SourceType] {
			out = append(out, entries[i])
		}
	}
	return out
}
