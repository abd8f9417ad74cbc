package domain

import "time"

// ScoringWeights are the relevance tuning knobs for the ranking engine.
// All matching is case-insensitive substring matching.
type ScoringWeights struct {
	// TitleContains is added when the title contains the query.
	TitleContains int

	// TitleExact is added on top of TitleContains when the title equals the query.
	TitleExact int

	// Description is added when the description contains the query.
	Description int

	// Tag is added once per tag containing the query.
	Tag int

	// Category is added when the category contains the query.
	Category int

	// BodyOccurrence is added once per occurrence of the query in the stripped body.
	BodyOccurrence int
}

// DefaultScoringWeights returns the stock weights (100/50/50/30/25/5).
func DefaultScoringWeights() ScoringWeights {
	return ScoringWeights{
		TitleContains:  100,
		TitleExact:     50,
		Description:    50,
		Tag:            30,
		Category:       25,
		BodyOccurrence: 5,
	}
}

// SearchConfig configures the ranking engine.
type SearchConfig struct {
	// Weights are the scoring weights.
	Weights ScoringWeights

	// DefaultResults is used when a caller passes no limit.
	DefaultResults int

	// MaxResults caps any caller-supplied limit.
	MaxResults int

	// MaxQueryLength is the longest accepted query, in characters.
	MaxQueryLength int

	// ExcerptRadius is the number of characters kept on each side of a body match.
	ExcerptRadius int

	// HighlightPre is inserted before every highlighted match.
	HighlightPre string

	// HighlightPost is inserted after every highlighted match.
	HighlightPost string

	// KeepImageAlt keeps image alt text in indexed bodies.
	KeepImageAlt bool
}

// DefaultSearchConfig returns the stock ranking configuration.
func DefaultSearchConfig() SearchConfig {
	return SearchConfig{
		Weights:        DefaultScoringWeights(),
		DefaultResults: 10,
		MaxResults:     50,
		MaxQueryLength: 200,
		ExcerptRadius:  80,
		HighlightPre:   "<mark>",
		HighlightPost:  "</mark>",
		KeepImageAlt:   true,
	}
}

// SearchOptions configures a search query.
type SearchOptions struct {
	// Limit is the maximum number of results. Zero means the default.
	Limit int

	// SourceTypes filters to specific sources. Empty means all.
	SourceTypes []SourceType
}

// SearchIndexEntry is the searchable projection of one ContentRecord.
type SearchIndexEntry struct {
	// ID is the record slug.
	ID string

	// SourceType is the record's source.
	SourceType SourceType

	// Title is the record title.
	Title string

	// Description is the record description.
	Description string

	// Content is the body with all markup stripped.
	Content string

	// Tags is the record's tag set.
	Tags []string

	// Category is the record's category.
	Category string

	// URL is the destination link for the record.
	URL string

	// PublishedAt is the publication time.
	PublishedAt time.Time

	// UpdatedAt is the last modification time.
	UpdatedAt time.Time
}

// LastModified returns UpdatedAt, or PublishedAt when UpdatedAt is unset.
func (e *SearchIndexEntry) LastModified() time.Time {
	if e.UpdatedAt.IsZero() {
		return e.PublishedAt
	}
	return e.UpdatedAt
}

// MatchField names the field a query matched.
type MatchField string

// Fields reported back in search results.
const (
	MatchTitle       MatchField = "title"
	MatchDescription MatchField = "description"
	MatchContent     MatchField = "content"
)

// FieldMatch is one matched field rendered with highlight markers.
type FieldMatch struct {
	// Field is the matched field.
	Field MatchField

	// Highlighted is the field text (or excerpt) with matches wrapped in markers.
	Highlighted string
}

// SearchResult is an index entry annotated with a relevance score.
type SearchResult struct {
	// Entry is the matched index entry.
	Entry SearchIndexEntry

	// Score is the weighted relevance score. Always positive.
	Score int

	// Matches lists the highlighted title, description and content matches.
	Matches []FieldMatch

	// MatchedTags are the tags that contained the query.
	MatchedTags []string

	// Excerpt is a bounded window of the body around the first match.
	// Empty when the body did not match.
	Excerpt string
}

// Match returns the match for field, if any.
func (r *SearchResult) Match(field MatchField) (FieldMatch, bool) {
	for _, m := range r.Matches {
		if m.Field == field {
			return m, true
		}
	}
	return FieldMatch{}, false
}
