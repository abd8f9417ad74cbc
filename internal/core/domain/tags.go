package domain

import "sort"

// TagAggregate counts how many records carry a tag, split by source type.
// Count always equals BlogCount + ReleaseCount + DocCount.
type TagAggregate struct {
	// Tag is the tag string.
	Tag string

	// Count is the total across all included sources.
	Count int

	// BlogCount is the number of blog posts with the tag.
	BlogCount int

	// ReleaseCount is the number of release notes with the tag.
	ReleaseCount int

	// DocCount is the number of documentation pages with the tag.
	DocCount int
}

// Add records one occurrence for the given source type.
// Unknown source types are ignored so Count stays equal to the sub-count sum.
func (a *TagAggregate) Add(t SourceType) {
	switch t {
	case SourceBlog:
		a.BlogCount++
	case SourceRelease:
		a.ReleaseCount++
	case SourceDoc:
		a.DocCount++
	default:
		return
	}
	a.Count++
}

// CountFor returns the sub-count for one source type.
func (a *TagAggregate) CountFor(t SourceType) int {
	switch t {
	case SourceBlog:
		return a.BlogCount
	case SourceRelease:
		return a.ReleaseCount
	case SourceDoc:
		return a.DocCount
	default:
		return 0
	}
}

// SubCountSum returns the sum of the per-source sub-counts.
func (a *TagAggregate) SubCountSum() int {
	return a.BlogCount + a.ReleaseCount + a.DocCount
}

// SortTagsForDisplay returns a copy of tags ordered by global frequency
// (per aggregates) descending, then lexically. Tags absent from aggregates count as zero.
func SortTagsForDisplay(tags []string, aggregates []TagAggregate) []string {
	counts := make(map[string]int, len(aggregates))
	for _, a := range aggregates {
		counts[a.Tag] = a.Count
	}
	out := make([]string, len(tags))
	copy(out, tags)
	sort.SliceStable(out, func(i, j int) bool {
		ci, cj := counts[out[i]], counts[out[j]]
		if ci != cj {
			return ci > cj
		}
		return out[i] < out[j]
	})
	return out
}
