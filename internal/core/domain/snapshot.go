package domain

import "time"

// Snapshot is one immutable build of the content set.
// It is never mutated after construction; rebuilds produce a new value.
type Snapshot struct {
	// ID identifies the build.
	ID string

	// BuiltAt is when the build finished.
	BuiltAt time.Time

	// Records are all published records, most recent first.
	Records []ContentRecord

	// Index is the search index built from Records.
	Index []SearchIndexEntry

	// Tags is the cross-source tag aggregation.
	Tags []TagAggregate

	// Reports describe how each source loaded.
	Reports []LoadReport
}

// RecordsBySource returns the records of one source type, keeping order.
func (s *Snapshot) RecordsBySource(t SourceType) []ContentRecord {
	out := make([]ContentRecord, 0)
	if s == nil {
		return out
	}
	for i := range s.Records {
		if s.Records[i].SourceType == t {
			out = append(out, s.Records[i])
		}
	}
	return out
}

// Find returns the record with the given key.
func (s *Snapshot) Find(key RecordKey) (*ContentRecord, bool) {
	if s == nil {
		return nil, false
	}
	for i := range s.Records {
		if s.Records[i].Key() == key {
			return &s.Records[i], true
		}
	}
	return nil, false
}

// Report returns the load report for a source type.
func (s *Snapshot) Report(t SourceType) (LoadReport, bool) {
	if s == nil {
		return LoadReport{}, false
	}
	for _, r := range s.Reports {
		if r.SourceType == t {
			return r, true
		}
	}
	return LoadReport{}, false
}
