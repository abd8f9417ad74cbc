package domain

import "fmt"

// LoadWarning reports one file that was skipped during loading.
type LoadWarning struct {
	// Path is the offending file.
	Path string

	// Err is the reason it was skipped.
	Err error
}

// Error implements error so warnings can be joined and logged.
func (w LoadWarning) Error() string {
	return fmt.Sprintf("%s: %v", w.Path, w.Err)
}

// Unwrap returns the underlying error.
func (w LoadWarning) Unwrap() error {
	return w.Err
}

// LoadResult is the best-effort output of loading one source.
type LoadResult struct {
	// Source is the configuration that was loaded.
	Source SourceConfig

	// Files are the parsed, non-draft files in walk order.
	Files []ParsedFile

	// Warnings are the files that could not be parsed.
	Warnings []LoadWarning

	// Drafts is the number of draft files skipped.
	Drafts int
}

// LoadReport summarises how one source fared during a build.
type LoadReport struct {
	// SourceType is the source this report covers.
	SourceType SourceType

	// Root is the directory that was walked.
	Root string

	// Records is the number of records the source contributed.
	Records int

	// Drafts is the number of draft files skipped.
	Drafts int

	// Warnings are the per-file problems.
	Warnings []LoadWarning

	// Err is set when the whole source failed (e.g. ErrSourceUnavailable).
	Err error
}

// Healthy reports whether the source loaded without a source-level failure.
func (r LoadReport) Healthy() bool {
	return r.Err == nil
}
