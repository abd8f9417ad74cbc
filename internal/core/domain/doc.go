// Package domain defines the core content entities for sercha-site.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - ContentRecord: A normalised blog post, release note or doc page
//   - ParsedFile: Loader output, a typed metadata variant plus raw body
//   - TagAggregate: Per-tag counts split by source type
//   - SearchIndexEntry: The stripped, searchable projection of a record
//   - Snapshot: An immutable build of records, tags and index
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
