// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - ContentLoader: Walks a source directory and parses front matter files
//   - Normaliser: Turns one parsed file into a ContentRecord
//   - NormaliserRegistry: Selects the normaliser for a source type
//   - TextTransform: One markup stripping step of the indexing pipeline
//   - SnapshotStore: Holds the current index snapshot
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - ChangeWatcher: Pushes content file changes. Without it, rebuilds are
//     periodic or manual only.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, connector, or normaliser package
package driven
