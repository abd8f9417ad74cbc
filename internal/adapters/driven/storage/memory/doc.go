// Package memory provides in-memory implementations of driven port interfaces.
//
// Stores:
//   - SnapshotStore: the current index snapshot, swapped atomically
//   - ConfigStore: settings held in memory, for tests and config-less runs
package memory
