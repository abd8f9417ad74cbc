// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The pure build steps (AggregateTags, BuildIndex, RankEntries, SortRecords)
// take values and return values. The services wrap them around the current
// snapshot held by a driven.SnapshotStore.
package services
