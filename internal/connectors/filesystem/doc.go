// Package filesystem loads content sources from local directory trees.
//
// Loader walks a source root, parses the YAML or TOML front matter of every
// matching file and coerces the loosely typed header into the typed metadata
// variant for the source. Watcher reports file changes via fsnotify so the
// index can be rebuilt.
package filesystem
