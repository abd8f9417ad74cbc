// Package driving defines interfaces that external actors (CLI, HTTP, MCP, TUI)
// use to interact with core services. These are the "driving" ports in hexagonal
// architecture terminology - they drive the application.
//
// Every read goes through the current index snapshot, so callers always see
// one consistent build even while a rebuild is in progress.
//
// Implementations of these interfaces live in internal/core/services.
package driving
