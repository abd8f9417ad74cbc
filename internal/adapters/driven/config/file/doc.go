// Package file provides file-based implementations of driven port interfaces.
// These adapters persist data to the local filesystem.
//
// Adapters:
//   - ConfigStore: TOML-based site configuration with .env and
//     SERCHA_SITE_* environment overrides
package file
