// Package connectors provides implementations of the content loading ports.
// Each connector knows how to read content files from one kind of storage.
//
// The filesystem connector is the only one: every content source is a
// directory tree of front matter text files.
package connectors
