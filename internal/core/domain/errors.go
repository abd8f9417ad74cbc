package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrQueryTooLong indicates the search query exceeds the configured bound.
	// It always wraps ErrInvalidInput so callers can map it to a client error.
	ErrQueryTooLong = fmt.Errorf("%w: query too long", ErrInvalidInput)

	// ErrUnsupportedType indicates an unknown source type or metadata variant.
	ErrUnsupportedType = errors.New("unsupported type")

	// Loader Errors.

	// ErrSourceUnavailable indicates an entire source directory is missing or unreadable.
	// The source contributes no records; other sources are unaffected.
	ErrSourceUnavailable = errors.New("source unavailable")

	// ErrParse indicates a single file could not be parsed.
	ErrParse = errors.New("parse error")

	// ErrMissingTitle indicates a file has no usable title.
	ErrMissingTitle = errors.New("missing title")

	// Index Errors.

	// ErrIndexUnavailable indicates no snapshot has been built yet.
	ErrIndexUnavailable = errors.New("index unavailable")
)
