package file

import "errors"

var (
	// ErrConfigExists is returned when init would overwrite an existing file.
	ErrConfigExists = errors.New("config file already exists")

	// ErrInvalidConfig is returned when the file cannot be decoded or converted.
	ErrInvalidConfig = errors.New("invalid config")
)
