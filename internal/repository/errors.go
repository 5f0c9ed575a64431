package repository

import "errors"

// Common repository errors
var (
	// ErrUnsupportedVersion is returned when a stored snapshot carries a schema
	// version this build cannot read
	ErrUnsupportedVersion = errors.New("unsupported snapshot version")

	// ErrCorruptSnapshot is returned when a stored snapshot is not valid JSON
	ErrCorruptSnapshot = errors.New("corrupt snapshot")

	// ErrUnknownBackend is returned by Open for an unrecognised STORAGE_BACKEND
	ErrUnknownBackend = errors.New("unknown storage backend")
)
