// Package common defines shared constants and sentinel errors used across
// diagramkeeper layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Caller-supplied identifiers or payload fields are missing or malformed.
	ErrValidation = errors.New("validation error")

	// Transient infrastructure failure of the counter, blob or metadata store.
	ErrStoreUnavailable = errors.New("store unavailable")

	// Repository / blob store lookups.
	ErrNotFound        = errors.New("not found")
	ErrVersionNotFound = errors.New("version not found")

	// Generation collaborator errors.
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrRender            = errors.New("render error")

	// Blob written, metadata write failed.
	ErrPartialWrite = errors.New("partial write inconsistency")
)
