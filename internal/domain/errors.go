package domain

import (
	"errors"
)

// Sentinel errors raised by the service layer. Handlers map these to HTTP
// status codes and stable error kind strings with errors.Is(); the services
// themselves have no notion of HTTP.
var (
	// ErrNotFound indicates an id or slug does not resolve to a document.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates a slug is already taken by another document.
	ErrConflict = errors.New("already exists")

	// ErrValidation indicates malformed or missing required input.
	ErrValidation = errors.New("validation failed")

	// ErrImportFailed indicates the external fetch/extraction step failed or
	// produced unusable content. The underlying message is preserved for
	// diagnostics.
	ErrImportFailed = errors.New("import failed")
)
