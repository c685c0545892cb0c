package crunchdao

import "errors"

// Error taxonomy of the client. Every operation failure wraps exactly one of
// these sentinels, with the failing operation and the server's reported
// reason in the message.
var (
	// ErrAuthentication indicates a missing or rejected API key.
	ErrAuthentication = errors.New("authentication required")
	// ErrValidation indicates a malformed local payload or argument,
	// detected before any network call.
	ErrValidation = errors.New("validation failed")
	// ErrUpload indicates that the backend rejected a submission upload
	// (closed round, duplicate file, schema mismatch, rate limit).
	ErrUpload = errors.New("upload rejected")
	// ErrDownload indicates a failed dataset download, either a non-success
	// server response or a local filesystem write failure.
	ErrDownload = errors.New("download failed")
	// ErrNotFound indicates a resource that does not exist or does not
	// belong to the caller.
	ErrNotFound = errors.New("resource not found")
)
