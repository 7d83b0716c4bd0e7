package apperrors

import "errors"

// Fetch failures indicate a required document could not be retrieved from the
// static-data source. They are terminal for that document's refresh only; the
// affected view degrades to its empty default.
var (
	// ErrDocumentNotFound indicates the source has no document with that name.
	ErrDocumentNotFound = errors.New("document not found")

	// ErrFetchFailed indicates a network or filesystem error while retrieving a document.
	ErrFetchFailed = errors.New("failed to fetch document")

	// ErrUnexpectedStatus indicates the static host answered with a non-success status.
	ErrUnexpectedStatus = errors.New("unexpected response status")
)

// Shape failures indicate a document was retrieved but does not match the
// declared schema. The loader coerces the document to its zero value and
// proceeds; shape failures never propagate out of a transform.
var (
	// ErrUnexpectedShape indicates a document is not the expected container type.
	ErrUnexpectedShape = errors.New("unexpected document shape")
)

// Request validation errors.
var (
	// ErrInvalidTopK indicates the top parameter is not a non-negative integer.
	ErrInvalidTopK = errors.New("top must be a non-negative integer")
)

// Snapshot state errors.
var (
	// ErrSnapshotNotLoaded indicates no snapshot has been loaded yet.
	ErrSnapshotNotLoaded = errors.New("snapshot not loaded")
)
