package proxy

import "time"

// Constants for error messages and timeouts
const (
	ErrMissingSheet     = "Missing required query parameter: sheet"
	ErrInvalidSheet     = "Sheet name is too long"
	ErrMissingIDs       = "Missing required query parameter: id"
	ErrInvalidID        = "Store ids must be numeric"
	ErrTooManyIDs       = "At most 10 ids may be looked up at once"
	ErrSheetFetchFailed = "Failed to fetch sheet data"
	ErrLookupFailed     = "Failed to fetch store data"

	UpstreamTimeout = 15 * time.Second
	maxSheetName    = 100
)

// Error codes of the proxy envelope
const (
	CodeInvalidParameter = "INVALID_PARAMETER"
	CodeUpstreamError    = "UPSTREAM_ERROR"
)
