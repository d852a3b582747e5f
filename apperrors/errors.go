// Package apperrors holds the error taxonomy shared by the pipeline, the export engine and the handlers.
package apperrors

import (
	"errors"
	"fmt"
)

// Code identifies a class of failure
type Code string

const (
	// SourceUnavailable: the catalog spreadsheet could not be fetched or parsed
	SourceUnavailable Code = "SOURCE_UNAVAILABLE"
	// UpstreamError: a store lookup batch failed
	UpstreamError Code = "UPSTREAM_ERROR"
	// ImageLoadError: an icon could not be fetched or decoded
	ImageLoadError Code = "IMAGE_LOAD_ERROR"
	// ClipboardDenied: the clipboard refused an image write
	ClipboardDenied Code = "CLIPBOARD_DENIED"
	// EmptyInput: a blank search term was submitted
	EmptyInput Code = "EMPTY_INPUT"
	// InvalidParameter: a request parameter is missing or malformed
	InvalidParameter Code = "INVALID_PARAMETER"
)

// Error is a coded error wrapping its cause
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches any *Error carrying the same code
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// New creates an error without cause
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap creates an error with an underlying cause
func Wrap(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

// Sentinels usable with errors.Is
var (
	ErrSourceUnavailable = New(SourceUnavailable, "catalog source unavailable")
	ErrUpstream          = New(UpstreamError, "store lookup failed")
	ErrImageLoad         = New(ImageLoadError, "image could not be loaded")
	ErrClipboardDenied   = New(ClipboardDenied, "clipboard write denied")
	ErrEmptyInput        = New(EmptyInput, "search term is empty")
	ErrInvalidParameter  = New(InvalidParameter, "invalid parameter")
)

// CodeOf returns the code of the first *Error in the chain, or "" when there is none
func CodeOf(err error) Code {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}
