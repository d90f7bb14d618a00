package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain operations
var (
	// ErrServerOffline indicates the catalog API is unreachable
	ErrServerOffline = errors.New("catalog server is unreachable")

	// ErrUnexpectedStatus indicates the catalog API answered with a non-2xx status
	ErrUnexpectedStatus = errors.New("unexpected status from catalog server")

	// ErrMalformedPayload indicates the response body could not be decoded
	ErrMalformedPayload = errors.New("malformed catalog response")

	// ErrInvalidPage indicates a page index below 1 was requested
	ErrInvalidPage = errors.New("page index must be >= 1")
)

// StatusError carries the HTTP status of a failed catalog request
type StatusError struct {
	StatusCode int
	URL        string
}

// Error implements the error interface
func (e *StatusError) Error() string {
	return fmt.Sprintf("catalog request %s: status %d", e.URL, e.StatusCode)
}

// Unwrap lets errors.Is match ErrUnexpectedStatus
func (e *StatusError) Unwrap() error {
	return ErrUnexpectedStatus
}
