package domain

import (
	"errors"
	"fmt"
)

var (
	ErrAuthentication   = errors.New("authentication failed")
	ErrConnectivity     = errors.New("server unreachable")
	ErrMetadataFetch    = errors.New("metadata fetch failed")
	ErrParse            = errors.New("unexpected response shape")
	ErrInvalidSelection = errors.New("invalid selection")
)

// APIError describes a failed call against one of the server endpoints.
type APIError struct {
	Op         string
	StatusCode int
	Body       string
	Err        error
}

func (e *APIError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	if e.Body == "" {
		return fmt.Sprintf("%s: %v (status %d)", e.Op, e.Err, e.StatusCode)
	}
	return fmt.Sprintf("%s: %v (status %d): %s", e.Op, e.Err, e.StatusCode, e.Body)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// SelectionError reports a menu choice that could not be used.
type SelectionError struct {
	Input  string
	Reason string
}

func (e *SelectionError) Error() string {
	return e.Reason
}

func (e *SelectionError) Unwrap() error {
	return ErrInvalidSelection
}
