// Package domain defines domain-level errors for the catalog feature.
package domain

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUpstream matches every failure of the metadata provider.
	ErrUpstream = errors.New("upstream provider error")

	// ErrNotFound matches upstream 404 responses.
	ErrNotFound = errors.New("catalog item not found")

	// ErrBadRequest matches invalid catalog queries detected before any upstream call.
	ErrBadRequest = errors.New("bad request")
)

// UpstreamError describes a failed call to the metadata provider.
// StatusCode is zero when no HTTP response was received.
type UpstreamError struct {
	Endpoint   string
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("upstream %s: status %d", e.Endpoint, e.StatusCode)
	}
	return fmt.Sprintf("upstream %s: %v", e.Endpoint, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// Is makes every UpstreamError match ErrUpstream, and upstream 404s match ErrNotFound.
func (e *UpstreamError) Is(target error) bool {
	switch target {
	case ErrUpstream:
		return true
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	}
	return false
}

// RequestError is a client mistake. Its message is safe to return to the caller.
type RequestError struct {
	Msg string
}

// BadRequest returns a RequestError with the given message.
func BadRequest(msg string) error {
	return &RequestError{Msg: msg}
}

func (e *RequestError) Error() string { return e.Msg }

func (e *RequestError) Is(target error) bool { return target == ErrBadRequest }
