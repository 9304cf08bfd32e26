package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotLoggedIn is returned by operations that need a session token when none is held.
	ErrNotLoggedIn = errors.New("not logged in")
	// ErrUnauthorized matches an APIError with status 401.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrDuplicateEntry matches the server's duplicate watchlist entry rejection.
	ErrDuplicateEntry = errors.New("item already in watchlist")
)

// duplicateEntryMessage is the body message the server sends for a repeated watchlist add.
const duplicateEntryMessage = "Item already in watchlist"

// APIError is a non-2xx response from the backend.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("api error: %d %s", e.StatusCode, e.Message)
}

func (e *APIError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized
	case ErrDuplicateEntry:
		return e.StatusCode == http.StatusBadRequest && e.Message == duplicateEntryMessage
	}
	return false
}
