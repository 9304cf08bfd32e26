// Package domain defines domain-level errors for the user feature.
package domain

import "errors"

var (
	// ErrDuplicateEntry indicates that the (id, mediaType) pair is already in the watchlist.
	// Callers are expected to treat it as non-fatal.
	ErrDuplicateEntry = errors.New("item already in watchlist")

	// ErrInvalidEntry indicates a watchlist entry with an empty id or an unknown media type.
	ErrInvalidEntry = errors.New("invalid watchlist entry")

	// ErrInvalidCurrentPassword indicates that the current password supplied to a
	// password change does not match the stored hash.
	ErrInvalidCurrentPassword = errors.New("invalid current password")
)
