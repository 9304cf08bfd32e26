// Package domain defines domain-level errors for the auth feature.
package domain

import "errors"

// Domain errors for authentication operations.
// These errors represent business logic failures and are translated to HTTP responses by the transport layer.
var (
	// ErrDuplicateAccount indicates that a user with the given email already exists.
	ErrDuplicateAccount = errors.New("user already exists")

	// ErrUserNotFound indicates that no user was found with the given criteria.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials indicates that the provided credentials are incorrect.
	// Unknown email and wrong password both map to this error.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrWeakPassword indicates that a password is too short or too long.
	ErrWeakPassword = errors.New("invalid password")

	// ErrInvalidInput indicates that a required field is missing or malformed.
	ErrInvalidInput = errors.New("invalid user data")
)
