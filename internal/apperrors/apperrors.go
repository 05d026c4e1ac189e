// Package apperrors defines the error taxonomy shared by the repository,
// service and handler layers. Repositories wrap store failures around these
// sentinels so that handlers can map them to HTTP statuses with errors.Is
// instead of string matching.
package apperrors

import "errors"

var (
	// ErrValidation marks missing or malformed input.
	ErrValidation = errors.New("invalid request")

	// ErrConflict marks a uniqueness violation (duplicate username).
	ErrConflict = errors.New("already exists")

	// ErrUnauthorized marks a missing, invalid or expired credential. Login
	// failures collapse into this regardless of whether the username or the
	// password was wrong.
	ErrUnauthorized = errors.New("authentication required")

	// ErrForbidden marks an ownership mismatch on a mutating operation.
	ErrForbidden = errors.New("permission denied")

	// ErrNotFound marks an absent resource.
	ErrNotFound = errors.New("not found")
)
