// Package apperr defines the error taxonomy shared by all domains. Usecases
// wrap these sentinels with context; the HTTP layer maps them to status codes.
package apperr

import "errors"

var (
	// ErrNotFound means the id does not resolve to a visible row
	ErrNotFound = errors.New("not found")

	// ErrPermissionDenied means the actor lacks ownership or the admin role
	ErrPermissionDenied = errors.New("permission denied")

	// ErrValidation means malformed or missing required input
	ErrValidation = errors.New("validation error")
)
