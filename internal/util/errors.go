// internal/util/errors.go
package util

import "errors"

// Common application-specific errors.
var (
	ErrNotFound       = errors.New("resource not found")
	ErrInvalidInput   = errors.New("invalid input provided")
	ErrDuplicateEntry = errors.New("duplicate entry") // For cases like registering an existing username
	ErrConflict       = errors.New("conflict")        // The record is still referenced by others
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
)

// IsError reports whether err matches any of targets.
func IsError(err error, targets ...error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
