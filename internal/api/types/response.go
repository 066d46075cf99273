// internal/api/types/response.go
package types

import "time"

// ListResponse wraps a list of items with its length.
// T represents the type of data contained in the 'Data' slice.
type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Count int `json:"count"`
}

// NewListResponse builds a ListResponse. A nil slice is rendered as [].
func NewListResponse[T any](items []T) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{Data: items, Count: len(items)}
}

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

// TokenResponse is returned by a successful login.
type TokenResponse struct {
	Token     string    `json:"token"`
	TokenType string    `json:"token_type"`
	ExpiresAt time.Time `json:"expires_at"`
	ExpiresIn int64     `json:"expires_in"` // Seconds
}
