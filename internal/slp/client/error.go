package client

import (
	"errors"
	"fmt"
)

var (
	// ErrTokenNotFound is returned when the server does not know the requested token.
	ErrTokenNotFound = errors.New("token not found")
	// ErrNoValidationResult is returned when a validation response omits the requested txid.
	ErrNoValidationResult = errors.New("no validation result for txid")
)

// APIError is returned when the server responds with a non-200 status.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("slp API returned status %d", e.StatusCode)
	}

	return fmt.Sprintf("slp API returned status %d: %s", e.StatusCode, e.Message)
}
