package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrInvalidBaseURL is returned when the configured base URL cannot be parsed.
	ErrInvalidBaseURL = errors.New("invalid base URL")
	// ErrRequestFailed is returned when a request cannot be sent at all
	// (transport failure, context cancellation).
	ErrRequestFailed = errors.New("request failed")
	// ErrDecodeFailed is returned when a response body cannot be decoded.
	ErrDecodeFailed = errors.New("failed to decode response")
)

// APIError is a non-success response from the storefront API. Message carries
// the server's human-readable explanation when present.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error (%d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api error (%d): %s", e.Status, http.StatusText(e.Status))
}

// Unauthorized reports whether the error is an authorization failure.
func (e *APIError) Unauthorized() bool {
	return e.Status == http.StatusUnauthorized
}

// APIMessage extracts the server-provided message from err, falling back to
// err.Error() for non-API failures. Useful for surfacing login/register
// failures to users verbatim.
func APIMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return err.Error()
}
