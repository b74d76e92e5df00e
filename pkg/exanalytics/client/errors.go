package client

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrUnauthorized indicates a missing, invalid or expired token.
var ErrUnauthorized = errors.New("unauthorized")

// ErrNotFound indicates the requested resource does not exist.
var ErrNotFound = errors.New("not found")

// APIError is a failed API call. Message is the server's message when it
// sent one.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: status %d", e.StatusCode)
	}
	return fmt.Sprintf("api error: status %d: %s", e.StatusCode, e.Message)
}

// Unwrap maps 401 to ErrUnauthorized and 404 to ErrNotFound.
func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	}
	return nil
}

func newAPIError(status int, message string, body []byte) *APIError {
	if message == "" && status >= 300 {
		message = strings.TrimSpace(string(body))
		if len(message) > 200 {
			message = message[:200]
		}
	}
	return &APIError{StatusCode: status, Message: message}
}

// Message returns the server message carried by err, or "".
func Message(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return ""
}
