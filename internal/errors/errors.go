// Package errors defines the typed failures surfaced by the client.
// Screens match on these with errors.As to decide how to react; none of
// them are retried automatically.
package errors

import (
	"fmt"
	"net/http"
)

// AuthenticationError means the server rejected a login or register
// attempt. Message is safe to display verbatim.
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// NewAuthenticationError wraps a server-provided message, falling back to
// a generic one when the response carried none.
func NewAuthenticationError(message, fallback string) *AuthenticationError {
	if message == "" {
		message = fallback
	}
	return &AuthenticationError{Message: message}
}

// ValidationError is a client-side pre-network check failure. It never
// reaches the wire.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// StorageError wraps a durable-storage read/write failure.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// NetworkError covers transport failures and server 5xx responses.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("request %s failed: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// UnauthorizedError is an HTTP 401. The API layer clears stored
// credentials as a side effect before returning it; callers still see the
// rejection so their own screen can react.
type UnauthorizedError struct {
	Message string
}

func (e *UnauthorizedError) Error() string {
	if e.Message == "" {
		return "unauthorized"
	}
	return e.Message
}

// APIError is any other non-2xx response, with the server's message when
// the body carried one.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("API error (status %d)", e.StatusCode)
	}
	return fmt.Sprintf("API error (status %d): %s", e.StatusCode, e.Message)
}

// FromStatus maps a non-2xx status to the matching typed error.
func FromStatus(status int, message string) error {
	switch {
	case status == http.StatusUnauthorized:
		return &UnauthorizedError{Message: message}
	case status >= 500:
		return &NetworkError{Op: "server", Err: &APIError{StatusCode: status, Message: message}}
	default:
		return &APIError{StatusCode: status, Message: message}
	}
}
