package auction

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput marks empty or malformed user or caller input.
	ErrInvalidInput = errors.New("invalid input")
	// ErrIdentityNotFound means the identity service knows no such player.
	ErrIdentityNotFound = errors.New("identity not found")
	// ErrServiceUnavailable covers transport, status and decoding failures.
	ErrServiceUnavailable = errors.New("service unavailable")
	// ErrAuthRejected means the marketplace refused the API key.
	ErrAuthRejected = errors.New("auth rejected")
)

// APIError describes a failed call to one of the external services.
type APIError struct {
	Service string
	Status  int
	Cause   string
	Kind    error
	Err     error
}

func (e *APIError) Error() string {
	msg := e.Service + ": " + e.Kind.Error()
	if e.Status != 0 {
		msg += fmt.Sprintf(" (status %d)", e.Status)
	}
	if e.Cause != "" {
		msg += ": " + e.Cause
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes both the kind sentinel and the underlying error to errors.Is/As.
func (e *APIError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}
