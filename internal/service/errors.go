package service

import (
	"errors"
	"fmt"
)

// Top-level failure categories. Every error returned by the console
// services matches exactly one of them with [errors.Is].
var (
	// ErrAuth matches every [*AuthError].
	ErrAuth = errors.New("authentication failed")

	// ErrValidation matches every [*ValidationError].
	ErrValidation = errors.New("validation failed")

	// ErrNotFound is returned when the backend reports the resource missing.
	ErrNotFound = errors.New("not found")

	// ErrPermissionDenied is returned when an authorized call is attempted
	// without a session token, or the backend rejects the token.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrTransport is the generic fallback for network failures and
	// non-success statuses that have no more specific meaning.
	ErrTransport = errors.New("transport error")

	// ErrNotConfirmed is returned by destructive operations invoked without
	// operator confirmation.
	ErrNotConfirmed = errors.New("operation not confirmed")

	// ErrRefreshFailed is returned alongside a successful mutation when the
	// follow-up list re-fetch fails.
	ErrRefreshFailed = errors.New("list refresh failed")
)

// AuthError kinds.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNetworkFailure     = errors.New("network failure")
)

// ValidationError kinds.
var (
	ErrMissingRequiredField = errors.New("missing required field")
	ErrInvalidNumber        = errors.New("invalid number")
	ErrServerRejected       = errors.New("rejected by server")
	ErrInvalidStatus        = errors.New("invalid order status")
	ErrInvalidTransition    = errors.New("invalid order status transition")
)

// AuthError is returned by login when the backend could not be reached or
// refused the credentials.
type AuthError struct {
	// Kind is [ErrInvalidCredentials] or [ErrNetworkFailure].
	Kind error
	// Message is the operator-facing text.
	Message string
	// Err is the underlying adapter error, if any.
	Err error
}

func (e *AuthError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Kind.Error()
}

func (e *AuthError) Unwrap() []error {
	errs := []error{ErrAuth, e.Kind}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// ValidationError is returned when input is rejected, either locally before
// any request or by the server.
type ValidationError struct {
	// Kind is one of the ValidationError kinds above.
	Kind error
	// Field names the offending input, empty when the server rejected the
	// whole request.
	Field string
	// Message is the operator-facing text.
	Message string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Kind)
	}
	return e.Kind.Error()
}

func (e *ValidationError) Unwrap() []error {
	return []error{ErrValidation, e.Kind}
}

func missingField(field, msg string) error {
	return &ValidationError{Kind: ErrMissingRequiredField, Field: field, Message: msg}
}

func invalidNumber(field, msg string) error {
	return &ValidationError{Kind: ErrInvalidNumber, Field: field, Message: msg}
}
