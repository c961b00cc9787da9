package adapter

import (
	"errors"
	"fmt"
)

// Transport-level failure kinds. Every non-2xx response is returned as an
// [*HTTPError] whose Kind is one of these values, so callers can use
// [errors.Is].
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrUnprocessableEntity = errors.New("unprocessable entity")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnexpectedStatus    = errors.New("unexpected status")

	// ErrRequestFailed wraps errors where no HTTP response was received
	// (connection refused, DNS failure, timeout, cancelled context).
	ErrRequestFailed = errors.New("request failed")

	// ErrBadResponse wraps a 2xx response whose body could not be decoded.
	ErrBadResponse = errors.New("unreadable response body")
)

// HTTPError describes a non-success HTTP response.
type HTTPError struct {
	// StatusCode is the HTTP status of the response.
	StatusCode int
	// Message is the operator-facing text: the body's "error" field, the
	// body's "errors" list joined, or a generic fallback.
	Message string
	// Kind is the sentinel matching StatusCode.
	Kind error
	// FromBody reports whether Message came from the response body.
	FromBody bool
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s (http %d): %s", e.Kind, e.StatusCode, e.Message)
}

func (e *HTTPError) Unwrap() error {
	return e.Kind
}
