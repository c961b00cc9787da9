package stubapi

import (
	"errors"
	"strings"
)

var (
	ErrInvalidDataProvided = errors.New("username and password are required")
	ErrWrongCredentials    = errors.New("invalid username or password")
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrTokenIsExpiredOrInvalid is returned by ParseToken for any token that
	// fails signature, issuer or expiry checks.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrProductNotFound = errors.New("Product not found")
	ErrOrderNotFound   = errors.New("Order not found")
	ErrInvalidStatus   = errors.New("Invalid status")

	ErrAdminPasswordNotSpecified = errors.New("admin password is not specified")

	// ErrValidation is matched by every *ValidationError.
	ErrValidation = errors.New("validation failed")
)

// ValidationError lists every problem found in a product payload. The HTTP
// layer renders it as an {"errors": [...]} body.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Problems, ", ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
