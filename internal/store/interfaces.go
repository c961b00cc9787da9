package store

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SessionStore is the durable key/value slot holding the console's bearer
// token between runs. At most one token is stored.
type SessionStore interface {
	// LoadToken returns the stored token or [ErrLocalSessionNotFound].
	LoadToken(ctx context.Context) (string, error)
	// SaveToken replaces the stored token.
	SaveToken(ctx context.Context, token string) error
	// DeleteToken removes the stored token. Deleting a missing token is not
	// an error.
	DeleteToken(ctx context.Context) error
}

// ErrorClassificator decides whether a failed statement was transient.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
