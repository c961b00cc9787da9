package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-shop-admin/internal/adapter"
)

// authorize returns the bearer header for an authorized call, or
// [ErrPermissionDenied] when no token is held. No request is made in the
// latter case.
func authorize(session ClientSessionService) (string, error) {
	header := session.AuthHeader()
	if header == "" {
		return "", ErrPermissionDenied
	}
	return header, nil
}

// authorizedError maps an authorized call's failure and drops the session
// when the backend no longer accepts the token.
func authorizedError(ctx context.Context, session ClientSessionService, err error) error {
	if errors.Is(err, adapter.ErrUnauthorized) {
		session.Invalidate(ctx, err.Error())
	}
	return mapAdapterError(err)
}
