// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-shop-admin/internal/adapter"
)

// Operator-facing fallbacks for failures that carry no server message.
const (
	MsgLoginRequired  = "Login required"
	MsgNetworkError   = "Network error, check the API address"
	MsgNotConfirmed   = "Cancelled"
	MsgInvalidLogin   = "Invalid credentials"
	MsgEnterCreds     = "Enter credentials"
	MsgNamePriceReq   = "Name and price required"
	MsgRefreshFailed  = "Saved, but the list could not be refreshed"
	MsgSessionExpired = "Session expired, please log in again"
	MsgBadResponse    = "Unexpected response from the server"
)

// mapAdapterError translates the adapter's transport error into the service
// taxonomy. The original error stays in the chain so its message survives.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	var httpErr *adapter.HTTPError
	switch {
	case errors.Is(err, adapter.ErrRequestFailed), errors.Is(err, adapter.ErrBadResponse):
		return fmt.Errorf("%w: %w", ErrTransport, err)

	case errors.Is(err, adapter.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)

	case errors.Is(err, adapter.ErrUnauthorized), errors.Is(err, adapter.ErrForbidden):
		return fmt.Errorf("%w: %w", ErrPermissionDenied, err)

	case errors.Is(err, adapter.ErrBadRequest),
		errors.Is(err, adapter.ErrUnprocessableEntity),
		errors.Is(err, adapter.ErrConflict):
		msg := err.Error()
		if errors.As(err, &httpErr) {
			msg = httpErr.Message
		}
		return &ValidationError{Kind: ErrServerRejected, Message: msg}
	}

	return fmt.Errorf("%w: %w", ErrTransport, err)
}

// OperatorMessage returns the short text the presentation layer should show
// for err.
func OperatorMessage(err error) string {
	if err == nil {
		return ""
	}

	var (
		authErr       *AuthError
		validationErr *ValidationError
		httpErr       *adapter.HTTPError
	)
	switch {
	case errors.As(err, &authErr):
		return authErr.Error()
	case errors.As(err, &validationErr):
		return validationErr.Error()
	case errors.Is(err, ErrRefreshFailed):
		return MsgRefreshFailed
	case errors.As(err, &httpErr):
		if errors.Is(err, adapter.ErrUnauthorized) && !httpErr.FromBody {
			return MsgSessionExpired
		}
		return httpErr.Message
	case errors.Is(err, ErrPermissionDenied):
		return MsgLoginRequired
	case errors.Is(err, ErrNotConfirmed):
		return MsgNotConfirmed
	case errors.Is(err, adapter.ErrBadResponse):
		return MsgBadResponse
	case errors.Is(err, ErrTransport):
		return MsgNetworkError
	}

	return err.Error()
}
