// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-shop-admin/internal/logger"
	"github.com/MKhiriev/go-shop-admin/internal/stubapi"
	"github.com/MKhiriev/go-shop-admin/internal/utils"
)

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned when the request carries no
	// "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("Missing Authorization header")

	// ErrInvalidToken is returned for a bearer token that does not verify.
	ErrInvalidToken = errors.New("Invalid or expired token")

	// ErrInvalidJSON is reported for request bodies that cannot be decoded.
	ErrInvalidJSON = errors.New("Invalid JSON")
)

var errorStatusMap = map[error]int{
	stubapi.ErrInvalidDataProvided:     http.StatusBadRequest,
	stubapi.ErrWrongCredentials:        http.StatusUnauthorized,
	stubapi.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	stubapi.ErrProductNotFound:         http.StatusNotFound,
	stubapi.ErrOrderNotFound:           http.StatusNotFound,
	stubapi.ErrInvalidStatus:           http.StatusBadRequest,
	stubapi.ErrValidation:              http.StatusUnprocessableEntity,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeServiceError renders err as a JSON error body. Validation failures
// list every problem; unknown errors hide their text behind the status text.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	var vErr *stubapi.ValidationError
	switch {
	case errors.As(err, &vErr):
		utils.WriteErrors(w, vErr.Problems, status)
	case status == http.StatusInternalServerError:
		logger.FromRequest(r).Err(err).Msg("unexpected service error")
		utils.WriteError(w, http.StatusText(status), status)
	default:
		utils.WriteError(w, err.Error(), status)
	}
}
