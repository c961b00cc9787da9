// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-shop-admin/internal/utils"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns the handler registered with
// [chi.Mux.MethodNotAllowed].
//
// A path that exists but does not serve the requested method is answered
// with 404 and a JSON error body, hiding which methods a route supports.
// Requests the router can in fact match are passed back to it.
//
// Usage:
//
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			router.ServeHTTP(w, r)
			return
		}

		notFound(w, r)
	}
}

// notFound is the JSON 404 used for unknown paths and unsupported methods.
func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, "Not found", http.StatusNotFound)
}
