// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// ErrorResponse is the JSON error body the backend may return with a
// non-success status. Either Error or Errors (or neither) is populated.
type ErrorResponse struct {
	// Error is a single human-readable message.
	Error string `json:"error,omitempty"`

	// Errors is a list of validation messages.
	Errors []string `json:"errors,omitempty"`
}

// Message returns the text that should be surfaced to the operator, or an
// empty string when the body carried nothing usable.
func (e ErrorResponse) Message() string {
	if msg := strings.TrimSpace(e.Error); msg != "" {
		return msg
	}

	parts := make([]string, 0, len(e.Errors))
	for _, s := range e.Errors {
		if s = strings.TrimSpace(s); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}

// Ack is the acknowledgement returned by DELETE /products/{id}.
type Ack struct {
	Message string `json:"message,omitempty"`
	ID      string `json:"id,omitempty"`
}
