// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the catalog rules the stub API enforces on
// product writes.
//
// A [Validator] takes the value to check and, optionally, the names of the
// rules to run. With no names the full default set for that type applies.
// Broken rules come back as [Violations], one message per rule, in the same
// wording the API sends to clients.
package validators

import "context"

// Validator checks a payload. fields restricts the check to the named rules;
// an unknown name yields ErrUnknownField and an unknown payload type
// ErrUnsupportedType.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
