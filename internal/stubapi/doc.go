// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package stubapi implements the business side of the development backend
// that speaks the shop admin REST contract.
//
// It keeps products and orders in memory, checks the single admin account
// against a bcrypt hash and issues HS256 tokens. The HTTP surface lives in
// internal/handler/http; this package holds no transport code.
package stubapi
