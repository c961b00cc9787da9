// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the admin console runtime.
//
// It restores a previous session, runs the background session flush and the
// terminal UI, and releases local storage when the operator quits.
package client
