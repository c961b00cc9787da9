// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoAddressSpecified = errors.New("no http address specified")
	errNoHandlerSpecified = errors.New("no http handler specified")
)
