// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"html"
	"strings"
	"unicode"

	"github.com/microcosm-cc/bluemonday"
)

// textPolicy strips every HTML element from server-supplied text.
var textPolicy = bluemonday.StrictPolicy()

// clean makes a server-supplied string safe to print: markup is removed,
// entities are decoded back to plain characters, and control characters
// (including terminal escape sequences) are dropped.
func clean(s string) string {
	if s == "" {
		return ""
	}

	s = html.UnescapeString(textPolicy.Sanitize(s))
	return strings.Map(func(r rune) rune {
		if r == '\t' || r == '\n' {
			return ' '
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}
