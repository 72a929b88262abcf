// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/unicode/norm"
)

// TruncateWidth truncates s to at most maxWidth terminal cells, appending
// an ellipsis when it had to cut. Wide runes (CJK, emoji) count as two cells.
func TruncateWidth(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= 3 {
		return runewidth.Truncate(s, maxWidth, "")
	}
	return runewidth.Truncate(s, maxWidth, "...")
}

// StringWidth returns the number of terminal cells s occupies.
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}

// CommandFields splits a slash command line into words in Unicode NFC
// form, so ids pasted in decomposed form still match.
func CommandFields(line string) []string {
	return strings.Fields(norm.NFC.String(line))
}

// IsBlank reports whether s contains only whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
