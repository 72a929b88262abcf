// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"log/slog"

	"github.com/muesli/termenv"

	"github.com/jeranaias/animastery-tui/internal/storage"
)

// Persisted theme preference.
const (
	ThemeKey   = "theme"
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// DetectDark reports whether the terminal background is dark.
func DetectDark() bool {
	return termenv.HasDarkBackground()
}

// InitialDark decides the starting mode. A stored "dark" or "light" wins;
// anything else (missing, unreadable, unrecognized) falls back to detect.
func InitialDark(prefs storage.Prefs, detect func() bool) bool {
	if prefs != nil {
		value, ok, err := prefs.Get(ThemeKey)
		if err != nil {
			slog.Warn("failed to read theme preference", "error", err)
		}
		if ok {
			switch value {
			case ThemeDark:
				return true
			case ThemeLight:
				return false
			}
			slog.Warn("ignoring unrecognized theme preference", "value", value)
		}
	}
	if detect == nil {
		detect = DetectDark
	}
	return detect()
}

// PersistDark stores the mode as "dark" or "light".
func PersistDark(prefs storage.Prefs, isDark bool) error {
	if prefs == nil {
		return nil
	}
	value := ThemeLight
	if isDark {
		value = ThemeDark
	}
	return prefs.Set(ThemeKey, value)
}
