// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import "github.com/jeranaias/animastery-tui/internal/ui/styles"

// =============================================================================
// THEME TOGGLE
// =============================================================================

const (
	SunIcon  = "☀"
	MoonIcon = "🌙"
)

// ThemeToggleIcon returns the icon for the action the toggle performs:
// the sun while dark mode is active, the moon otherwise.
func ThemeToggleIcon(isDark bool) string {
	if isDark {
		return SunIcon
	}
	return MoonIcon
}

// ThemeToggleLabel returns the accessible label for the toggle.
func ThemeToggleLabel(isDark bool) string {
	if isDark {
		return "Switch to light theme"
	}
	return "Switch to dark theme"
}

// RenderThemeToggle renders the toggle. It holds no state; the caller
// owns the mode and reacts to the toggle key.
func RenderThemeToggle(isDark bool, theme *styles.Theme, compact bool) string {
	text := ThemeToggleIcon(isDark)
	if !compact {
		text += " " + ThemeToggleLabel(isDark)
	}
	return theme.ThemeToggle.Render(text)
}
