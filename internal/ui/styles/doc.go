// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for the animastery TUI.

# Color System (colors.go)

Every color is a Lip Gloss AdaptiveColor with a light and a dark variant.
Nothing else in the application picks colors directly, so switching theme
is a matter of telling Lip Gloss which background to assume.

  - Indigo - Header title and user messages
  - Pink - Greeting, selected model, typing indicator
  - Teal - Video entries and the video panel
  - Rose, Amber, Emerald - Error, warning and success text

# Theme System (theme.go)

Theme carries the mode and the derived styles. Apply makes the mode
process-wide; Toggled builds and applies the opposite mode.

	theme := styles.NewTheme(styles.InitialDark(prefs, styles.DetectDark))
	theme.Apply()

# Preference (preference.go)

The chosen mode is stored under the "theme" key as "dark" or "light".
Without a stored value the terminal background decides.
*/
package styles
