// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/animastery-tui/internal/ui/styles"
	"github.com/jeranaias/animastery-tui/internal/util"
)

// Shortcut is a key hint shown in the status bar.
type Shortcut struct {
	Key  string
	Desc string
}

// RenderShortcuts renders hints as "key desc" pairs separated by dots.
func RenderShortcuts(theme *styles.Theme, shortcuts []Shortcut) string {
	parts := make([]string, len(shortcuts))
	for i, s := range shortcuts {
		parts[i] = theme.ShortcutKey.Render(s.Key) + " " + theme.ShortcutDesc.Render(s.Desc)
	}
	return strings.Join(parts, theme.ShortcutDesc.Render(" · "))
}

// StatusBar is the bottom line with context-dependent key hints and an
// optional transient notice.
type StatusBar struct {
	Width     int
	Loading   bool
	HasVideos bool
	PanelOpen bool
	Notice    string

	theme *styles.Theme
}

// NewStatusBar creates a status bar.
func NewStatusBar(theme *styles.Theme) *StatusBar {
	return &StatusBar{Width: 80, theme: theme}
}

// SetTheme swaps the theme after a toggle.
func (s *StatusBar) SetTheme(theme *styles.Theme) {
	s.theme = theme
}

// Shortcuts returns the hints for the current state.
func (s *StatusBar) Shortcuts() []Shortcut {
	var out []Shortcut
	if !s.Loading {
		out = append(out, Shortcut{Key: "enter", Desc: "send"}, Shortcut{Key: "alt+enter", Desc: "newline"})
	}
	if s.HasVideos {
		out = append(out, Shortcut{Key: "tab", Desc: "select video"}, Shortcut{Key: "ctrl+o", Desc: "watch"})
	}
	if s.PanelOpen {
		out = append(out, Shortcut{Key: "esc", Desc: "close video"})
	}
	out = append(out,
		Shortcut{Key: "ctrl+r", Desc: "model"},
		Shortcut{Key: "ctrl+t", Desc: "theme"},
		Shortcut{Key: "/help", Desc: "commands"},
		Shortcut{Key: "ctrl+c", Desc: "quit"},
	)
	return out
}

// View renders the bar. A notice replaces the hints.
func (s *StatusBar) View() string {
	width := s.Width
	if width < 10 {
		width = 10
	}

	var content string
	if s.Notice != "" {
		content = s.theme.Notice.Render(util.TruncateWidth(s.Notice, width-2))
	} else {
		content = RenderShortcuts(s.theme, s.Shortcuts())
		if lipgloss.Width(content) > width-2 {
			// Styled text cannot be cut safely; fall back to plain hints
			var plain []string
			for _, sc := range s.Shortcuts() {
				plain = append(plain, sc.Key+" "+sc.Desc)
			}
			content = util.TruncateWidth(strings.Join(plain, " · "), width-2)
		}
	}
	return s.theme.StatusBar.Width(width).Render(content)
}
