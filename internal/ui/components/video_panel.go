// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/jeranaias/animastery-tui/internal/ui/styles"
	"github.com/jeranaias/animastery-tui/internal/util"
)

// VideoPanelContent is what the panel shows for the open video.
type VideoPanelContent struct {
	Title      string
	EmbedURL   string
	WatchURL   string
	Permission string
}

// VideoPanelView renders the embedded-video panel. Terminals cannot play
// the player itself, so the panel shows where it lives and how to open it.
type VideoPanelView struct {
	Width int
	theme *styles.Theme
}

// NewVideoPanelView creates a panel renderer.
func NewVideoPanelView(theme *styles.Theme, width int) *VideoPanelView {
	return &VideoPanelView{Width: width, theme: theme}
}

// SetTheme swaps the theme after a toggle.
func (v *VideoPanelView) SetTheme(theme *styles.Theme) {
	v.theme = theme
}

// View renders the panel for c.
func (v *VideoPanelView) View(c VideoPanelContent) string {
	inner := v.Width - 4
	if inner < 20 {
		inner = 20
	}

	title := c.Title
	if title == "" {
		title = "Video"
	}

	lines := []string{
		v.theme.VideoPanelTitle.Render(util.TruncateWidth(title, inner)),
		"Player: " + v.theme.VideoPanelURL.Render(c.EmbedURL),
		"Watch:  " + v.theme.VideoPanelURL.Render(c.WatchURL),
	}
	if c.Permission != "" {
		lines = append(lines, v.theme.Timestamp.Render(util.TruncateWidth("Allows: "+c.Permission, inner)))
	}
	lines = append(lines, RenderShortcuts(v.theme, []Shortcut{
		{Key: "ctrl+b", Desc: "open in browser"},
		{Key: "ctrl+y", Desc: "copy link"},
		{Key: "esc", Desc: "close"},
	}))

	return v.theme.VideoPanel.Width(inner + 2).Render(strings.Join(lines, "\n"))
}
