// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// Markdown renders assistant text. The glamour renderer is rebuilt only
// when the style or wrap width changes.
type Markdown struct {
	style    string
	width    int
	renderer *glamour.TermRenderer
}

// NewMarkdown creates a renderer for a glamour standard style ("dark" or
// "light") wrapping at width.
func NewMarkdown(style string, width int) *Markdown {
	m := &Markdown{}
	m.Configure(style, width)
	return m
}

// Configure switches style or width, rebuilding the renderer if needed.
func (m *Markdown) Configure(style string, width int) {
	if width < 20 {
		width = 20
	}
	if m.renderer != nil && m.style == style && m.width == width {
		return
	}

	m.style = style
	m.width = width
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		// Fallback to plain text
		m.renderer = nil
		return
	}
	m.renderer = r
}

// Style returns the active glamour style name.
func (m *Markdown) Style() string {
	return m.style
}

// Render renders content, returning it unchanged if rendering fails.
func (m *Markdown) Render(content string) string {
	if m == nil || m.renderer == nil {
		return content
	}
	out, err := m.renderer.Render(content)
	if err != nil {
		return content
	}
	return strings.Trim(out, "\n")
}
