// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/animastery-tui/internal/ui/styles"
)

// =============================================================================
// HEADER COMPONENT
// =============================================================================

const (
	AppTitle       = "Animastery AI Assistant"
	AppGreeting    = "Hello, Animator!"
	AppDescription = "Ask me anything about animation styles, techniques, or history."
)

// Header renders the title block and, beneath it, the top bar holding the
// model selector and the theme toggle.
type Header struct {
	Title       string
	Greeting    string
	Description string
	Width       int

	// Compact drops the greeting and description (short terminals)
	Compact bool

	theme *styles.Theme
}

// NewHeader creates a Header with the application copy.
func NewHeader(theme *styles.Theme) *Header {
	return &Header{
		Title:       AppTitle,
		Greeting:    AppGreeting,
		Description: AppDescription,
		Width:       80,
		theme:       theme,
	}
}

// SetWidth updates the header width
func (h *Header) SetWidth(width int) {
	h.Width = width
}

// SetTheme swaps the theme after a toggle.
func (h *Header) SetTheme(theme *styles.Theme) {
	h.theme = theme
}

// View renders the title block.
func (h *Header) View() string {
	width := h.Width
	if width < 20 {
		width = 20
	}

	lines := []string{h.theme.HeaderTitle.Render(h.Title)}
	if !h.Compact {
		lines = append(lines,
			h.theme.Greeting.Render(h.Greeting),
			h.theme.Description.Render(h.Description),
		)
	}

	return h.theme.Header.Width(width).Render(strings.Join(lines, "\n"))
}

// RenderTopBar lays out the model selector on the left and the theme
// toggle on the right.
func RenderTopBar(theme *styles.Theme, width int, selector, toggle string) string {
	inner := width - 2
	content := inner - theme.TopBar.GetHorizontalPadding()
	gap := content - lipgloss.Width(selector) - lipgloss.Width(toggle)
	if gap < 1 {
		// Not enough room for both on one line
		return theme.TopBar.Width(inner).Render(selector + "\n" + toggle)
	}
	return theme.TopBar.Width(inner).Render(selector + strings.Repeat(" ", gap) + toggle)
}
