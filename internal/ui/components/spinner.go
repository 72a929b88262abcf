// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/animastery-tui/internal/ui/styles"
)

// =============================================================================
// TYPING INDICATOR
// =============================================================================

// TypingText is shown next to the animation while a reply is pending.
const TypingText = "Animastery AI is typing"

// TypingIndicator animates while the assistant reply is pending.
type TypingIndicator struct {
	spinner spinner.Model
	theme   *styles.Theme
}

// NewTypingIndicator creates the indicator using the typing dots frames.
func NewTypingIndicator(theme *styles.Theme) TypingIndicator {
	s := spinner.New()
	s.Spinner = spinner.Spinner{
		Frames: styles.TypingDots.Frames,
		FPS:    styles.TypingDots.Duration(),
	}
	return TypingIndicator{spinner: s, theme: theme}
}

// SetTheme swaps the theme after a toggle.
func (t *TypingIndicator) SetTheme(theme *styles.Theme) {
	t.theme = theme
}

// Tick starts the animation.
func (t TypingIndicator) Tick() tea.Msg {
	return t.spinner.Tick()
}

// Update advances the animation on its own tick messages.
func (t TypingIndicator) Update(msg tea.Msg) (TypingIndicator, tea.Cmd) {
	var cmd tea.Cmd
	t.spinner, cmd = t.spinner.Update(msg)
	return t, cmd
}

// View renders the indicator.
func (t TypingIndicator) View() string {
	return t.theme.Typing.Render(TypingText + " " + t.spinner.View())
}
