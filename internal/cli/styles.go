// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// styles.go - Shared styling for CLI commands.
//
// Colors come from the TUI palette and are dropped automatically for
// non-TTY output.

package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/animastery-tui/internal/ui/styles"
)

func init() {
	lipgloss.SetColorProfile(outputProfile())
}

// =============================================================================
// SHARED STYLES FOR ALL CLI COMMANDS
// =============================================================================

var (
	// TitleStyle is used for command titles
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.Indigo).
			MarginBottom(1)

	// LabelStyle is used for field labels
	LabelStyle = lipgloss.NewStyle().
			Foreground(styles.TextMuted).
			Width(18)

	// ValueStyle is used for regular values
	ValueStyle = lipgloss.NewStyle().
			Foreground(styles.TextPrimary)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(styles.Emerald).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(styles.Rose).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(styles.Amber)

	// DimStyle is used for hints and secondary information
	DimStyle = lipgloss.NewStyle().
			Foreground(styles.TextMuted)

	// PromptStyle is the REPL prompt
	PromptStyle = lipgloss.NewStyle().
			Foreground(styles.Pink).
			Bold(true)

	// SenderStyle labels replies in the REPL
	SenderStyle = lipgloss.NewStyle().
			Foreground(styles.Teal).
			Bold(true)
)

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// RenderStatus renders a status indicator with appropriate color.
func RenderStatus(status string) string {
	switch strings.ToLower(status) {
	case "ok", "available", "reachable":
		return SuccessStyle.Render("[OK]")
	case "error", "fail", "unavailable", "unreachable":
		return ErrorStyle.Render("[FAIL]")
	case "warning", "warn":
		return WarningStyle.Render("[WARN]")
	default:
		return DimStyle.Render("[" + strings.ToUpper(status) + "]")
	}
}

// RenderLabel renders a label padded to the label column.
func RenderLabel(label string) string {
	return LabelStyle.Render(label)
}

// renderField renders one "label value" line.
func renderField(label, value string) string {
	return RenderLabel(label) + ValueStyle.Render(value)
}
