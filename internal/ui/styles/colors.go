// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for animastery.
// All colors use Lip Gloss AdaptiveColor so a theme switch only needs to
// flip the renderer's background flag.
package styles

import "github.com/charmbracelet/lipgloss"

// =============================================================================
// PRIMARY ACCENT COLORS
// =============================================================================

// Indigo - Primary accent, header title, user bubbles
var Indigo = lipgloss.AdaptiveColor{Light: "#4F46E5", Dark: "#818CF8"}

// Pink - Brand color, greeting, selections
var Pink = lipgloss.AdaptiveColor{Light: "#DB2777", Dark: "#F472B6"}

// Teal - Video entries and the video panel
var Teal = lipgloss.AdaptiveColor{Light: "#0D9488", Dark: "#2DD4BF"}

// =============================================================================
// SEMANTIC COLORS
// =============================================================================

// Rose - Errors
var Rose = lipgloss.AdaptiveColor{Light: "#E11D48", Dark: "#FB7185"}

// Amber - Warnings, theme toggle sun
var Amber = lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#FBBF24"}

// Emerald - Success states
var Emerald = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34D399"}

// =============================================================================
// SURFACE COLORS
// =============================================================================

// SurfaceDim - Header, top bar and status bar backgrounds
var SurfaceDim = lipgloss.AdaptiveColor{Light: "#F3F4F6", Dark: "#111827"}

// Overlay - Borders, separators
var Overlay = lipgloss.AdaptiveColor{Light: "#E5E7EB", Dark: "#374151"}

// =============================================================================
// TEXT COLORS
// =============================================================================

// TextPrimary - Main body text
var TextPrimary = lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#F9FAFB"}

// TextSecondary - Labels, description text
var TextSecondary = lipgloss.AdaptiveColor{Light: "#4B5563", Dark: "#D1D5DB"}

// TextMuted - Hints, timestamps
var TextMuted = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"}

// TextInverse - Text on colored backgrounds
var TextInverse = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#111827"}

// =============================================================================
// MESSAGE BUBBLE COLORS
// =============================================================================

var UserBubbleBg = lipgloss.AdaptiveColor{Light: "#E0E7FF", Dark: "#3730A3"}
var UserBubbleFg = lipgloss.AdaptiveColor{Light: "#312E81", Dark: "#EEF2FF"}

var AssistantBubbleBorder = lipgloss.AdaptiveColor{Light: "#F9A8D4", Dark: "#BE185D"}

// SelectionBg highlights the selected video entry
var SelectionBg = lipgloss.AdaptiveColor{Light: "#CCFBF1", Dark: "#134E4A"}

// LinkColor - Accessible link color with sufficient contrast
var LinkColor = lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#60A5FA"}

// =============================================================================
// ACCESSIBILITY: Shapes alongside colors
// =============================================================================

// StatusIndicatorSet contains text indicators for status states.
type StatusIndicatorSet struct {
	Success string
	Error   string
	Warning string
	Info    string
}

// StatusIndicators are ASCII so they survive any terminal.
var StatusIndicators = StatusIndicatorSet{
	Success: "[OK]",
	Error:   "[X]",
	Warning: "[!]",
	Info:    "[i]",
}

// RenderSuccess renders a success message with its indicator.
func RenderSuccess(message string) string {
	return lipgloss.NewStyle().Foreground(Emerald).Bold(true).
		Render(StatusIndicators.Success + " " + message)
}

// RenderError renders an error message with its indicator.
func RenderError(message string) string {
	return lipgloss.NewStyle().Foreground(Rose).Bold(true).
		Render(StatusIndicators.Error + " " + message)
}

// RenderWarning renders a warning message with its indicator.
func RenderWarning(message string) string {
	return lipgloss.NewStyle().Foreground(Amber).Bold(true).
		Render(StatusIndicators.Warning + " " + message)
}

// RenderInfo renders an info message with its indicator.
func RenderInfo(message string) string {
	return lipgloss.NewStyle().Foreground(LinkColor).Bold(true).
		Render(StatusIndicators.Info + " " + message)
}

// RenderStatus renders success or failure.
func RenderStatus(success bool, message string) string {
	if success {
		return RenderSuccess(message)
	}
	return RenderError(message)
}

// RenderLink renders text as an underlined link.
func RenderLink(text string) string {
	return lipgloss.NewStyle().Foreground(LinkColor).Underline(true).Render(text)
}
