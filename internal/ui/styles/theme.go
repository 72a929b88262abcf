// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Glamour standard style names matching each mode.
const (
	GlamourDark  = "dark"
	GlamourLight = "light"
)

// Theme holds all the styled components for the application.
type Theme struct {
	IsDark       bool
	ColorProfile termenv.Profile

	// Layout dimensions
	Width  int
	Height int

	// ==========================================================================
	// HEADER STYLES
	// ==========================================================================

	Header      lipgloss.Style
	HeaderTitle lipgloss.Style
	Greeting    lipgloss.Style
	Description lipgloss.Style

	// ==========================================================================
	// TOP BAR STYLES
	// ==========================================================================

	TopBar        lipgloss.Style
	ModelLabel    lipgloss.Style
	ModelSelected lipgloss.Style
	ModelOption   lipgloss.Style
	ThemeToggle   lipgloss.Style

	// ==========================================================================
	// MESSAGE STYLES
	// ==========================================================================

	UserBubble      lipgloss.Style
	AssistantBubble lipgloss.Style
	SenderName      lipgloss.Style
	Timestamp       lipgloss.Style
	Typing          lipgloss.Style

	// ==========================================================================
	// VIDEO STYLES
	// ==========================================================================

	VideoEntry         lipgloss.Style
	VideoEntrySelected lipgloss.Style
	VideoPanel         lipgloss.Style
	VideoPanelTitle    lipgloss.Style
	VideoPanelURL      lipgloss.Style

	// ==========================================================================
	// INPUT AND STATUS STYLES
	// ==========================================================================

	InputContainer lipgloss.Style
	InputDisabled  lipgloss.Style
	StatusBar      lipgloss.Style
	ShortcutKey    lipgloss.Style
	ShortcutDesc   lipgloss.Style
	Notice         lipgloss.Style
	ErrorText      lipgloss.Style
}

// NewTheme creates a theme for the given mode. Call Apply to make the
// adaptive colors resolve for that mode.
func NewTheme(isDark bool) *Theme {
	t := &Theme{
		IsDark:       isDark,
		ColorProfile: termenv.ColorProfile(),
	}
	t.initStyles()
	return t
}

// Apply sets the process-wide background flag so every AdaptiveColor
// resolves to this theme's variant.
func (t *Theme) Apply() {
	lipgloss.SetHasDarkBackground(t.IsDark)
}

// Toggled returns a theme for the opposite mode, already applied.
func (t *Theme) Toggled() *Theme {
	next := NewTheme(!t.IsDark)
	next.SetSize(t.Width, t.Height)
	next.Apply()
	return next
}

// GlamourStyle returns the Markdown style name for this mode.
func (t *Theme) GlamourStyle() string {
	if t.IsDark {
		return GlamourDark
	}
	return GlamourLight
}

// Mode returns "dark" or "light".
func (t *Theme) Mode() string {
	if t.IsDark {
		return ThemeDark
	}
	return ThemeLight
}

func (t *Theme) initStyles() {
	// Header
	t.Header = lipgloss.NewStyle().
		Background(SurfaceDim).
		Padding(0, 2).
		Align(lipgloss.Center)

	t.HeaderTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Indigo)

	t.Greeting = lipgloss.NewStyle().
		Bold(true).
		Foreground(Pink)

	t.Description = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Italic(true)

	// Top bar
	t.TopBar = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.ModelLabel = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.ModelSelected = lipgloss.NewStyle().
		Foreground(TextInverse).
		Background(Pink).
		Bold(true).
		Padding(0, 1)

	t.ModelOption = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Padding(0, 1)

	t.ThemeToggle = lipgloss.NewStyle().
		Foreground(Amber).
		Padding(0, 1)

	// Messages
	t.UserBubble = lipgloss.NewStyle().
		Foreground(UserBubbleFg).
		Background(UserBubbleBg).
		Padding(0, 2).
		MarginLeft(4)

	t.AssistantBubble = lipgloss.NewStyle().
		Foreground(TextPrimary).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(AssistantBubbleBorder).
		Padding(0, 1).
		MarginRight(4)

	t.SenderName = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextSecondary)

	t.Timestamp = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.Typing = lipgloss.NewStyle().
		Foreground(Pink)

	// Videos
	t.VideoEntry = lipgloss.NewStyle().
		Foreground(Teal).
		PaddingLeft(2)

	t.VideoEntrySelected = lipgloss.NewStyle().
		Foreground(Teal).
		Background(SelectionBg).
		Bold(true).
		PaddingLeft(2)

	t.VideoPanel = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Teal).
		Padding(0, 1)

	t.VideoPanelTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Teal)

	t.VideoPanelURL = lipgloss.NewStyle().
		Foreground(LinkColor).
		Underline(true)

	// Input and status
	t.InputContainer = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(Overlay)

	t.InputDisabled = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(Overlay).
		Foreground(TextMuted)

	t.StatusBar = lipgloss.NewStyle().
		Background(SurfaceDim).
		Foreground(TextSecondary).
		Padding(0, 1)

	t.ShortcutKey = lipgloss.NewStyle().
		Foreground(Indigo).
		Bold(true)

	t.ShortcutDesc = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.Notice = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	t.ErrorText = lipgloss.NewStyle().
		Foreground(Rose)
}

// SetSize updates the theme dimensions for responsive layouts.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}

// GetLayoutMode returns the current layout mode based on width.
func (t *Theme) GetLayoutMode() LayoutMode {
	if t.Width < 60 {
		return LayoutNarrow
	}
	if t.Width < 100 {
		return LayoutMedium
	}
	return LayoutWide
}

// LayoutMode represents the current responsive layout mode.
type LayoutMode int

const (
	LayoutNarrow LayoutMode = iota // < 60 columns
	LayoutMedium                   // 60-100 columns
	LayoutWide                     // > 100 columns
)
