// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"github.com/charmbracelet/bubbles/key"
)

// =============================================================================
// KEY MAP DEFINITION
// =============================================================================

// KeyMap defines all keyboard bindings for the chat interface.
type KeyMap struct {
	Submit      key.Binding
	Newline     key.Binding
	ToggleTheme key.Binding
	CycleModel  key.Binding
	NextVideo   key.Binding
	PrevVideo   key.Binding
	OpenVideo   key.Binding
	CloseVideo  key.Binding
	OpenBrowser key.Binding
	CopyLink    key.Binding
	PageUp      key.Binding
	PageDown    key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the default key bindings for the chat interface.
// Most terminals cannot report shift+enter, so alt+enter and ctrl+j also
// insert a newline.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "send message"),
		),
		Newline: key.NewBinding(
			key.WithKeys("shift+enter", "alt+enter", "ctrl+j"),
			key.WithHelp("S-Enter/M-Enter/C-j", "new line"),
		),
		ToggleTheme: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("C-t", "toggle light/dark theme"),
		),
		CycleModel: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("C-r", "next model"),
		),
		NextVideo: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("Tab", "select next video"),
		),
		PrevVideo: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-Tab", "select previous video"),
		),
		OpenVideo: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("C-o", "watch selected video"),
		),
		CloseVideo: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "close video"),
		),
		OpenBrowser: key.NewBinding(
			key.WithKeys("ctrl+b"),
			key.WithHelp("C-b", "open video in browser"),
		),
		CopyLink: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("C-y", "copy video link"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("PgUp", "scroll up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("PgDn", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("C-c", "quit"),
		),
	}
}

// ShortHelp returns the most commonly used shortcuts.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Newline, k.ToggleTheme, k.Quit}
}

// FullHelp returns all bindings grouped for the help block.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.Newline, k.PageUp, k.PageDown},
		{k.NextVideo, k.PrevVideo, k.OpenVideo, k.CloseVideo, k.OpenBrowser, k.CopyLink},
		{k.CycleModel, k.ToggleTheme, k.Quit},
	}
}
