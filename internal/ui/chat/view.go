// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/animastery-tui/internal/ui/components"
	"github.com/jeranaias/animastery-tui/internal/video"
)

// View renders the chat.
func (m Model) View() string {
	parts := []string{
		m.header.View(),
		m.renderTopBar(),
		m.viewport.View(),
	}
	parts = append(parts, m.chrome()...)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// chrome renders everything below the transcript.
func (m Model) chrome() []string {
	var parts []string
	if m.loading {
		parts = append(parts, m.typing.View())
	}
	if m.panel.Visible {
		parts = append(parts, m.renderPanel())
	}
	if m.info != "" {
		parts = append(parts, m.theme.Notice.Render(m.info))
	}
	parts = append(parts, m.renderInput(), m.statusBar.View())
	return parts
}

func (m Model) renderTopBar() string {
	selector := components.NewModelSelector(m.theme, m.selectedModel).View()
	compact := m.width < 70
	toggle := components.RenderThemeToggle(m.theme.IsDark, m.theme, compact)
	return components.RenderTopBar(m.theme, m.width, selector, toggle)
}

func (m Model) renderPanel() string {
	content := components.VideoPanelContent{Permission: video.PermissionPolicy}
	if m.videos != nil {
		content.EmbedURL = m.videos.EmbedURL(m.panel.VideoID)
		content.WatchURL = m.videos.WatchURL(m.panel.VideoID)
	}
	for _, e := range m.conversation.VideoEntries() {
		if e.Video.VideoID == m.panel.VideoID {
			content.Title = e.Video.Label()
			break
		}
	}
	if content.Title == "" {
		content.Title = "Video " + m.panel.VideoID
	}
	return m.panelView.View(content)
}

func (m Model) renderInput() string {
	if m.loading {
		return m.theme.InputDisabled.Width(m.width).Render(m.input.View())
	}
	return m.theme.InputContainer.Width(m.width).Render(m.input.View())
}

// renderTranscript renders every message, highlighting the selected video.
func (m Model) renderTranscript() string {
	msgs := m.conversation.Messages()
	if len(msgs) == 0 {
		return m.theme.Notice.Render("Type a question below and press Enter.")
	}

	selMsg, selVideo := -1, -1
	if e, ok := m.SelectedVideo(); ok {
		selMsg, selVideo = e.MessageIndex, e.VideoIndex
	}

	blocks := make([]string, len(msgs))
	for i, msg := range msgs {
		sel := -1
		if i == selMsg {
			sel = selVideo
		}
		blocks[i] = m.bubble.Render(msg, sel)
	}
	return strings.Join(blocks, "\n\n")
}

// =============================================================================
// LAYOUT
// =============================================================================

func (m Model) markdownWidth() int {
	return m.width - 8
}

// layout sizes every component for the current dimensions and state.
func (m *Model) layout() {
	m.theme.SetSize(m.width, m.height)

	m.header.SetWidth(m.width)
	m.header.Compact = m.height < 24

	m.bubble.Width = m.width - 2
	m.panelView.Width = m.width
	m.markdown.Configure(m.theme.GlamourStyle(), m.markdownWidth())
	m.input.SetWidth(m.width - 2)

	m.statusBar.Width = m.width
	m.statusBar.Loading = m.loading
	m.statusBar.PanelOpen = m.panel.Visible
	m.statusBar.HasVideos = len(m.conversation.VideoEntries()) > 0

	used := lipgloss.Height(m.header.View()) + lipgloss.Height(m.renderTopBar())
	for _, part := range m.chrome() {
		used += lipgloss.Height(part)
	}

	height := m.height - used
	if height < 3 {
		height = 3
	}
	m.viewport.Width = m.width
	m.viewport.Height = height
}

// refresh re-lays out and re-renders the transcript. Transcript changes
// pass scrollToBottom so the latest message is in view.
func (m *Model) refresh(scrollToBottom bool) {
	m.layout()
	m.viewport.SetContent(m.renderTranscript())
	if scrollToBottom {
		m.viewport.GotoBottom()
	}
}
