// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"time"

	"github.com/jeranaias/animastery-tui/internal/model"
	"github.com/jeranaias/animastery-tui/internal/ui/styles"
	"github.com/jeranaias/animastery-tui/internal/util"
)

// =============================================================================
// MESSAGE BUBBLE
// =============================================================================

// TimeFormat is how message timestamps are shown, in local time.
const TimeFormat = "3:04 PM"

// VideoEntryPrefix marks a selectable video entry.
const VideoEntryPrefix = "▶ "

// MessageBubble renders one chat message with its video entries.
type MessageBubble struct {
	Width    int
	Markdown *Markdown

	// Location for timestamps; nil means time.Local
	Location *time.Location

	theme *styles.Theme
}

// NewMessageBubble creates a bubble renderer.
func NewMessageBubble(theme *styles.Theme, md *Markdown, width int) *MessageBubble {
	return &MessageBubble{Width: width, Markdown: md, theme: theme}
}

// SetTheme swaps the theme after a toggle.
func (b *MessageBubble) SetTheme(theme *styles.Theme) {
	b.theme = theme
}

// Render renders msg. selectedVideo is the index of the highlighted video
// entry within msg, or -1.
func (b *MessageBubble) Render(msg model.ChatMessage, selectedVideo int) string {
	width := b.Width
	if width < 24 {
		width = 24
	}

	loc := b.Location
	if loc == nil {
		loc = time.Local
	}
	meta := b.theme.SenderName.Render(msg.Sender.DisplayName()) + " " +
		b.theme.Timestamp.Render(msg.Timestamp.In(loc).Format(TimeFormat))

	var body string
	if msg.IsUser() {
		body = b.theme.UserBubble.Width(width - 4).Render(strings.Join(msg.Paragraphs(), "\n"))
	} else {
		text := strings.Join(msg.Paragraphs(), "\n")
		if b.Markdown != nil {
			text = b.Markdown.Render(msg.Text)
		}
		body = b.theme.AssistantBubble.Width(width - 4).Render(text)
	}

	lines := []string{meta, body}
	for i, v := range msg.Videos {
		lines = append(lines, b.renderVideoEntry(v, i == selectedVideo, width))
	}
	return strings.Join(lines, "\n")
}

func (b *MessageBubble) renderVideoEntry(v model.VideoInfo, selected bool, width int) string {
	label := util.TruncateWidth(VideoEntryPrefix+v.Label(), width-4)
	if selected {
		return b.theme.VideoEntrySelected.Render(label)
	}
	return b.theme.VideoEntry.Render(label)
}
