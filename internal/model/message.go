// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for conversations and messages.
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// SENDER TYPE
// =============================================================================

// Sender identifies who produced a message.
type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

// String returns the string representation of the sender.
func (s Sender) String() string {
	return string(s)
}

// DisplayName returns a human-readable name for the sender.
func (s Sender) DisplayName() string {
	switch s {
	case SenderUser:
		return "You"
	case SenderAssistant:
		return "Assistant"
	default:
		return string(s)
	}
}

// =============================================================================
// VIDEO INFO
// =============================================================================

// VideoInfo is a video suggestion attached to an assistant response.
type VideoInfo struct {
	Title   string `json:"title"`
	VideoID string `json:"video_id"`
	Channel string `json:"channel"`
}

// Label returns the text shown on the selectable entry for this video.
func (v VideoInfo) Label() string {
	return v.Title + " by " + v.Channel
}

// =============================================================================
// CHAT MESSAGE
// =============================================================================

// ChatMessage is a single transcript entry. Messages are never modified after
// they have been appended to a Conversation.
type ChatMessage struct {
	ID        string      `json:"id"`
	Text      string      `json:"text"`
	Sender    Sender      `json:"sender"`
	Timestamp time.Time   `json:"timestamp"`
	Videos    []VideoInfo `json:"videos,omitempty"`
}

// NewMessage creates a message stamped with the current time.
func NewMessage(sender Sender, text string) ChatMessage {
	return ChatMessage{
		ID:        uuid.NewString(),
		Text:      text,
		Sender:    sender,
		Timestamp: time.Now(),
	}
}

// NewUserMessage creates a user message.
func NewUserMessage(text string) ChatMessage {
	return NewMessage(SenderUser, text)
}

// NewAssistantMessage creates an assistant message carrying optional videos.
// The video slice is copied so later changes by the caller are not visible.
func NewAssistantMessage(text string, videos []VideoInfo) ChatMessage {
	msg := NewMessage(SenderAssistant, text)
	if len(videos) > 0 {
		msg.Videos = append([]VideoInfo(nil), videos...)
	}
	return msg
}

// IsUser reports whether the message was sent by the user.
func (m ChatMessage) IsUser() bool {
	return m.Sender == SenderUser
}

// IsAssistant reports whether the message was sent by the assistant.
func (m ChatMessage) IsAssistant() bool {
	return m.Sender == SenderAssistant
}

// HasVideos reports whether the message carries video suggestions.
func (m ChatMessage) HasVideos() bool {
	return len(m.Videos) > 0
}

// Paragraphs splits the message text on newlines.
func (m ChatMessage) Paragraphs() []string {
	return strings.Split(m.Text, "\n")
}

// ISOTimestamp returns the timestamp in ISO-8601 form.
func (m ChatMessage) ISOTimestamp() string {
	return m.Timestamp.UTC().Format(time.RFC3339Nano)
}

// Preview returns a truncated preview of the message text.
// Uses rune-based truncation to handle Unicode correctly.
func (m ChatMessage) Preview(maxLen int) string {
	runes := []rune(m.Text)
	if len(runes) <= maxLen {
		return m.Text
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
