// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for conversations and messages.
package model

import (
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// CONVERSATION TYPE
// =============================================================================

// Conversation is the ordered transcript of one session. It lives only in
// memory and is discarded when the process exits.
//
// Conversation is not safe for concurrent use; the chat view mutates it only
// from its update loop.
type Conversation struct {
	ID        string
	CreatedAt time.Time
	UpdatedAt time.Time

	messages []ChatMessage
}

// NewConversation creates an empty conversation.
func NewConversation() *Conversation {
	now := time.Now()
	return &Conversation{
		ID:        uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
		messages:  make([]ChatMessage, 0, 16),
	}
}

// =============================================================================
// MESSAGE MANAGEMENT
// =============================================================================

// Append adds a message to the end of the transcript.
func (c *Conversation) Append(msg ChatMessage) {
	c.messages = append(c.messages, msg)
	c.UpdatedAt = time.Now()
}

// Messages returns a copy of the transcript in order.
func (c *Conversation) Messages() []ChatMessage {
	out := make([]ChatMessage, len(c.messages))
	copy(out, c.messages)
	return out
}

// Len returns the number of messages.
func (c *Conversation) Len() int {
	return len(c.messages)
}

// At returns the message at index i.
func (c *Conversation) At(i int) ChatMessage {
	return c.messages[i]
}

// Last returns the most recent message and whether one exists.
func (c *Conversation) Last() (ChatMessage, bool) {
	if len(c.messages) == 0 {
		return ChatMessage{}, false
	}
	return c.messages[len(c.messages)-1], true
}

// CountBySender returns how many messages were sent by s.
func (c *Conversation) CountBySender(s Sender) int {
	n := 0
	for _, m := range c.messages {
		if m.Sender == s {
			n++
		}
	}
	return n
}

// IsEmpty reports whether the transcript has no messages.
func (c *Conversation) IsEmpty() bool {
	return len(c.messages) == 0
}

// =============================================================================
// VIDEO ENTRIES
// =============================================================================

// VideoEntry locates one selectable video suggestion in the transcript.
type VideoEntry struct {
	MessageIndex int
	VideoIndex   int
	Video        VideoInfo
}

// VideoEntries returns every video suggestion in transcript order.
func (c *Conversation) VideoEntries() []VideoEntry {
	var entries []VideoEntry
	for i, m := range c.messages {
		for j, v := range m.Videos {
			entries = append(entries, VideoEntry{MessageIndex: i, VideoIndex: j, Video: v})
		}
	}
	return entries
}
