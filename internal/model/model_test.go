// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// MESSAGE TESTS
// =============================================================================

func TestNewUserMessage(t *testing.T) {
	before := time.Now()
	msg := NewUserMessage("Hello")

	assert.Equal(t, SenderUser, msg.Sender)
	assert.Equal(t, "Hello", msg.Text)
	assert.NotEmpty(t, msg.ID)
	assert.False(t, msg.Timestamp.Before(before))
	assert.Nil(t, msg.Videos)
}

func TestNewAssistantMessage_CopiesVideos(t *testing.T) {
	videos := []VideoInfo{{Title: "A", VideoID: "abc123", Channel: "C"}}
	msg := NewAssistantMessage("Hello", videos)

	videos[0].Title = "changed"

	require.Len(t, msg.Videos, 1)
	assert.Equal(t, "A", msg.Videos[0].Title)
	assert.True(t, msg.IsAssistant())
	assert.True(t, msg.HasVideos())
}

func TestNewAssistantMessage_NoVideos(t *testing.T) {
	msg := NewAssistantMessage("Sorry", nil)
	assert.False(t, msg.HasVideos())
	assert.Nil(t, msg.Videos)
}

func TestChatMessage_JSONShape(t *testing.T) {
	msg := NewAssistantMessage("Hi", []VideoInfo{{Title: "A", VideoID: "abc123", Channel: "C"}})
	data, err := json.Marshal(msg)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "assistant", raw["sender"])
	videos := raw["videos"].([]any)
	assert.Equal(t, "abc123", videos[0].(map[string]any)["video_id"])

	plain, err := json.Marshal(NewUserMessage("x"))
	require.NoError(t, err)
	assert.NotContains(t, string(plain), "videos")
}

func TestChatMessage_Paragraphs(t *testing.T) {
	msg := NewUserMessage("one\ntwo\n\nthree")
	assert.Equal(t, []string{"one", "two", "", "three"}, msg.Paragraphs())
}

func TestChatMessage_Preview(t *testing.T) {
	tests := []struct {
		text string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"this is longer than ten", 10, "this is..."},
		{"日本語のテキストです", 6, "日本語..."},
	}
	for _, tc := range tests {
		msg := NewUserMessage(tc.text)
		if got := msg.Preview(tc.max); got != tc.want {
			t.Errorf("Preview(%q, %d) = %q, want %q", tc.text, tc.max, got, tc.want)
		}
	}
}

func TestVideoInfo_Label(t *testing.T) {
	v := VideoInfo{Title: "12 Principles of Animation", VideoID: "uDqjIdI4bF4", Channel: "Alan Becker"}
	assert.Equal(t, "12 Principles of Animation by Alan Becker", v.Label())
}

func TestSender_DisplayName(t *testing.T) {
	assert.Equal(t, "You", SenderUser.DisplayName())
	assert.Equal(t, "Assistant", SenderAssistant.DisplayName())
	assert.Equal(t, "other", Sender("other").DisplayName())
}

// =============================================================================
// CONVERSATION TESTS
// =============================================================================

func TestConversation_AppendKeepsOrder(t *testing.T) {
	conv := NewConversation()
	assert.True(t, conv.IsEmpty())

	conv.Append(NewUserMessage("q1"))
	conv.Append(NewAssistantMessage("a1", nil))
	conv.Append(NewUserMessage("q2"))

	msgs := conv.Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, "q1", msgs[0].Text)
	assert.Equal(t, "a1", msgs[1].Text)
	assert.Equal(t, "q2", msgs[2].Text)
	assert.Equal(t, 2, conv.CountBySender(SenderUser))
	assert.Equal(t, 1, conv.CountBySender(SenderAssistant))

	last, ok := conv.Last()
	require.True(t, ok)
	assert.Equal(t, "q2", last.Text)
}

func TestConversation_MessagesReturnsCopy(t *testing.T) {
	conv := NewConversation()
	conv.Append(NewUserMessage("original"))

	msgs := conv.Messages()
	msgs[0].Text = "mutated"

	assert.Equal(t, "original", conv.At(0).Text)
}

func TestConversation_LastOnEmpty(t *testing.T) {
	_, ok := NewConversation().Last()
	assert.False(t, ok)
}

func TestConversation_VideoEntries(t *testing.T) {
	conv := NewConversation()
	conv.Append(NewUserMessage("show me"))
	conv.Append(NewAssistantMessage("here", []VideoInfo{
		{Title: "A", VideoID: "a1", Channel: "CA"},
		{Title: "B", VideoID: "b1", Channel: "CB"},
	}))
	conv.Append(NewAssistantMessage("more", []VideoInfo{{Title: "C", VideoID: "c1", Channel: "CC"}}))

	entries := conv.VideoEntries()
	require.Len(t, entries, 3)
	assert.Equal(t, VideoEntry{MessageIndex: 1, VideoIndex: 0, Video: VideoInfo{Title: "A", VideoID: "a1", Channel: "CA"}}, entries[0])
	assert.Equal(t, "b1", entries[1].Video.VideoID)
	assert.Equal(t, 2, entries[2].MessageIndex)
}

// =============================================================================
// VIDEO PANEL TESTS
// =============================================================================

func TestVideoPanel_OpenClose(t *testing.T) {
	var p VideoPanel
	assert.False(t, p.Showing())

	p.Open("abc123")
	assert.True(t, p.Visible)
	assert.Equal(t, "abc123", p.VideoID)
	assert.True(t, p.Showing())

	p.Close()
	assert.Equal(t, VideoPanel{}, p)
}

// =============================================================================
// MODEL CATALOGUE TESTS
// =============================================================================

func TestSupportedModels(t *testing.T) {
	models := SupportedModels()
	require.Len(t, models, 4)
	assert.Equal(t, DefaultModelID, models[0].ID)

	for _, m := range models {
		if m.Name == "" {
			t.Errorf("model %q has no label", m.ID)
		}
		if !IsSupportedModel(m.ID) {
			t.Errorf("IsSupportedModel(%q) = false", m.ID)
		}
	}
}

func TestSupportedModels_ReturnsCopy(t *testing.T) {
	models := SupportedModels()
	models[0].ID = "tampered"
	assert.True(t, IsSupportedModel(DefaultModelID))
}

func TestValidateModel(t *testing.T) {
	assert.NoError(t, ValidateModel("mistralai/mistral-7b-instruct:free"))

	err := ValidateModel("gpt-5")
	require.Error(t, err)
	var unknown *ErrUnknownModel
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "gpt-5", unknown.ID)
	assert.Contains(t, err.Error(), "gpt-3.5-turbo")
}

func TestNextModel_Wraps(t *testing.T) {
	ids := ModelIDs()
	id := ids[0]
	for i := 1; i <= len(ids); i++ {
		id = NextModel(id).ID
		assert.Equal(t, ids[i%len(ids)], id)
	}
	assert.Equal(t, ids[0], NextModel("unknown").ID)
}

func TestModelLabel(t *testing.T) {
	assert.Equal(t, "Gemini 2.0 Flash", ModelLabel("google/gemini-2.0-flash-exp:free"))
	assert.Equal(t, "custom", ModelLabel("custom"))
}
