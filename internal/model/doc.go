// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for conversations and messages.
//
// This package defines the domain types shared by the API client, the video
// checker and the chat view.
//
// # Key Types
//
//   - ChatMessage: one transcript entry with sender, text, timestamp and
//     optional video suggestions
//   - VideoInfo: a video suggestion returned by the backend
//   - Conversation: the ordered, in-memory transcript of one session
//   - VideoPanel: visibility state of the embedded video panel
//   - ModelInfo: an entry of the fixed model catalogue
//
// # Usage
//
//	conv := model.NewConversation()
//	conv.Append(model.NewUserMessage("What is squash and stretch?"))
//
//	info, ok := model.LookupModel("gpt-3.5-turbo")
//	fmt.Println(info.Name, ok)
package model
