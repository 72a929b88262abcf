// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the conversation view for the animastery TUI.
//
// The Model owns the conversation, the input, the loading flag, the model
// selection, the theme and the video panel. Everything changes inside
// Update; backend queries and video checks run as commands and come back
// as QueryResultMsg and VideoCheckedMsg.
//
// # Flow
//
//  1. Enter submits the input. The user message is appended, the input is
//     disabled and a query command starts.
//  2. The reply (or an apology on any failure) is appended and the input
//     is enabled again.
//  3. Video entries under a reply are selected with Tab and opened with
//     Ctrl+O. The panel opens only if the video host confirms the video.
//
// # Key Files
//
//   - model.go: Model, Options and accessors
//   - update.go: Message handling and the conversation operations
//   - commands.go: Slash commands
//   - view.go: Rendering and layout
//   - keys.go: Key bindings
package chat
