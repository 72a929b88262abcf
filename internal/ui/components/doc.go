// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package components provides the visual UI components for the animastery TUI.

Components render from the state handed to them and keep none of their own,
apart from the typing indicator's animation frame. The chat model owns all
conversation state.

# Display Components

Header (header.go) - Title, greeting and description, plus the top bar layout.
ModelSelector (model_selector.go) - Model catalogue with the selection highlighted.
Theme toggle (theme_toggle.go) - Sun or moon icon for the action it performs.
MessageBubble (message.go) - One chat message with its selectable video entries.
VideoPanelView (video_panel.go) - The open video's player and watch links.
StatusBar (statusbar.go) - Key hints for the current state.

# Feedback

TypingIndicator (spinner.go) - Animated dots while a reply is pending.

# Rendering

Markdown (markdown.go) - Glamour renderer for assistant text, rebuilt on
theme or width changes.
*/
package components
