// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides the animastery command tree.
//
// With no subcommand the full-screen chat starts. The other commands
// share its configuration and clients:
//
//   - chat: line-mode chat with input history
//   - ask: one question, one answer (--json for scripts)
//   - status: probe the backend
//   - models: list models
//   - video check|url: check a video and print its links
//   - config show|get|set|keys|reset|path: manage ~/.animastery/config.toml
//
// Precedence is flags, then ANIMASTERY_* environment variables (a .env
// file in the working directory is read too), then the config file.
package cli
