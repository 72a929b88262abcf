// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small helpers shared by the CLI and the TUI.
//
// # Key Functions
//
//   - AtomicWriteFile: crash-safe file writing with fsync
//   - TruncateWidth: display-width aware truncation for terminal cells
//   - CommandFields: slash command words in canonical Unicode form
package util
