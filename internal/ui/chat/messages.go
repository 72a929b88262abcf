// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"github.com/jeranaias/animastery-tui/internal/api"
	"github.com/jeranaias/animastery-tui/internal/config"
)

// =============================================================================
// ASYNC RESULTS
// =============================================================================

// QueryResultMsg carries the outcome of a backend query. Exactly one of
// Response and Err is set.
type QueryResultMsg struct {
	Response *api.Response
	Err      error
}

// VideoCheckedMsg carries the outcome of an availability check.
type VideoCheckedMsg struct {
	VideoID   string
	Available bool
}

// =============================================================================
// ENVIRONMENT
// =============================================================================

// ConfigReloadedMsg is sent by the config watcher after the file changed.
// A failed reload carries Err and leaves the current settings in place.
type ConfigReloadedMsg struct {
	Config *config.Config
	Err    error
}

// NoticeMsg sets the transient status line.
type NoticeMsg struct {
	Text string
}
