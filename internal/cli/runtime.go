// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"log/slog"
	"time"

	"github.com/jeranaias/animastery-tui/internal/api"
	"github.com/jeranaias/animastery-tui/internal/config"
	"github.com/jeranaias/animastery-tui/internal/storage"
	"github.com/jeranaias/animastery-tui/internal/video"
)

// newAPIClient builds the backend client from cfg.
func newAPIClient(cfg *config.Config) *api.Client {
	return api.NewClient(&api.ClientConfig{
		BaseURL: cfg.Backend.URL,
		Timeout: time.Duration(cfg.Backend.TimeoutSecs) * time.Second,
	})
}

// newVideoChecker builds the availability checker from cfg. Tests swap it
// to point at a local server.
var newVideoChecker = func(cfg *config.Config) *video.Checker {
	return video.NewChecker(&video.CheckerConfig{
		Host:            cfg.Video.Host,
		ChecksPerSecond: cfg.Video.ChecksPerSecond,
		Burst:           cfg.Video.Burst,
		Timeout:         time.Duration(cfg.Backend.TimeoutSecs) * time.Second,
	})
}

// openPrefs opens the preference database, falling back to memory so a
// locked or unwritable file never blocks the chat.
func openPrefs(cfg *config.Config) storage.Prefs {
	path, err := cfg.StoragePath()
	if err == nil {
		var store *storage.SQLiteStore
		if store, err = storage.OpenSQLite(path); err == nil {
			return store
		}
	}
	slog.Warn("preferences will not persist", "error", err)
	return storage.NewMemoryStore()
}
