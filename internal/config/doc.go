// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for animastery.
//
// # Key Types
//
//   - Config: Main configuration structure with all settings
//   - BackendConfig: Assistant API location and request timeout
//   - VideoConfig: Video host and availability check rate
//   - Watcher: Reloads the config file when it changes on disk
//
// # Configuration Precedence
//
// Configuration is loaded from (in order of precedence):
//   - Environment variables (ANIMASTERY_*), including those set by .env
//   - ~/.animastery/config.toml
//   - Built-in defaults
//
// # Usage
//
// Load configuration:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Change a setting by key and persist it:
//
//	_ = cfg.Set("video.host", "www.youtube-nocookie.com")
//	_ = config.Save(cfg)
package config
