// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
)

// isolateEnv points the config dir at a temp dir and clears overrides.
func isolateEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("ANIMASTERY_CONFIG_DIR", dir)
	for _, key := range []string{
		"ANIMASTERY_BACKEND_URL",
		"ANIMASTERY_MODEL",
		"ANIMASTERY_VIDEO_HOST",
		"ANIMASTERY_LOG_LEVEL",
		"ANIMASTERY_TIMEOUT_SECS",
	} {
		t.Setenv(key, "")
	}
	return dir
}

func TestConfig_Default(t *testing.T) {
	cfg := Default()

	if cfg.Backend.URL != "http://localhost:8000" {
		t.Errorf("Backend.URL = %q, want http://localhost:8000", cfg.Backend.URL)
	}
	if cfg.Backend.TimeoutSecs != 0 {
		t.Errorf("Backend.TimeoutSecs = %d, want 0", cfg.Backend.TimeoutSecs)
	}
	if cfg.Video.Host != "www.youtube.com" {
		t.Errorf("Video.Host = %q, want www.youtube.com", cfg.Video.Host)
	}
	if cfg.UI.DefaultModel != "gpt-3.5-turbo" {
		t.Errorf("UI.DefaultModel = %q, want gpt-3.5-turbo", cfg.UI.DefaultModel)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"https backend", func(c *Config) { c.Backend.URL = "https://api.example.com" }, ""},
		{"bad scheme", func(c *Config) { c.Backend.URL = "ftp://example.com" }, "backend.url"},
		{"missing host", func(c *Config) { c.Backend.URL = "http://" }, "backend.url"},
		{"negative timeout", func(c *Config) { c.Backend.TimeoutSecs = -1 }, "backend.timeout_secs"},
		{"host with path", func(c *Config) { c.Video.Host = "www.youtube.com/x" }, "video.host"},
		{"zero rate", func(c *Config) { c.Video.ChecksPerSecond = 0 }, "video.checks_per_second"},
		{"zero burst", func(c *Config) { c.Video.Burst = 0 }, "video.burst"},
		{"unknown model", func(c *Config) { c.UI.DefaultModel = "gpt-5" }, "ui.default_model"},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()

			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q", tt.wantErr)
			}
			var verrs ValidateErrors
			if !errors.As(err, &verrs) {
				t.Fatalf("expected ValidateErrors, got %T", err)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_LoadMissingFileUsesDefaults(t *testing.T) {
	isolateEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Backend.URL != DefaultBackendURL {
		t.Errorf("Backend.URL = %q, want default", cfg.Backend.URL)
	}
}

func TestConfig_LoadFromFile(t *testing.T) {
	dir := isolateEnv(t)
	path := filepath.Join(dir, "config.toml")
	content := `
[backend]
url = "http://backend.local:9000/"
timeout_secs = 30

[ui]
default_model = "mistralai/mistral-7b-instruct:free"
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath() error: %v", err)
	}
	if cfg.Backend.URL != "http://backend.local:9000" {
		t.Errorf("trailing slash should be trimmed, got %q", cfg.Backend.URL)
	}
	if cfg.Backend.TimeoutSecs != 30 {
		t.Errorf("TimeoutSecs = %d, want 30", cfg.Backend.TimeoutSecs)
	}
	if cfg.UI.DefaultModel != "mistralai/mistral-7b-instruct:free" {
		t.Errorf("DefaultModel = %q", cfg.UI.DefaultModel)
	}
	// Untouched sections keep defaults
	if cfg.Video.Host != DefaultVideoHost {
		t.Errorf("Video.Host = %q, want default", cfg.Video.Host)
	}
}

func TestConfig_LoadRejectsUnknownKeys(t *testing.T) {
	dir := isolateEnv(t)
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("[backend]\nulr = \"http://x\"\n"), 0600); err != nil {
		t.Fatal(err)
	}

	_, err := LoadFromPath(path)
	if err == nil || !strings.Contains(err.Error(), "backend.ulr") {
		t.Fatalf("expected unknown key error, got %v", err)
	}
}

func TestConfig_LoadRejectsInvalidValues(t *testing.T) {
	dir := isolateEnv(t)
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("[ui]\ndefault_model = \"nope\"\n"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFromPath(path); err == nil {
		t.Fatal("expected validation error for unknown model")
	}
}

func TestConfig_EnvOverrides(t *testing.T) {
	isolateEnv(t)
	t.Setenv("ANIMASTERY_BACKEND_URL", "https://assistant.example.com")
	t.Setenv("ANIMASTERY_MODEL", "xiaomi/mimo-v2-flash:free")
	t.Setenv("ANIMASTERY_VIDEO_HOST", "www.youtube-nocookie.com")
	t.Setenv("ANIMASTERY_LOG_LEVEL", "DEBUG")
	t.Setenv("ANIMASTERY_TIMEOUT_SECS", "12")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Backend.URL != "https://assistant.example.com" {
		t.Errorf("Backend.URL = %q", cfg.Backend.URL)
	}
	if cfg.UI.DefaultModel != "xiaomi/mimo-v2-flash:free" {
		t.Errorf("DefaultModel = %q", cfg.UI.DefaultModel)
	}
	if cfg.Video.Host != "www.youtube-nocookie.com" {
		t.Errorf("Video.Host = %q", cfg.Video.Host)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want lower-cased debug", cfg.Log.Level)
	}
	if cfg.Backend.TimeoutSecs != 12 {
		t.Errorf("TimeoutSecs = %d, want 12", cfg.Backend.TimeoutSecs)
	}
}

func TestConfig_SaveAndReload(t *testing.T) {
	isolateEnv(t)
	if err := EnsureConfigDir(); err != nil {
		t.Fatal(err)
	}

	cfg := Default()
	cfg.Video.Burst = 9
	cfg.UI.Mouse = false
	if err := Save(cfg); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	path, _ := ConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "# animastery configuration file") {
		t.Error("saved file should start with the header comment")
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if loaded.Video.Burst != 9 || loaded.UI.Mouse {
		t.Errorf("saved values not reloaded: burst=%d mouse=%v", loaded.Video.Burst, loaded.UI.Mouse)
	}
}

func TestConfig_GetSet(t *testing.T) {
	cfg := Default()

	if err := cfg.Set("backend.url", "http://other:8080"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	if err := cfg.Set("video.checks_per_second", "0.5"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	if err := cfg.Set("ui.alt-screen", "false"); err != nil {
		t.Fatalf("Set() with dashed key error: %v", err)
	}
	if err := cfg.Set("backend.timeout_secs", 5); err != nil {
		t.Fatalf("Set() with int error: %v", err)
	}

	if v, _ := cfg.Get("backend.url"); v != "http://other:8080" {
		t.Errorf("Get(backend.url) = %v", v)
	}
	if cfg.Video.ChecksPerSecond != 0.5 {
		t.Errorf("ChecksPerSecond = %v", cfg.Video.ChecksPerSecond)
	}
	if cfg.UI.AltScreen {
		t.Error("AltScreen should be false")
	}
	if cfg.Backend.TimeoutSecs != 5 {
		t.Errorf("TimeoutSecs = %d", cfg.Backend.TimeoutSecs)
	}

	if _, err := cfg.Get("backend"); err == nil {
		t.Error("Get on a section should fail")
	}
	if _, err := cfg.Get("backend.nope"); err == nil {
		t.Error("Get on an unknown key should fail")
	}
	if err := cfg.Set("video.burst", "many"); err == nil {
		t.Error("Set with a non-integer should fail")
	}
}

func TestConfig_AllKeysResolve(t *testing.T) {
	cfg := Default()
	for _, key := range GetAllKeys() {
		if _, err := cfg.Get(key); err != nil {
			t.Errorf("Get(%q) error: %v", key, err)
		}
	}
}

func TestConfig_DerivedPaths(t *testing.T) {
	dir := isolateEnv(t)
	cfg := Default()

	logPath, err := cfg.LogPath()
	if err != nil || logPath != filepath.Join(dir, "animastery.log") {
		t.Errorf("LogPath() = %q, %v", logPath, err)
	}
	dbPath, err := cfg.StoragePath()
	if err != nil || dbPath != filepath.Join(dir, "prefs.db") {
		t.Errorf("StoragePath() = %q, %v", dbPath, err)
	}

	cfg.Log.Path = "/tmp/custom.log"
	if p, _ := cfg.LogPath(); p != "/tmp/custom.log" {
		t.Errorf("explicit log path ignored: %q", p)
	}
}

// TestConfig_ConcurrentAccess tests that Global() and SetGlobal()
// can be safely called concurrently without race conditions.
// Run with: go test -race -v ./internal/config/
func TestConfig_ConcurrentAccess(t *testing.T) {
	isolateEnv(t)
	ResetGlobalForTesting()
	defer ResetGlobalForTesting()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)

		go func() {
			defer wg.Done()
			c := Default()
			c.Version = "test"
			SetGlobal(c)
		}()

		go func() {
			defer wg.Done()
			if Global() == nil {
				t.Error("Global() returned nil")
			}
		}()
	}
	wg.Wait()
}

func TestConfig_SetGlobalOverwrites(t *testing.T) {
	isolateEnv(t)
	ResetGlobalForTesting()
	defer ResetGlobalForTesting()

	c := Default()
	c.Backend.URL = "http://set-global:1"
	SetGlobal(c)

	if got := Global().Backend.URL; got != "http://set-global:1" {
		t.Errorf("Global().Backend.URL = %q", got)
	}
}

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	dir := isolateEnv(t)
	path := filepath.Join(dir, "config.toml")
	if err := SaveTOML(Default(), path); err != nil {
		t.Fatal(err)
	}

	reloaded := make(chan *Config, 4)
	w, err := NewWatcher(path, 50*time.Millisecond, func(cfg *Config, err error) {
		if err == nil {
			reloaded <- cfg
		}
	})
	if err != nil {
		t.Fatalf("NewWatcher() error: %v", err)
	}
	if err := w.Watch(); err != nil {
		t.Fatalf("Watch() error: %v", err)
	}
	defer w.Close()

	cfg := Default()
	cfg.Backend.URL = "http://reloaded:8000"
	if err := SaveTOML(cfg, path); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-reloaded:
		if got.Backend.URL != "http://reloaded:8000" {
			t.Errorf("reloaded Backend.URL = %q", got.Backend.URL)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
}
