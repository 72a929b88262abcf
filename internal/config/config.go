// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for animastery.
//
// Configuration is read from a TOML file, with sensible defaults, a .env file
// and environment variable overrides, and validation.
//
// Configuration sources (later entries win):
//   - Built-in defaults
//   - ~/.animastery/config.toml
//   - .env in the working directory (loaded into the environment)
//   - ANIMASTERY_* environment variables
package config

import (
	"bytes"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/jeranaias/animastery-tui/internal/model"
	"github.com/jeranaias/animastery-tui/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete animastery configuration.
type Config struct {
	Version string `toml:"version" json:"version"`

	// Backend is the assistant API the chat talks to
	Backend BackendConfig `toml:"backend" json:"backend"`

	// Video controls the availability check and embed URLs
	Video VideoConfig `toml:"video" json:"video"`

	UI      UIConfig      `toml:"ui" json:"ui"`
	Log     LogConfig     `toml:"log" json:"log"`
	Storage StorageConfig `toml:"storage" json:"storage"`
}

// BackendConfig contains assistant API settings.
type BackendConfig struct {
	// URL is the base URL; the probe hits URL and queries go to URL/query
	URL string `toml:"url" json:"url"`
	// TimeoutSecs bounds each HTTP request. 0 leaves the transport defaults.
	TimeoutSecs int `toml:"timeout_secs" json:"timeout_secs"`
}

// VideoConfig contains video host settings.
type VideoConfig struct {
	// Host serves /oembed, /watch and /embed (e.g. "www.youtube.com")
	Host string `toml:"host" json:"host"`
	// ChecksPerSecond is the sustained rate of availability checks
	ChecksPerSecond float64 `toml:"checks_per_second" json:"checks_per_second"`
	// Burst is how many checks may run back to back
	Burst int `toml:"burst" json:"burst"`
}

// UIConfig contains terminal UI settings.
type UIConfig struct {
	// DefaultModel is the model selected at startup
	DefaultModel string `toml:"default_model" json:"default_model"`
	// AltScreen runs the TUI in the alternate screen buffer
	AltScreen bool `toml:"alt_screen" json:"alt_screen"`
	// Mouse enables mouse wheel scrolling
	Mouse bool `toml:"mouse" json:"mouse"`
}

// LogConfig contains diagnostic log settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error
	Level string `toml:"level" json:"level"`
	// Path is the log file (empty = ~/.animastery/animastery.log)
	Path string `toml:"path" json:"path"`
}

// StorageConfig contains local preference storage settings.
type StorageConfig struct {
	// Path is the preference database (empty = ~/.animastery/prefs.db)
	Path string `toml:"path" json:"path"`
}

// =============================================================================
// DEFAULT CONFIGURATION
// =============================================================================

const (
	DefaultBackendURL = "http://localhost:8000"
	DefaultVideoHost  = "www.youtube.com"
)

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Version: "1.0.0",
		Backend: BackendConfig{
			URL:         DefaultBackendURL,
			TimeoutSecs: 0, // transport defaults
		},
		Video: VideoConfig{
			Host:            DefaultVideoHost,
			ChecksPerSecond: 2,
			Burst:           4,
		},
		UI: UIConfig{
			DefaultModel: model.DefaultModelID,
			AltScreen:    true,
			Mouse:        true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the animastery configuration directory path.
// ANIMASTERY_CONFIG_DIR overrides the default ~/.animastery.
func ConfigDir() (string, error) {
	if dir := os.Getenv("ANIMASTERY_CONFIG_DIR"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".animastery"), nil
}

// ConfigPath returns the path to the TOML config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// EnsureConfigDir ensures the config directory exists.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// LogPath returns the configured log path or the default in the config dir.
func (c *Config) LogPath() (string, error) {
	if c.Log.Path != "" {
		return c.Log.Path, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "animastery.log"), nil
}

// StoragePath returns the configured preference database path or the default.
func (c *Config) StoragePath() (string, error) {
	if c.Storage.Path != "" {
		return c.Storage.Path, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "prefs.db"), nil
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from the default config file.
// A missing file is not an error; defaults are used.
// Environment overrides are applied last.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath loads configuration from path with full validation.
// A missing file yields the defaults.
func LoadFromPath(path string) (*Config, error) {
	// .env is optional; variables already set in the environment win
	_ = godotenv.Load()

	cfg := Default()
	if _, statErr := os.Stat(path); statErr == nil {
		if err := LoadTOML(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
		}
	} else if !errors.Is(statErr, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to stat config %s: %w", path, statErr)
	}

	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadTOML decodes a TOML file into cfg. Keys absent from the file keep
// the values already in cfg.
func LoadTOML(cfg *Config, path string) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

// SetDefaults fills in zero values that must not stay empty.
func (c *Config) SetDefaults() {
	defaults := Default()

	if c.Version == "" {
		c.Version = defaults.Version
	}
	if c.Backend.URL == "" {
		c.Backend.URL = defaults.Backend.URL
	}
	c.Backend.URL = strings.TrimRight(c.Backend.URL, "/")
	if c.Video.Host == "" {
		c.Video.Host = defaults.Video.Host
	}
	if c.Video.ChecksPerSecond == 0 {
		c.Video.ChecksPerSecond = defaults.Video.ChecksPerSecond
	}
	if c.Video.Burst == 0 {
		c.Video.Burst = defaults.Video.Burst
	}
	if c.UI.DefaultModel == "" {
		c.UI.DefaultModel = defaults.UI.DefaultModel
	}
	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
	c.Log.Level = strings.ToLower(c.Log.Level)
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// Save saves the configuration to the default TOML file.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return SaveTOML(cfg, path)
}

// SaveTOML writes the configuration to path atomically with 0600 permissions.
func SaveTOML(cfg *Config, path string) error {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "# animastery configuration file")
	fmt.Fprintln(&buf, "# Generated by animastery - edit with care")
	fmt.Fprintln(&buf, "")

	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := util.AtomicWriteFile(path, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

var validLogLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidateErrors

	if u, err := url.Parse(c.Backend.URL); err != nil {
		errs = append(errs, ValidationError{Field: "backend.url", Message: err.Error()})
	} else if u.Scheme != "http" && u.Scheme != "https" {
		errs = append(errs, ValidationError{
			Field:   "backend.url",
			Message: fmt.Sprintf("scheme must be http or https, got %q", u.Scheme),
		})
	} else if u.Host == "" {
		errs = append(errs, ValidationError{Field: "backend.url", Message: "missing host"})
	}

	if c.Backend.TimeoutSecs < 0 {
		errs = append(errs, ValidationError{Field: "backend.timeout_secs", Message: "must not be negative"})
	}

	if strings.ContainsAny(c.Video.Host, "/:?# ") {
		errs = append(errs, ValidationError{
			Field:   "video.host",
			Message: fmt.Sprintf("must be a bare host name, got %q", c.Video.Host),
		})
	}
	if c.Video.ChecksPerSecond <= 0 {
		errs = append(errs, ValidationError{Field: "video.checks_per_second", Message: "must be positive"})
	}
	if c.Video.Burst < 1 {
		errs = append(errs, ValidationError{Field: "video.burst", Message: "must be at least 1"})
	}

	if err := model.ValidateModel(c.UI.DefaultModel); err != nil {
		errs = append(errs, ValidationError{Field: "ui.default_model", Message: err.Error()})
	}

	if !validLogLevels[c.Log.Level] {
		errs = append(errs, ValidationError{
			Field:   "log.level",
			Message: fmt.Sprintf("invalid level '%s', must be one of: debug, info, warn, error", c.Log.Level),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides to the config.
//
// Supported environment variables:
//   - ANIMASTERY_BACKEND_URL: overrides backend.url
//   - ANIMASTERY_MODEL: overrides ui.default_model
//   - ANIMASTERY_VIDEO_HOST: overrides video.host
//   - ANIMASTERY_LOG_LEVEL: overrides log.level
//   - ANIMASTERY_TIMEOUT_SECS: overrides backend.timeout_secs
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("ANIMASTERY_BACKEND_URL"); v != "" {
		c.Backend.URL = v
	}
	if v := os.Getenv("ANIMASTERY_MODEL"); v != "" {
		c.UI.DefaultModel = v
	}
	if v := os.Getenv("ANIMASTERY_VIDEO_HOST"); v != "" {
		c.Video.Host = v
	}
	if v := os.Getenv("ANIMASTERY_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("ANIMASTERY_TIMEOUT_SECS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil {
			c.Backend.TimeoutSecs = secs
		}
	}
}

// =============================================================================
// GET/SET HELPERS (DOT NOTATION)
// =============================================================================

// Get retrieves a configuration value using dot notation (e.g., "backend.url").
func (c *Config) Get(key string) (interface{}, error) {
	field, err := c.lookup(key)
	if err != nil {
		return nil, err
	}
	return field.Interface(), nil
}

// Set sets a configuration value using dot notation (e.g., "video.host").
// String values are converted to the field's type.
func (c *Config) Set(key string, value interface{}) error {
	field, err := c.lookup(key)
	if err != nil {
		return err
	}
	if !field.CanSet() {
		return fmt.Errorf("cannot set field: %s", key)
	}
	return setFieldValue(field, value)
}

// lookup walks the struct by toml tag names.
func (c *Config) lookup(key string) (reflect.Value, error) {
	if key == "" {
		return reflect.Value{}, errors.New("empty key")
	}
	parts := strings.Split(key, ".")

	v := reflect.ValueOf(c).Elem()
	for i, part := range parts {
		field, ok := fieldByTag(v, part)
		if !ok {
			return reflect.Value{}, fmt.Errorf("unknown field: %s", strings.Join(parts[:i+1], "."))
		}
		if i == len(parts)-1 {
			if field.Kind() == reflect.Struct {
				return reflect.Value{}, fmt.Errorf("field '%s' is a section, not a value", key)
			}
			return field, nil
		}
		if field.Kind() != reflect.Struct {
			return reflect.Value{}, fmt.Errorf("field '%s' is not a struct", strings.Join(parts[:i+1], "."))
		}
		v = field
	}
	return reflect.Value{}, fmt.Errorf("invalid key: %s", key)
}

func fieldByTag(v reflect.Value, name string) (reflect.Value, bool) {
	name = strings.ReplaceAll(strings.ToLower(name), "-", "_")
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		tag := strings.Split(t.Field(i).Tag.Get("toml"), ",")[0]
		if tag == name {
			return v.Field(i), true
		}
	}
	return reflect.Value{}, false
}

// setFieldValue sets a reflect.Value from an interface{} value with type conversion.
func setFieldValue(field reflect.Value, value interface{}) error {
	if strVal, ok := value.(string); ok {
		switch field.Kind() {
		case reflect.String:
			field.SetString(strVal)
			return nil
		case reflect.Int, reflect.Int64:
			intVal, err := strconv.ParseInt(strVal, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid integer value: %v", err)
			}
			field.SetInt(intVal)
			return nil
		case reflect.Float64:
			floatVal, err := strconv.ParseFloat(strVal, 64)
			if err != nil {
				return fmt.Errorf("invalid float value: %v", err)
			}
			field.SetFloat(floatVal)
			return nil
		case reflect.Bool:
			boolVal, err := strconv.ParseBool(strVal)
			if err != nil {
				return fmt.Errorf("invalid boolean value: %v", err)
			}
			field.SetBool(boolVal)
			return nil
		}
	}

	val := reflect.ValueOf(value)
	if !val.IsValid() {
		return fmt.Errorf("cannot assign nil to %s", field.Type())
	}
	if val.Type().AssignableTo(field.Type()) {
		field.Set(val)
		return nil
	}
	if val.Type().ConvertibleTo(field.Type()) {
		field.Set(val.Convert(field.Type()))
		return nil
	}
	return fmt.Errorf("cannot assign %T to %s", value, field.Type())
}

// GetAllKeys returns all configuration keys in dot notation.
func GetAllKeys() []string {
	return []string{
		"version",
		"backend.url",
		"backend.timeout_secs",
		"video.host",
		"video.checks_per_second",
		"video.burst",
		"ui.default_model",
		"ui.alt_screen",
		"ui.mouse",
		"log.level",
		"log.path",
		"storage.path",
	}
}

// Clone returns a deep copy of the config.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// String returns the config encoded as TOML.
func (c *Config) String() string {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Sprintf("<config encode error: %v>", err)
	}
	return buf.String()
}

// =============================================================================
// SINGLETON PATTERN (THREAD-SAFE)
// =============================================================================

var (
	globalConfig     *Config
	globalConfigOnce sync.Once
	globalConfigMu   sync.RWMutex
)

// Global returns the global configuration instance.
// Loads configuration on first access; falls back to defaults on error.
func Global() *Config {
	globalConfigOnce.Do(func() {
		cfg, err := Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
			cfg = Default()
		}
		globalConfigMu.Lock()
		globalConfig = cfg
		globalConfigMu.Unlock()
	})

	globalConfigMu.RLock()
	defer globalConfigMu.RUnlock()
	return globalConfig
}

// SetGlobal sets the global configuration instance. Thread-safe.
func SetGlobal(cfg *Config) {
	globalConfigOnce.Do(func() {})
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
}

// ResetGlobalForTesting resets the global config state for testing.
func ResetGlobalForTesting() {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = nil
	globalConfigOnce = sync.Once{}
}
