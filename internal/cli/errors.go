// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// errors.go - Error display and exit codes for CLI commands.
//
// Commands always return errors; Execute's caller formats them with
// FormatError and exits with ExitCode.

package cli

import (
	"errors"
	"fmt"

	"github.com/jeranaias/animastery-tui/internal/api"
)

// =============================================================================
// EXIT CODES
// =============================================================================

const (
	ExitSuccess      = 0
	ExitGeneralError = 1
	ExitUsageError   = 2

	// ExitConfigError indicates a bad config file, env value or flag
	ExitConfigError = 3

	ExitNetworkError = 5

	// ExitNotFoundError indicates an unavailable video
	ExitNotFoundError = 7
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// ConfigError wraps a failure to load or validate configuration.
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("configuration error: %v", e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// =============================================================================
// DISPLAY
// =============================================================================

// ExitCode maps err to a process exit code.
func ExitCode(err error) int {
	var cfgErr *ConfigError
	var ttyErr *TTYRequiredError

	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &cfgErr):
		return ExitConfigError
	case errors.As(err, &ttyErr):
		return ExitUsageError
	case errors.Is(err, ErrBackendUnreachable), errors.Is(err, api.ErrCannotConnect), errors.Is(err, api.ErrServerStatus):
		return ExitNetworkError
	case errors.Is(err, ErrVideoUnavailable):
		return ExitNotFoundError
	default:
		return ExitGeneralError
	}
}

// FormatError renders err for the terminal, with a hint when one helps.
func FormatError(err error) string {
	msg := ErrorStyle.Render("Error:") + " " + err.Error()

	var hint string
	switch {
	case errors.Is(err, api.ErrCannotConnect), errors.Is(err, ErrBackendUnreachable):
		hint = "Is the backend running? Set its address with --backend or 'animastery config set backend.url <url>'."
	case errors.As(err, new(*ConfigError)):
		hint = "Run 'animastery config path' to find the config file."
	}
	if hint != "" {
		msg += "\n" + DimStyle.Render(hint)
	}
	return msg
}
