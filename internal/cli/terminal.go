// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// terminal.go - Terminal detection for the animastery CLI.
//
// The chat UIs need a TTY on stdin; colored output needs one on stdout
// and respects NO_COLOR / FORCE_COLOR.

package cli

import (
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Markdown wraps to the terminal width, clamped to this range.
const (
	defaultOutputWidth = 80
	minOutputWidth     = 40
)

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// outputWidth returns the width of stdout, or defaultOutputWidth when it
// is not a terminal.
func outputWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return defaultOutputWidth
	}
	return max(width, minOutputWidth)
}

// outputProfile picks the color profile for CLI output. NO_COLOR wins
// over FORCE_COLOR; otherwise colors follow whether stdout is a terminal.
// See https://no-color.org/.
func outputProfile() termenv.Profile {
	switch {
	case os.Getenv("NO_COLOR") != "":
		return termenv.Ascii
	case os.Getenv("FORCE_COLOR") != "", isTerminal(os.Stdout):
		return termenv.ColorProfile()
	default:
		return termenv.Ascii
	}
}

// RequiresTTY returns a *TTYRequiredError if stdin is not a terminal.
func RequiresTTY(operation string) error {
	if !isTerminal(os.Stdin) {
		return &TTYRequiredError{Operation: operation}
	}
	return nil
}

// TTYRequiredError means an interactive command was started without a
// terminal. It maps to the usage exit code.
type TTYRequiredError struct {
	Operation string
}

func (e *TTYRequiredError) Error() string {
	return "stdin is not a terminal; cannot " + e.Operation + " (try 'animastery ask')"
}
