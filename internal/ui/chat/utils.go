// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/atotto/clipboard"
)

// =============================================================================
// CLIPBOARD UTILITIES
// =============================================================================

// copyToClipboard copies the given text to the system clipboard.
// Returns an error if the clipboard is not available or the operation fails.
func copyToClipboard(text string) error {
	return clipboard.WriteAll(text)
}

// =============================================================================
// BROWSER UTILITIES
// =============================================================================

// openBrowser opens url in the default application for the OS.
func openBrowser(url string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	case "darwin":
		cmd = exec.Command("open", url)
	case "linux", "freebsd", "openbsd", "netbsd":
		cmd = exec.Command("xdg-open", url)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}

	return cmd.Start()
}
