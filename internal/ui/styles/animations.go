// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import "time"

// SpinnerConfig defines a frame-based animation.
type SpinnerConfig struct {
	Frames []string
	FPS    int
}

// Duration returns the time per frame.
func (s SpinnerConfig) Duration() time.Duration {
	if s.FPS <= 0 {
		return 100 * time.Millisecond
	}
	return time.Second / time.Duration(s.FPS)
}

// TypingDots animates the assistant typing indicator.
var TypingDots = SpinnerConfig{
	Frames: []string{"●∙∙", "∙●∙", "∙∙●", "∙●∙"},
	FPS:    6,
}

