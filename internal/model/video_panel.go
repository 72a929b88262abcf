// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

// VideoPanel holds the visibility state of the embedded video panel.
// The zero value is a closed panel.
type VideoPanel struct {
	Visible bool
	VideoID string
}

// Open shows the panel for videoID.
func (p *VideoPanel) Open(videoID string) {
	p.Visible = true
	p.VideoID = videoID
}

// Close hides the panel and forgets the video id.
func (p *VideoPanel) Close() {
	p.Visible = false
	p.VideoID = ""
}

// Showing reports whether a video is currently displayed.
func (p VideoPanel) Showing() bool {
	return p.Visible && p.VideoID != ""
}
