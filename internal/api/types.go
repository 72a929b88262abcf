// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import "github.com/jeranaias/animastery-tui/internal/model"

// QueryRequest is the JSON body of POST /query.
type QueryRequest struct {
	Query string `json:"query"`
	Model string `json:"model"`
}

// queryResponse mirrors the wire shape. Text is a pointer so a missing
// field can be told apart from a present one.
type queryResponse struct {
	Text   *string           `json:"text"`
	Videos []model.VideoInfo `json:"videos,omitempty"`
}

// Response is a successful assistant reply.
type Response struct {
	Text   string
	Videos []model.VideoInfo
}

// HasVideos reports whether the reply carries recommendations.
func (r *Response) HasVideos() bool {
	return r != nil && len(r.Videos) > 0
}
