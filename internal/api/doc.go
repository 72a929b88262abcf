// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api provides the HTTP client for the animastery assistant backend.
//
// Every query is preceded by a liveness probe against the base URL. If the
// probe cannot reach the server, the query is not sent.
//
// # Key Types
//
//   - Client: Probe and query operations, safe for concurrent use
//   - Response: Assistant text plus optional video recommendations
//   - Error: Categorized failure, comparable with errors.Is against the
//     ErrCannotConnect, ErrServerStatus and ErrInvalidResponse sentinels
//
// # Usage
//
//	client := api.NewClient(&api.ClientConfig{BaseURL: "http://localhost:8000"})
//	resp, err := client.Query(ctx, "What is squash and stretch?", "gpt-3.5-turbo")
//	if errors.Is(err, api.ErrCannotConnect) {
//	    // backend down
//	}
package api
