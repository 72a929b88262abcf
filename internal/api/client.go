// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// ErrorKind categorizes client errors for handling.
type ErrorKind int

const (
	ErrKindUnknown ErrorKind = iota
	ErrKindCannotConnect
	ErrKindServerStatus
	ErrKindInvalidResponse
)

func (k ErrorKind) String() string {
	switch k {
	case ErrKindCannotConnect:
		return "cannot_connect"
	case ErrKindServerStatus:
		return "server_status"
	case ErrKindInvalidResponse:
		return "invalid_response"
	default:
		return "unknown"
	}
}

// Error represents a failed probe or query.
type Error struct {
	Kind    ErrorKind
	Message string

	// StatusCode and Body are set for ErrKindServerStatus
	StatusCode int
	Body       string

	Cause error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches any *Error of the same kind, so errors.Is works against the
// sentinels below regardless of status or cause.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinel errors for easy checking.
var (
	ErrCannotConnect   = &Error{Kind: ErrKindCannotConnect, Message: "cannot connect to the server"}
	ErrServerStatus    = &Error{Kind: ErrKindServerStatus, Message: "server error"}
	ErrInvalidResponse = &Error{Kind: ErrKindInvalidResponse, Message: "invalid response format from server"}
)

// =============================================================================
// CLIENT CONFIGURATION
// =============================================================================

// DefaultBaseURL is used when ClientConfig.BaseURL is empty.
const DefaultBaseURL = "http://localhost:8000"

// ClientConfig holds configuration options for the API client.
type ClientConfig struct {
	// BaseURL is the backend root; the probe hits it directly
	BaseURL string

	// Timeout bounds each request. Zero means no client-side timeout.
	Timeout time.Duration

	// HTTPClient overrides the transport (tests)
	HTTPClient *http.Client
}

// =============================================================================
// CLIENT
// =============================================================================

// Client talks to the assistant backend. It never retries and never caches.
//
// The Client is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client. A nil config uses the defaults.
func NewClient(config *ClientConfig) *Client {
	if config == nil {
		config = &ClientConfig{}
	}

	baseURL := strings.TrimRight(config.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: config.Timeout}
	}

	return &Client{baseURL: baseURL, httpClient: httpClient}
}

// BaseURL returns the backend root the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// =============================================================================
// HEALTH CHECK
// =============================================================================

// CheckRunning probes the backend root. Only a transport failure is an
// error; any HTTP status counts as reachable and is logged.
func (c *Client) CheckRunning(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return &Error{Kind: ErrKindCannotConnect, Message: ErrCannotConnect.Message, Cause: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Warn("backend probe failed", "url", c.baseURL, "error", err)
		return &Error{Kind: ErrKindCannotConnect, Message: ErrCannotConnect.Message, Cause: err}
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	slog.Debug("backend probe", "url", c.baseURL, "status", resp.StatusCode)
	return nil
}

// =============================================================================
// QUERY
// =============================================================================

// Query probes the backend and, if it is reachable, posts the message with
// the chosen model id. The reply must carry a non-empty text field; videos
// are optional.
func (c *Client) Query(ctx context.Context, message, model string) (*Response, error) {
	if err := c.CheckRunning(ctx); err != nil {
		return nil, err
	}

	body, err := json.Marshal(QueryRequest{Query: message, Model: model})
	if err != nil {
		return nil, &Error{Kind: ErrKindUnknown, Message: "failed to marshal request", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/query", bytes.NewReader(body))
	if err != nil {
		return nil, &Error{Kind: ErrKindCannotConnect, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	slog.Debug("sending query", "model", model, "length", len(message))
	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Warn("query request failed", "error", err)
		return nil, &Error{Kind: ErrKindCannotConnect, Message: ErrCannotConnect.Message, Cause: err}
	}
	defer resp.Body.Close()

	slog.Debug("query response", "status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(resp.Body)
		text := string(raw)
		slog.Error("server error", "status", resp.StatusCode, "body", text)
		return nil, &Error{
			Kind:       ErrKindServerStatus,
			Message:    fmt.Sprintf("server error: %d - %s", resp.StatusCode, text),
			StatusCode: resp.StatusCode,
			Body:       text,
		}
	}

	var result queryResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		slog.Error("failed to decode query response", "error", err)
		return nil, &Error{Kind: ErrKindInvalidResponse, Message: ErrInvalidResponse.Message, Cause: err}
	}
	if result.Text == nil || *result.Text == "" {
		slog.Error("query response missing text")
		return nil, ErrInvalidResponse
	}

	return &Response{Text: *result.Text, Videos: result.Videos}, nil
}
