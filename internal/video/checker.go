// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package video checks whether recommended videos can be embedded and builds
// the URLs used to show them.
package video

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// DefaultHost is the video host used when none is configured.
const DefaultHost = "www.youtube.com"

// PermissionPolicy lists the capabilities granted to the embedded player.
const PermissionPolicy = "accelerometer; autoplay; clipboard-write; encrypted-media; gyroscope; picture-in-picture; fullscreen"

// CheckerConfig holds configuration options for the availability checker.
type CheckerConfig struct {
	// Host serves /oembed, /watch and /embed
	Host string

	// Scheme defaults to https
	Scheme string

	// ChecksPerSecond and Burst shape outbound checks (default 2/s, burst 4)
	ChecksPerSecond float64
	Burst           int

	// Timeout bounds each check; 0 leaves the transport defaults
	Timeout time.Duration

	// HTTPClient overrides the transport (tests)
	HTTPClient *http.Client
}

// Checker asks the host's oEmbed endpoint whether a video exists and may be
// embedded. It is safe for concurrent use.
type Checker struct {
	scheme     string
	host       string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewChecker creates a checker. A nil config uses the defaults.
func NewChecker(config *CheckerConfig) *Checker {
	if config == nil {
		config = &CheckerConfig{}
	}

	c := &Checker{
		scheme: config.Scheme,
		host:   strings.TrimSpace(config.Host),
	}
	if c.scheme == "" {
		c.scheme = "https"
	}
	if c.host == "" {
		c.host = DefaultHost
	}

	perSecond := config.ChecksPerSecond
	if perSecond <= 0 {
		perSecond = 2
	}
	burst := config.Burst
	if burst <= 0 {
		burst = 4
	}
	c.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)

	c.httpClient = config.HTTPClient
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: config.Timeout}
	}
	return c
}

// Host returns the configured video host.
func (c *Checker) Host() string {
	return c.host
}

// WatchURL returns the canonical watch page for id.
func (c *Checker) WatchURL(id string) string {
	return c.scheme + "://" + c.host + "/watch?v=" + url.QueryEscape(id)
}

// EmbedURL returns the embeddable player URL for id.
func (c *Checker) EmbedURL(id string) string {
	return c.scheme + "://" + c.host + "/embed/" + url.PathEscape(id)
}

// OEmbedURL returns the oEmbed metadata URL for id.
func (c *Checker) OEmbedURL(id string) string {
	q := url.Values{}
	q.Set("url", c.WatchURL(id))
	q.Set("format", "json")
	return c.scheme + "://" + c.host + "/oembed?" + q.Encode()
}

// IsAvailable reports whether the oEmbed endpoint answers id with a 2xx
// status. Every failure, including a canceled context, reads as unavailable.
// There is no retry.
func (c *Checker) IsAvailable(ctx context.Context, id string) bool {
	if strings.TrimSpace(id) == "" {
		return false
	}

	if err := c.limiter.Wait(ctx); err != nil {
		slog.Warn("video check not started", "video_id", id, "error", err)
		return false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.OEmbedURL(id), nil)
	if err != nil {
		slog.Warn("video check request invalid", "video_id", id, "error", err)
		return false
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Warn("video check failed", "video_id", id, "error", err)
		return false
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	ok := resp.StatusCode >= 200 && resp.StatusCode <= 299
	slog.Debug("video check", "video_id", id, "status", resp.StatusCode, "available", ok)
	return ok
}
