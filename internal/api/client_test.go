// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/animastery-tui/internal/model"
)

// backend returns a test server that answers the probe with 200 and hands
// POST /query to handler.
func backend(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet && r.URL.Path == "/" {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"message":"ok"}`))
			return
		}
		handler(w, r)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestQuery_Success(t *testing.T) {
	var got QueryRequest
	srv := backend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/query", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		_, _ = w.Write([]byte(`{"text":"Hello","videos":[{"title":"A","video_id":"abc123","channel":"C"}]}`))
	})

	client := NewClient(&ClientConfig{BaseURL: srv.URL + "/"})
	resp, err := client.Query(context.Background(), "what is anime?", "google/gemini-2.0-flash-exp:free")
	require.NoError(t, err)

	assert.Equal(t, QueryRequest{Query: "what is anime?", Model: "google/gemini-2.0-flash-exp:free"}, got)
	assert.Equal(t, "Hello", resp.Text)
	assert.True(t, resp.HasVideos())
	assert.Equal(t, []model.VideoInfo{{Title: "A", VideoID: "abc123", Channel: "C"}}, resp.Videos)
}

func TestQuery_VideosOptional(t *testing.T) {
	srv := backend(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"text":"Just text"}`))
	})

	resp, err := NewClient(&ClientConfig{BaseURL: srv.URL}).Query(context.Background(), "hi", "gpt-3.5-turbo")
	require.NoError(t, err)
	assert.Equal(t, "Just text", resp.Text)
	assert.False(t, resp.HasVideos())
}

func TestQuery_ServerStatus(t *testing.T) {
	srv := backend(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	})

	_, err := NewClient(&ClientConfig{BaseURL: srv.URL}).Query(context.Background(), "hi", "gpt-3.5-turbo")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrServerStatus))
	assert.False(t, errors.Is(err, ErrCannotConnect))
	assert.Equal(t, "server error: 500 - boom", err.Error())

	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 500, apiErr.StatusCode)
	assert.Equal(t, "boom", apiErr.Body)
}

func TestQuery_InvalidResponses(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", "<html>oops</html>"},
		{"missing text", `{"videos":[]}`},
		{"empty text", `{"text":""}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := backend(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			})

			resp, err := NewClient(&ClientConfig{BaseURL: srv.URL}).Query(context.Background(), "hi", "gpt-3.5-turbo")
			assert.Nil(t, resp)
			assert.True(t, errors.Is(err, ErrInvalidResponse), "got %v", err)
		})
	}
}

func TestQuery_ProbeStatusIgnored(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(`{"text":"still answered"}`))
	}))
	defer srv.Close()

	resp, err := NewClient(&ClientConfig{BaseURL: srv.URL}).Query(context.Background(), "hi", "gpt-3.5-turbo")
	require.NoError(t, err)
	assert.Equal(t, "still answered", resp.Text)
}

// failingProbe fails every GET at the transport level and counts POSTs.
type failingProbe struct {
	posts atomic.Int32
}

func (f *failingProbe) RoundTrip(r *http.Request) (*http.Response, error) {
	if r.Method == http.MethodPost {
		f.posts.Add(1)
		return &http.Response{StatusCode: 200, Body: io.NopCloser(strings.NewReader(`{"text":"x"}`)), Request: r}, nil
	}
	return nil, errors.New("connection refused")
}

func TestQuery_ProbeFailureSkipsPost(t *testing.T) {
	rt := &failingProbe{}
	client := NewClient(&ClientConfig{
		BaseURL:    "http://backend.invalid",
		HTTPClient: &http.Client{Transport: rt},
	})

	resp, err := client.Query(context.Background(), "hi", "gpt-3.5-turbo")
	assert.Nil(t, resp)
	assert.True(t, errors.Is(err, ErrCannotConnect))
	assert.Contains(t, err.Error(), "cannot connect to the server")
	assert.Equal(t, int32(0), rt.posts.Load(), "query must not be sent after a failed probe")
}

func TestCheckRunning(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	assert.NoError(t, NewClient(&ClientConfig{BaseURL: srv.URL}).CheckRunning(context.Background()))

	srv.Close()
	err := NewClient(&ClientConfig{BaseURL: srv.URL}).CheckRunning(context.Background())
	assert.True(t, errors.Is(err, ErrCannotConnect))
}

func TestCheckRunning_CanceledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewClient(&ClientConfig{BaseURL: srv.URL}).CheckRunning(ctx)
	assert.True(t, errors.Is(err, ErrCannotConnect))
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestNewClient_Defaults(t *testing.T) {
	assert.Equal(t, DefaultBaseURL, NewClient(nil).BaseURL())
	assert.Equal(t, "http://x:1", NewClient(&ClientConfig{BaseURL: "http://x:1///"}).BaseURL())
}

func TestErrorKind_String(t *testing.T) {
	assert.Equal(t, "cannot_connect", ErrKindCannotConnect.String())
	assert.Equal(t, "server_status", ErrKindServerStatus.String())
	assert.Equal(t, "invalid_response", ErrKindInvalidResponse.String())
	assert.Equal(t, "unknown", ErrorKind(99).String())
}
