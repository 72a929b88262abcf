// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"errors"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/animastery-tui/internal/model"
	"github.com/jeranaias/animastery-tui/internal/ui/styles"
	"github.com/jeranaias/animastery-tui/internal/util"
)

var errNoBackend = errors.New("no backend configured")

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.refresh(false)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case QueryResultMsg:
		return m.handleQueryResult(msg)

	case VideoCheckedMsg:
		return m.handleVideoChecked(msg)

	case ConfigReloadedMsg:
		return m.handleConfigReloaded(msg)

	case NoticeMsg:
		m.statusBar.Notice = msg.Text
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.typing, cmd = m.typing.Update(msg)
		return m, cmd
	}

	// Cursor blink and anything else the input understands
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.statusBar.Notice = ""

	switch {
	case key.Matches(msg, m.keyMap.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keyMap.Submit):
		text := m.input.Value()
		if !m.loading {
			if handled, next, cmd := m.runCommand(text); handled {
				next.input.Reset()
				next.refresh(false)
				return next, cmd
			}
		}
		return m.Submit(text)

	case key.Matches(msg, m.keyMap.ToggleTheme):
		return m.ToggleTheme()

	case key.Matches(msg, m.keyMap.CycleModel):
		return m.CycleModel()

	case key.Matches(msg, m.keyMap.NextVideo):
		m.moveSelection(1)
		return m, nil

	case key.Matches(msg, m.keyMap.PrevVideo):
		m.moveSelection(-1)
		return m, nil

	case key.Matches(msg, m.keyMap.OpenVideo):
		entry, ok := m.SelectedVideo()
		if !ok {
			m.statusBar.Notice = "No video selected"
			return m, nil
		}
		return m.OpenVideo(entry.Video.VideoID)

	case key.Matches(msg, m.keyMap.CloseVideo):
		if m.panel.Visible {
			return m.CloseVideo()
		}
		if m.info != "" {
			m.info = ""
			m.refresh(false)
		}
		return m, nil

	case key.Matches(msg, m.keyMap.OpenBrowser):
		return m, m.openInBrowser()

	case key.Matches(msg, m.keyMap.CopyLink):
		return m, m.copyWatchLink()

	case key.Matches(msg, m.keyMap.PageUp):
		m.viewport.ViewUp()
		return m, nil

	case key.Matches(msg, m.keyMap.PageDown):
		m.viewport.ViewDown()
		return m, nil
	}

	// Text editing; the input ignores keys while blurred
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// =============================================================================
// CONVERSATION
// =============================================================================

// Submit sends text to the assistant exactly as typed. Blank text and
// submissions while a reply is pending are ignored.
func (m Model) Submit(text string) (Model, tea.Cmd) {
	if m.loading || util.IsBlank(text) {
		return m, nil
	}

	m.conversation.Append(model.NewUserMessage(text))
	m.input.Reset()
	m.input.Blur()
	m.loading = true
	m.info = ""
	m.refresh(true)

	return m, tea.Batch(m.queryCmd(text, m.selectedModel), m.typing.Tick)
}

func (m Model) queryCmd(text, modelID string) tea.Cmd {
	ctx, q := m.ctx, m.querier
	return func() tea.Msg {
		if q == nil {
			return QueryResultMsg{Err: errNoBackend}
		}
		resp, err := q.Query(ctx, text, modelID)
		return QueryResultMsg{Response: resp, Err: err}
	}
}

func (m Model) handleQueryResult(msg QueryResultMsg) (tea.Model, tea.Cmd) {
	if !m.loading {
		slog.Warn("dropping query result with no request in flight")
		return m, nil
	}
	m.loading = false

	if msg.Err != nil || msg.Response == nil {
		slog.Error("query failed", "model", m.selectedModel, "error", msg.Err)
		m.conversation.Append(model.NewAssistantMessage(ErrorReply, nil))
	} else {
		reply := model.NewAssistantMessage(msg.Response.Text, msg.Response.Videos)
		m.conversation.Append(reply)
		if reply.HasVideos() {
			// Select the first of the new entries
			m.selectedVideo = len(m.conversation.VideoEntries()) - len(reply.Videos)
		}
	}

	cmd := m.input.Focus()
	m.refresh(true)
	return m, cmd
}

// moveSelection moves the video entry selection by delta, wrapping.
func (m *Model) moveSelection(delta int) {
	n := len(m.conversation.VideoEntries())
	if n == 0 {
		m.selectedVideo = -1
		return
	}
	if m.selectedVideo < 0 {
		if delta > 0 {
			m.selectedVideo = 0
		} else {
			m.selectedVideo = n - 1
		}
	} else {
		m.selectedVideo = ((m.selectedVideo+delta)%n + n) % n
	}
	m.refresh(false)
}

// =============================================================================
// VIDEO PANEL
// =============================================================================

// OpenVideo checks whether videoID can be embedded. The panel opens when
// the check succeeds; otherwise an apology is appended.
func (m Model) OpenVideo(videoID string) (Model, tea.Cmd) {
	m.checking = videoID
	m.statusBar.Notice = "Checking video availability..."

	ctx, src := m.ctx, m.videos
	return m, func() tea.Msg {
		if src == nil {
			return VideoCheckedMsg{VideoID: videoID}
		}
		return VideoCheckedMsg{VideoID: videoID, Available: src.IsAvailable(ctx, videoID)}
	}
}

func (m Model) handleVideoChecked(msg VideoCheckedMsg) (tea.Model, tea.Cmd) {
	if m.checking == msg.VideoID {
		m.checking = ""
		m.statusBar.Notice = ""
	}

	if msg.Available {
		m.panel.Open(msg.VideoID)
		m.refresh(false)
		return m, nil
	}

	slog.Info("video unavailable", "video_id", msg.VideoID)
	m.conversation.Append(model.NewAssistantMessage(VideoUnavailableReply, nil))
	m.refresh(true)
	return m, nil
}

// CloseVideo hides the panel.
func (m Model) CloseVideo() (Model, tea.Cmd) {
	m.panel.Close()
	m.refresh(false)
	return m, nil
}

func (m Model) openInBrowser() tea.Cmd {
	if !m.panel.Showing() || m.videos == nil {
		return nil
	}
	url, open := m.videos.EmbedURL(m.panel.VideoID), m.openURL
	return func() tea.Msg {
		if err := open(url); err != nil {
			slog.Warn("failed to open browser", "url", url, "error", err)
			return NoticeMsg{Text: "Could not open browser: " + err.Error()}
		}
		return NoticeMsg{Text: "Opened " + url}
	}
}

func (m Model) copyWatchLink() tea.Cmd {
	if !m.panel.Showing() || m.videos == nil {
		return nil
	}
	url, copyFn := m.videos.WatchURL(m.panel.VideoID), m.copyText
	return func() tea.Msg {
		if err := copyFn(url); err != nil {
			slog.Warn("failed to copy link", "error", err)
			return NoticeMsg{Text: "Clipboard unavailable: " + err.Error()}
		}
		return NoticeMsg{Text: "Copied " + url}
	}
}

// =============================================================================
// MODEL AND THEME
// =============================================================================

// SelectModel makes id the model forwarded with later queries. Ids outside
// the catalogue are rejected and the selection is left unchanged.
func (m Model) SelectModel(id string) (Model, error) {
	if err := model.ValidateModel(id); err != nil {
		return m, err
	}
	m.selectedModel = id
	m.refresh(false)
	return m, nil
}

// CycleModel selects the next catalogue entry.
func (m Model) CycleModel() (Model, tea.Cmd) {
	next := model.NextModel(m.selectedModel)
	m.selectedModel = next.ID
	m.statusBar.Notice = "Model: " + next.Name
	m.refresh(false)
	return m, nil
}

// ToggleTheme flips between dark and light, applies the change process-wide
// and persists it.
func (m Model) ToggleTheme() (Model, tea.Cmd) {
	m.setTheme(m.theme.Toggled())

	if err := styles.PersistDark(m.prefs, m.theme.IsDark); err != nil {
		slog.Warn("failed to persist theme", "error", err)
		m.statusBar.Notice = "Theme not saved: " + err.Error()
	}
	m.refresh(false)
	return m, nil
}

func (m *Model) setTheme(theme *styles.Theme) {
	m.theme = theme
	m.header.SetTheme(theme)
	m.bubble.SetTheme(theme)
	m.panelView.SetTheme(theme)
	m.statusBar.SetTheme(theme)
	m.typing.SetTheme(theme)
	m.markdown.Configure(theme.GlamourStyle(), m.markdownWidth())
}

// =============================================================================
// CONFIG RELOAD
// =============================================================================

func (m Model) handleConfigReloaded(msg ConfigReloadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil || msg.Config == nil {
		m.statusBar.Notice = "Config reload failed; keeping current settings"
		return m, nil
	}
	if m.reconfigure != nil {
		q, v := m.reconfigure(msg.Config)
		if q != nil {
			m.querier = q
		}
		if v != nil {
			m.videos = v
		}
	}
	slog.Info("applied reloaded config", "backend", msg.Config.Backend.URL, "video_host", msg.Config.Video.Host)
	m.statusBar.Notice = "Configuration reloaded"
	return m, nil
}
