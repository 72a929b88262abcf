// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/animastery-tui/internal/api"
	"github.com/jeranaias/animastery-tui/internal/config"
	"github.com/jeranaias/animastery-tui/internal/model"
	"github.com/jeranaias/animastery-tui/internal/storage"
	"github.com/jeranaias/animastery-tui/internal/ui/components"
	"github.com/jeranaias/animastery-tui/internal/ui/styles"
)

// Assistant replies that stand in for a real answer.
const (
	ErrorReply            = "Sorry, I encountered an error. Please try again."
	VideoUnavailableReply = "I apologize, but this video is currently unavailable. I'll try to find an alternative resource for you."
)

// =============================================================================
// COLLABORATORS
// =============================================================================

// Querier sends a message to the assistant backend.
type Querier interface {
	Query(ctx context.Context, message, model string) (*api.Response, error)
}

// VideoSource checks videos and builds their URLs.
type VideoSource interface {
	IsAvailable(ctx context.Context, id string) bool
	EmbedURL(id string) string
	WatchURL(id string) string
}

// Options configures a chat Model.
type Options struct {
	// Context bounds every request; cancel it on exit
	Context context.Context

	Querier Querier
	Videos  VideoSource

	// Prefs persists the theme; nil keeps it in memory only
	Prefs storage.Prefs

	// IsDark is the starting mode (see styles.InitialDark)
	IsDark bool

	// Model is the starting model id; invalid ids fall back to the default
	Model string

	// Reconfigure builds new collaborators after a config reload
	Reconfigure func(*config.Config) (Querier, VideoSource)

	// OpenURL and CopyText default to the system browser and clipboard
	OpenURL  func(string) error
	CopyText func(string) error
}

// =============================================================================
// CHAT MODEL
// =============================================================================

// Model is the Bubble Tea model for the chat. Bubble Tea calls Update from a
// single goroutine, which makes Update the only writer of the conversation,
// the loading flag and the video panel. Requests run in commands and report
// back through messages.
type Model struct {
	ctx     context.Context
	querier Querier
	videos  VideoSource
	prefs   storage.Prefs

	reconfigure func(*config.Config) (Querier, VideoSource)
	openURL     func(string) error
	copyText    func(string) error

	// Conversation state
	conversation  *model.Conversation
	loading       bool
	selectedModel string
	panel         model.VideoPanel

	// selectedVideo indexes conversation.VideoEntries(), -1 for none
	selectedVideo int

	// checking is the id of the last availability check still pending
	checking string

	// Styling
	theme *styles.Theme

	// Dimensions
	width  int
	height int

	// Components
	input     textarea.Model
	viewport  viewport.Model
	typing    components.TypingIndicator
	header    *components.Header
	bubble    *components.MessageBubble
	panelView *components.VideoPanelView
	statusBar *components.StatusBar
	markdown  *components.Markdown
	keyMap    KeyMap

	// info is a multi-line block shown above the input (help, model list)
	info string
}

// New creates a chat model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	selected := opts.Model
	if !model.IsSupportedModel(selected) {
		selected = model.DefaultModelID
	}

	theme := styles.NewTheme(opts.IsDark)
	theme.SetSize(80, 24)
	theme.Apply()

	keyMap := DefaultKeyMap()

	ta := textarea.New()
	ta.Placeholder = "Ask about animation..."
	ta.ShowLineNumbers = false
	ta.Prompt = "> "
	ta.CharLimit = 4000
	ta.SetHeight(3)
	ta.SetWidth(78)
	ta.KeyMap.InsertNewline = keyMap.Newline
	ta.Focus()

	vp := viewport.New(80, 10)

	md := components.NewMarkdown(theme.GlamourStyle(), 72)

	openURL := opts.OpenURL
	if openURL == nil {
		openURL = openBrowser
	}
	copyText := opts.CopyText
	if copyText == nil {
		copyText = copyToClipboard
	}

	m := Model{
		ctx:           ctx,
		querier:       opts.Querier,
		videos:        opts.Videos,
		prefs:         opts.Prefs,
		reconfigure:   opts.Reconfigure,
		openURL:       openURL,
		copyText:      copyText,
		conversation:  model.NewConversation(),
		selectedModel: selected,
		selectedVideo: -1,
		theme:         theme,
		width:         80,
		height:        24,
		input:         ta,
		viewport:      vp,
		typing:        components.NewTypingIndicator(theme),
		header:        components.NewHeader(theme),
		bubble:        components.NewMessageBubble(theme, md, 76),
		panelView:     components.NewVideoPanelView(theme, 80),
		statusBar:     components.NewStatusBar(theme),
		markdown:      md,
		keyMap:        keyMap,
	}
	m.refresh(false)
	return m
}

// =============================================================================
// BUBBLE TEA INTERFACE
// =============================================================================

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// =============================================================================
// ACCESSORS
// =============================================================================

// Conversation returns the in-memory conversation.
func (m Model) Conversation() *model.Conversation {
	return m.conversation
}

// Loading reports whether a query is in flight.
func (m Model) Loading() bool {
	return m.loading
}

// SelectedModel returns the id forwarded with each query.
func (m Model) SelectedModel() string {
	return m.selectedModel
}

// IsDark reports whether dark mode is active.
func (m Model) IsDark() bool {
	return m.theme.IsDark
}

// Panel returns the video panel state.
func (m Model) Panel() model.VideoPanel {
	return m.panel
}

// SelectedVideo returns the selected video entry, if any.
func (m Model) SelectedVideo() (model.VideoEntry, bool) {
	entries := m.conversation.VideoEntries()
	if m.selectedVideo < 0 || m.selectedVideo >= len(entries) {
		return model.VideoEntry{}, false
	}
	return entries[m.selectedVideo], true
}

// InputValue returns the current input text.
func (m Model) InputValue() string {
	return m.input.Value()
}

// SetInputValue replaces the input text.
func (m *Model) SetInputValue(s string) {
	m.input.SetValue(s)
}

// Notice returns the transient status line.
func (m Model) Notice() string {
	return m.statusBar.Notice
}

// Info returns the multi-line info block, if shown.
func (m Model) Info() string {
	return m.info
}

// KeyMap returns the key bindings.
func (m Model) KeyMap() KeyMap {
	return m.keyMap
}
