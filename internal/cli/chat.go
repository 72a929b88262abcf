// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// chat.go - Line-mode chat for terminals where the full-screen UI is
// unwanted (screen readers, tmux logging, slow links).
//
// Command: chat
// Short:   Chat in line mode with input history
//
// Interactive Commands (during chat):
//   /help               Show available commands
//   /model [id]         Show or switch model
//   /models             List models
//   /video <id|n>       Check a video (n = number from the last reply)
//   /clear              Start a new conversation
//   /quit, /q           Exit chat
//   Ctrl+C              Cancel the pending reply
//   Ctrl+D              Exit chat

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/jeranaias/animastery-tui/internal/config"
	"github.com/jeranaias/animastery-tui/internal/model"
	"github.com/jeranaias/animastery-tui/internal/ui/chat"
	"github.com/jeranaias/animastery-tui/internal/ui/components"
	"github.com/jeranaias/animastery-tui/internal/ui/styles"
	"github.com/jeranaias/animastery-tui/internal/util"
)

// =============================================================================
// INPUT HISTORY
// =============================================================================

// ChatCLI provides input history and line editing for line-mode chat.
type ChatCLI struct {
	line        *liner.State
	historyFile string
}

// NewChatCLI creates a ChatCLI that keeps history in historyFile.
func NewChatCLI(historyFile string) *ChatCLI {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	c := &ChatCLI{line: line, historyFile: historyFile}
	c.LoadHistory()
	return c
}

// LoadHistory loads command history from file.
func (c *ChatCLI) LoadHistory() {
	if f, err := os.Open(c.historyFile); err == nil {
		c.line.ReadHistory(f)
		f.Close()
	}
}

// ReadInput reads a line of input with the given prompt.
func (c *ChatCLI) ReadInput(prompt string) (string, error) {
	input, err := c.line.Prompt(prompt)
	if err != nil {
		return "", err
	}
	if !util.IsBlank(input) {
		c.line.AppendHistory(input)
	}
	return input, nil
}

// SaveHistory persists command history (0600).
func (c *ChatCLI) SaveHistory() {
	if err := os.MkdirAll(filepath.Dir(c.historyFile), 0755); err != nil {
		return
	}
	f, err := os.OpenFile(c.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return
	}
	defer f.Close()
	c.line.WriteHistory(f)
}

// Close saves history and restores the terminal.
func (c *ChatCLI) Close() {
	c.SaveHistory()
	c.line.Close()
}

// =============================================================================
// SESSION STATE
// =============================================================================

// ChatSession holds the state for a line-mode conversation.
type ChatSession struct {
	Client       chat.Querier
	Videos       chat.VideoSource
	Model        string
	Conversation *model.Conversation
	Markdown     *components.Markdown
	Out          io.Writer

	// recent holds the videos of the last reply, numbered from 1
	recent []model.VideoInfo
}

// NewChatSession creates a session writing to out.
func NewChatSession(client chat.Querier, videos chat.VideoSource, modelID string, md *components.Markdown, out io.Writer) *ChatSession {
	if !model.IsSupportedModel(modelID) {
		modelID = model.DefaultModelID
	}
	return &ChatSession{
		Client:       client,
		Videos:       videos,
		Model:        modelID,
		Conversation: model.NewConversation(),
		Markdown:     md,
		Out:          out,
	}
}

// HandleInput processes one line. Anything that is not a known slash
// command is sent as typed. It returns false when the user asked to leave.
func (s *ChatSession) HandleInput(ctx context.Context, input string) (bool, error) {
	if util.IsBlank(input) {
		return true, nil
	}

	if strings.HasPrefix(strings.TrimSpace(input), "/") {
		if cont, handled, err := s.handleSlashCommand(ctx, input); handled {
			return cont, err
		}
	}

	s.processMessage(ctx, input)
	return true, nil
}

// processMessage sends input and prints the reply.
func (s *ChatSession) processMessage(ctx context.Context, input string) {
	s.Conversation.Append(model.NewUserMessage(input))

	var reply model.ChatMessage
	if s.Client == nil {
		reply = model.NewAssistantMessage(chat.ErrorReply, nil)
	} else if resp, err := s.Client.Query(ctx, input, s.Model); err != nil {
		slog.Error("query failed", "model", s.Model, "error", err)
		reply = model.NewAssistantMessage(chat.ErrorReply, nil)
	} else {
		reply = model.NewAssistantMessage(resp.Text, resp.Videos)
	}

	s.Conversation.Append(reply)
	s.printReply(reply)
}

func (s *ChatSession) printReply(msg model.ChatMessage) {
	fmt.Fprintf(s.Out, "%s %s\n", SenderStyle.Render(msg.Sender.DisplayName()),
		DimStyle.Render(msg.Timestamp.Format(components.TimeFormat)))
	fmt.Fprintln(s.Out, s.Markdown.Render(msg.Text))

	if !msg.HasVideos() {
		return
	}
	s.recent = msg.Videos
	fmt.Fprintln(s.Out)
	for i, v := range msg.Videos {
		fmt.Fprintf(s.Out, "  %d. %s\n", i+1, v.Label())
	}
	fmt.Fprintln(s.Out, DimStyle.Render("  /video <n> to watch"))
}

// handleSlashCommand runs a known command. Unknown words are not handled
// and fall through to the assistant.
func (s *ChatSession) handleSlashCommand(ctx context.Context, input string) (cont, handled bool, err error) {
	fields := util.CommandFields(input)
	name, args := strings.ToLower(fields[0]), fields[1:]

	switch name {
	case "/quit", "/q", "/exit":
		return false, true, nil

	case "/help", "/h":
		s.printHelp()
		return true, true, nil

	case "/model":
		if len(args) == 0 {
			fmt.Fprintln(s.Out, renderField("Model", fmt.Sprintf("%s (%s)", model.ModelLabel(s.Model), s.Model)))
			return true, true, nil
		}
		if err := model.ValidateModel(args[0]); err != nil {
			return true, true, err
		}
		s.Model = args[0]
		fmt.Fprintln(s.Out, SuccessStyle.Render("Model: "+model.ModelLabel(s.Model)))
		return true, true, nil

	case "/models":
		printModels(s.Out, s.Model)
		return true, true, nil

	case "/video":
		if len(args) == 0 {
			return true, true, errors.New("usage: /video <id|n>")
		}
		s.checkVideo(ctx, s.resolveVideo(args[0]))
		return true, true, nil

	case "/clear":
		s.Conversation = model.NewConversation()
		s.recent = nil
		fmt.Fprintln(s.Out, DimStyle.Render("Started a new conversation"))
		return true, true, nil
	}
	return true, false, nil
}

// resolveVideo maps "n" to the nth video of the last reply.
func (s *ChatSession) resolveVideo(arg string) string {
	if n, err := strconv.Atoi(arg); err == nil && n >= 1 && n <= len(s.recent) {
		return s.recent[n-1].VideoID
	}
	return arg
}

func (s *ChatSession) checkVideo(ctx context.Context, id string) {
	if s.Videos != nil && s.Videos.IsAvailable(ctx, id) {
		fmt.Fprintln(s.Out, renderField("Watch", s.Videos.WatchURL(id)))
		fmt.Fprintln(s.Out, renderField("Embed", s.Videos.EmbedURL(id)))
		return
	}
	slog.Info("video unavailable", "video_id", id)
	reply := model.NewAssistantMessage(chat.VideoUnavailableReply, nil)
	s.Conversation.Append(reply)
	s.printReply(reply)
}

func (s *ChatSession) printHelp() {
	fmt.Fprintln(s.Out, TitleStyle.Render("Commands"))
	for _, line := range [][2]string{
		{"/model [id]", "show or switch model"},
		{"/models", "list models"},
		{"/video <id|n>", "check a video"},
		{"/clear", "start a new conversation"},
		{"/quit", "exit"},
	} {
		fmt.Fprintln(s.Out, renderField(line[0], line[1]))
	}
}

// =============================================================================
// CHAT COMMAND
// =============================================================================

func newChatCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Chat in line mode with input history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			if err := RequiresTTY("chat"); err != nil {
				return err
			}
			if err := opts.setupLogging(cfg); err != nil {
				return err
			}
			return runChat(cmd.Context(), cfg, cmd.OutOrStdout())
		},
	}
}

func runChat(ctx context.Context, cfg *config.Config, out io.Writer) error {
	prefs := openPrefs(cfg)
	theme := styles.NewTheme(styles.InitialDark(prefs, styles.DetectDark))
	prefs.Close()

	client := newAPIClient(cfg)
	md := components.NewMarkdown(theme.GlamourStyle(), outputWidth()-4)
	session := NewChatSession(client, newVideoChecker(cfg), cfg.UI.DefaultModel, md, out)

	if err := client.CheckRunning(ctx); err != nil {
		fmt.Fprintln(out, WarningStyle.Render("Backend not reachable at "+client.BaseURL()+"; replies will fail until it is up."))
	}

	fmt.Fprintln(out, TitleStyle.Render(components.AppTitle))
	fmt.Fprintln(out, components.AppGreeting+" "+components.AppDescription)
	fmt.Fprintln(out, DimStyle.Render("Model: "+model.ModelLabel(session.Model)+"  /help for commands, Ctrl+D to exit"))
	fmt.Fprintln(out)

	dir, err := config.ConfigDir()
	if err != nil {
		dir = os.TempDir()
	}
	input := NewChatCLI(filepath.Join(dir, "chat_history"))
	defer input.Close()

	for {
		line, err := input.ReadInput(PromptStyle.Render("you> "))
		if err != nil {
			// Ctrl+C at the prompt, Ctrl+D, or a closed stdin
			fmt.Fprintln(out)
			return nil
		}

		// Ctrl+C while waiting cancels just this reply
		qctx, stop := signal.NotifyContext(ctx, os.Interrupt)
		cont, err := session.HandleInput(qctx, line)
		stop()
		if err != nil {
			fmt.Fprintf(out, "%s %v\n", ErrorStyle.Render("[Error]"), err)
		}
		if !cont {
			return nil
		}
	}
}
