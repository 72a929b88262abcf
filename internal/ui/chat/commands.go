// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/animastery-tui/internal/model"
	"github.com/jeranaias/animastery-tui/internal/util"
)

// =============================================================================
// SLASH COMMANDS
// =============================================================================

// Command describes a slash command accepted in the input.
type Command struct {
	Name  string
	Args  string
	Usage string
}

// Commands lists the slash commands in help order. Input that starts with
// any other word is sent to the assistant unchanged.
var Commands = []Command{
	{Name: "/model", Args: "[id]", Usage: "show or select the model"},
	{Name: "/models", Usage: "list available models"},
	{Name: "/theme", Usage: "toggle light/dark theme"},
	{Name: "/video", Args: "<id>", Usage: "watch a video by id"},
	{Name: "/close", Usage: "close the video panel"},
	{Name: "/clear", Usage: "start a new conversation"},
	{Name: "/help", Usage: "show commands and keys"},
}

func isCommand(name string) bool {
	for _, c := range Commands {
		if c.Name == name {
			return true
		}
	}
	return false
}

// runCommand executes text if it is a known slash command. Enter routes
// through here before Submit.
func (m Model) runCommand(text string) (bool, Model, tea.Cmd) {
	fields := util.CommandFields(text)
	if len(fields) == 0 || !isCommand(fields[0]) {
		return false, m, nil
	}
	args := fields[1:]

	switch fields[0] {
	case "/model":
		if len(args) == 0 {
			m.info = fmt.Sprintf("Current model: %s (%s)", model.ModelLabel(m.selectedModel), m.selectedModel)
			return true, m, nil
		}
		next, err := m.SelectModel(args[0])
		if err != nil {
			m.statusBar.Notice = err.Error()
			return true, m, nil
		}
		next.statusBar.Notice = "Model: " + model.ModelLabel(next.selectedModel)
		return true, next, nil

	case "/models":
		m.info = m.modelList()
		return true, m, nil

	case "/theme":
		next, cmd := m.ToggleTheme()
		return true, next, cmd

	case "/video":
		if len(args) == 0 {
			m.statusBar.Notice = "Usage: /video <id>"
			return true, m, nil
		}
		next, cmd := m.OpenVideo(args[0])
		return true, next, cmd

	case "/close":
		next, cmd := m.CloseVideo()
		return true, next, cmd

	case "/clear":
		m.conversation = model.NewConversation()
		m.selectedVideo = -1
		m.info = ""
		m.statusBar.Notice = "Started a new conversation"
		return true, m, nil

	case "/help":
		m.info = m.helpText()
		return true, m, nil
	}
	return false, m, nil
}

func (m Model) modelList() string {
	var b strings.Builder
	b.WriteString("Models:")
	for _, info := range model.SupportedModels() {
		marker := "  "
		if info.ID == m.selectedModel {
			marker = "* "
		}
		fmt.Fprintf(&b, "\n%s%-18s %s", marker, info.Name, info.ID)
	}
	return b.String()
}

func (m Model) helpText() string {
	var b strings.Builder
	b.WriteString("Commands:")
	for _, c := range Commands {
		name := c.Name
		if c.Args != "" {
			name += " " + c.Args
		}
		fmt.Fprintf(&b, "\n  %-14s %s", name, c.Usage)
	}
	b.WriteString("\nKeys:")
	for _, group := range m.keyMap.FullHelp() {
		for _, binding := range group {
			h := binding.Help()
			fmt.Fprintf(&b, "\n  %-20s %s", h.Key, h.Desc)
		}
	}
	b.WriteString("\nEsc closes this help.")
	return b.String()
}
