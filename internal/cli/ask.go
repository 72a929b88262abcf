// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// ask.go - One-shot question command.
//
// Command: ask
// Short:   Ask a single question
//
// Examples:
//   animastery ask "What is rotoscoping?"
//   animastery ask -m mistralai/mistral-7b-instruct:free "Who made Akira?"
//   animastery ask --json "Recommend a stop-motion film" | jq .data.videos
//
// Flags:
//   --json              Output in JSON format
//   --raw               Print the reply without Markdown rendering

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jeranaias/animastery-tui/internal/api"
	"github.com/jeranaias/animastery-tui/internal/config"
	"github.com/jeranaias/animastery-tui/internal/model"
	"github.com/jeranaias/animastery-tui/internal/ui/components"
	"github.com/jeranaias/animastery-tui/internal/ui/styles"
	"github.com/jeranaias/animastery-tui/internal/util"
)

// askResult is the --json payload of ask.
type askResult struct {
	Model  string           `json:"model"`
	Text   string           `json:"text"`
	Videos []askResultVideo `json:"videos"`
}

type askResultVideo struct {
	model.VideoInfo
	WatchURL string `json:"watch_url"`
}

func newAskCmd(opts *rootOptions) *cobra.Command {
	var asJSON, raw bool

	cmd := &cobra.Command{
		Use:   "ask <question>",
		Short: "Ask a single question",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			if err := opts.setupLogging(cfg); err != nil {
				return err
			}

			question := strings.Join(args, " ")
			if util.IsBlank(question) {
				return fmt.Errorf("question is empty")
			}

			resp, err := newAPIClient(cfg).Query(cmd.Context(), question, cfg.UI.DefaultModel)
			out := cmd.OutOrStdout()
			if asJSON {
				return printAskJSON(out, cfg, resp, err)
			}
			if err != nil {
				return err
			}
			printAnswer(out, cfg, resp, raw)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "output in JSON format")
	cmd.Flags().BoolVar(&raw, "raw", false, "print the reply without Markdown rendering")
	return cmd
}

func printAnswer(out io.Writer, cfg *config.Config, resp *api.Response, raw bool) {
	text := resp.Text
	if !raw {
		// Follow the terminal rather than the stored TUI preference
		theme := styles.NewTheme(styles.DetectDark())
		text = components.NewMarkdown(theme.GlamourStyle(), outputWidth()-4).Render(text)
	}
	fmt.Fprintln(out, text)

	if !resp.HasVideos() {
		return
	}
	videos := newVideoChecker(cfg)
	fmt.Fprintln(out)
	for i, v := range resp.Videos {
		fmt.Fprintf(out, "%d. %s\n   %s\n", i+1, v.Label(), DimStyle.Render(videos.WatchURL(v.VideoID)))
	}
}

func printAskJSON(out io.Writer, cfg *config.Config, resp *api.Response, err error) error {
	if err != nil {
		if perr := NewJSONErrorResponse("ask", nil, err).Print(out); perr != nil {
			return perr
		}
		return err
	}

	videos := newVideoChecker(cfg)
	result := askResult{Model: cfg.UI.DefaultModel, Text: resp.Text, Videos: []askResultVideo{}}
	for _, v := range resp.Videos {
		result.Videos = append(result.Videos, askResultVideo{VideoInfo: v, WatchURL: videos.WatchURL(v.VideoID)})
	}
	return NewJSONResponse("ask", result).Print(out)
}
