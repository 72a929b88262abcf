// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// video.go - Video commands.
//
// Examples:
//   animastery video check dQw4w9WgXcQ    Exit 0 if the video can be embedded
//   animastery video url dQw4w9WgXcQ      Print the watch and embed URLs

package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jeranaias/animastery-tui/internal/video"
)

// VideoStatus is the --json payload of video check.
type VideoStatus struct {
	VideoID   string `json:"video_id"`
	Available bool   `json:"available"`
	WatchURL  string `json:"watch_url"`
	EmbedURL  string `json:"embed_url"`
}

// ErrVideoUnavailable is returned by video check for a missing or
// non-embeddable video.
var ErrVideoUnavailable = errors.New("video unavailable")

func newVideoCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "video",
		Short: "Check videos and print their links",
	}

	var asJSON bool
	check := &cobra.Command{
		Use:   "check <id>",
		Short: "Check whether a video exists and can be embedded",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			checker := newVideoChecker(cfg)
			status := videoStatus(checker, args[0])
			status.Available = checker.IsAvailable(cmd.Context(), args[0])

			out := cmd.OutOrStdout()
			if asJSON {
				if !status.Available {
					if err := NewJSONErrorResponse("video check", status, ErrVideoUnavailable).Print(out); err != nil {
						return err
					}
					return ErrVideoUnavailable
				}
				return NewJSONResponse("video check", status).Print(out)
			}

			if !status.Available {
				fmt.Fprintln(out, RenderStatus("unavailable")+" "+status.VideoID)
				return ErrVideoUnavailable
			}
			fmt.Fprintln(out, RenderStatus("available")+" "+status.VideoID)
			fmt.Fprintln(out, renderField("Watch", status.WatchURL))
			fmt.Fprintln(out, renderField("Embed", status.EmbedURL))
			return nil
		},
	}
	check.Flags().BoolVar(&asJSON, "json", false, "output in JSON format")

	url := &cobra.Command{
		Use:   "url <id>",
		Short: "Print the watch and embed URLs of a video",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			status := videoStatus(newVideoChecker(cfg), args[0])
			fmt.Fprintln(cmd.OutOrStdout(), status.WatchURL)
			fmt.Fprintln(cmd.OutOrStdout(), status.EmbedURL)
			return nil
		},
	}

	cmd.AddCommand(check, url)
	return cmd
}

func videoStatus(c *video.Checker, id string) VideoStatus {
	return VideoStatus{VideoID: id, WatchURL: c.WatchURL(id), EmbedURL: c.EmbedURL(id)}
}
