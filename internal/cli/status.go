// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// status.go - Status command.
//
// Command: status
// Short:   Check the backend and show effective settings
//
// Exits non-zero when the backend cannot be reached.
//
// Flags:
//   --json              Output in JSON format

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/jeranaias/animastery-tui/internal/config"
	"github.com/jeranaias/animastery-tui/internal/model"
	"github.com/jeranaias/animastery-tui/internal/ui/styles"
)

// StatusInfo is what status reports.
type StatusInfo struct {
	Backend   string `json:"backend"`
	Reachable bool   `json:"reachable"`
	LatencyMs int64  `json:"latency_ms"`
	Error     string `json:"error,omitempty"`

	Model      string `json:"model"`
	VideoHost  string `json:"video_host"`
	Theme      string `json:"theme"`
	ConfigPath string `json:"config_path"`
}

// ErrBackendUnreachable is returned by status when the probe fails.
var ErrBackendUnreachable = errors.New("backend unreachable")

func newStatusCmd(opts *rootOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "status",
		Aliases: []string{"s"},
		Short:   "Check the backend and show effective settings",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			info := gatherStatus(cmd.Context(), cfg)

			out := cmd.OutOrStdout()
			if asJSON {
				if !info.Reachable {
					if err := NewJSONErrorResponse("status", info, ErrBackendUnreachable).Print(out); err != nil {
						return err
					}
					return ErrBackendUnreachable
				}
				return NewJSONResponse("status", info).Print(out)
			}

			printStatus(out, info)
			if !info.Reachable {
				return ErrBackendUnreachable
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "output in JSON format")
	return cmd
}

func gatherStatus(ctx context.Context, cfg *config.Config) StatusInfo {
	if ctx == nil {
		ctx = context.Background()
	}
	client := newAPIClient(cfg)
	info := StatusInfo{
		Backend:   client.BaseURL(),
		Model:     cfg.UI.DefaultModel,
		VideoHost: cfg.Video.Host,
	}
	if path, err := config.ConfigPath(); err == nil {
		info.ConfigPath = path
	}

	prefs := openPrefs(cfg)
	if v, ok, err := prefs.Get(styles.ThemeKey); err == nil && ok {
		info.Theme = v
	} else {
		info.Theme = "auto"
	}
	prefs.Close()

	start := time.Now()
	err := client.CheckRunning(ctx)
	info.LatencyMs = time.Since(start).Milliseconds()
	if err != nil {
		info.Error = err.Error()
	} else {
		info.Reachable = true
	}
	return info
}

func printStatus(out io.Writer, info StatusInfo) {
	fmt.Fprintln(out, TitleStyle.Render("Animastery Status"))

	backend := info.Backend + " " + RenderStatus("reachable")
	if !info.Reachable {
		backend = info.Backend + " " + RenderStatus("unreachable")
	} else {
		backend += DimStyle.Render(fmt.Sprintf(" (%dms)", info.LatencyMs))
	}
	fmt.Fprintln(out, renderField("Backend", backend))
	if info.Error != "" {
		fmt.Fprintln(out, renderField("", ErrorStyle.Render(info.Error)))
	}
	fmt.Fprintln(out, renderField("Model", fmt.Sprintf("%s (%s)", model.ModelLabel(info.Model), info.Model)))
	fmt.Fprintln(out, renderField("Video host", info.VideoHost))
	fmt.Fprintln(out, renderField("Theme", info.Theme))
	fmt.Fprintln(out, renderField("Config", info.ConfigPath))
}
