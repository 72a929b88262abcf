// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// root.go - Root command and global flags for the animastery CLI.
//
// Command: animastery
// Short:   Chat with the Animastery AI assistant
//
// Examples:
//   animastery                                Start the full-screen chat
//   animastery --backend http://host:8000     Use another backend
//   animastery --model xiaomi/mimo-v2-flash:free
//   animastery chat                           Line-mode chat
//   animastery ask "What is anticipation?"    One question, one answer
//
// Global Flags:
//   --backend URL       Backend base URL (overrides config and env)
//   -m, --model ID      Model to select at startup
//   --log-level LEVEL   debug, info, warn or error

package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jeranaias/animastery-tui/internal/config"
	"github.com/jeranaias/animastery-tui/internal/logging"
)

// Version information (set at build time)
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// rootOptions carries flag values shared by every command.
type rootOptions struct {
	backend  string
	model    string
	logLevel string

	noAltScreen bool
	noMouse     bool

	// closeLog flushes the log file; set once logging is up
	closeLog func() error
}

// apply copies flag overrides onto cfg. Flags beat env beats file.
func (o *rootOptions) apply(cfg *config.Config) {
	if o.backend != "" {
		cfg.Backend.URL = o.backend
	}
	if o.model != "" {
		cfg.UI.DefaultModel = o.model
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	cfg.SetDefaults()
}

// loadConfig loads the config file and environment, then applies flags.
func (o *rootOptions) loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, &ConfigError{Err: err}
	}
	o.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, &ConfigError{Err: err}
	}
	config.SetGlobal(cfg)
	return cfg, nil
}

// setupLogging sends slog output to the configured log file.
func (o *rootOptions) setupLogging(cfg *config.Config) error {
	path, err := cfg.LogPath()
	if err != nil {
		return err
	}
	closeLog, err := logging.Setup(path, cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	o.closeLog = closeLog
	return nil
}

func (o *rootOptions) close() {
	if o.closeLog != nil {
		_ = o.closeLog()
		o.closeLog = nil
	}
}

// newRootCmd builds the command tree.
func newRootCmd() (*cobra.Command, *rootOptions) {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "animastery",
		Short: "Chat with the Animastery AI assistant",
		Long: `Animastery is a terminal chat client for an AI assistant that answers
questions about animation styles, techniques and history, and recommends
videos to watch.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", Version, GitCommit, BuildDate),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			if err := RequiresTTY("run the chat"); err != nil {
				return fmt.Errorf("%w (try 'animastery chat' or 'animastery ask')", err)
			}
			if err := opts.setupLogging(cfg); err != nil {
				return err
			}
			return runTUI(cmd.Context(), cfg, opts)
		},
	}

	root.PersistentFlags().StringVar(&opts.backend, "backend", "", "backend base URL")
	root.PersistentFlags().StringVarP(&opts.model, "model", "m", "", "model to use")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	root.Flags().BoolVar(&opts.noAltScreen, "no-alt-screen", false, "render inline instead of the alternate screen")
	root.Flags().BoolVar(&opts.noMouse, "no-mouse", false, "disable mouse wheel scrolling")

	root.AddCommand(
		newChatCmd(opts),
		newAskCmd(opts),
		newStatusCmd(opts),
		newModelsCmd(opts),
		newVideoCmd(opts),
		newConfigCmd(opts),
	)
	return root, opts
}

// Execute runs the CLI.
func Execute(ctx context.Context, args []string) error {
	root, opts := newRootCmd()
	defer opts.close()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}
