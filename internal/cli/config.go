// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// config.go - Config command.
//
// Command: config [subcommand]
// Short:   View and modify configuration
//
// Subcommands:
//   show (default)      Display the effective configuration
//   get <key>           Print one value
//   set <key> <value>   Set a value in the config file
//   keys                List settable keys
//   reset               Write the defaults
//   path                Show the config file path
//
// Examples:
//   animastery config set backend.url http://10.0.0.5:8000
//   animastery config set ui.default_model xiaomi/mimo-v2-flash:free
//   animastery config set video.checks_per_second 1
//   animastery config show --json
//
// A running chat picks up saved changes without restarting.

package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jeranaias/animastery-tui/internal/config"
)

func newConfigCmd(opts *rootOptions) *cobra.Command {
	var asJSON bool

	show := &cobra.Command{
		Use:   "show",
		Short: "Display the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			if asJSON {
				return NewJSONResponse("config show", cfg).Print(cmd.OutOrStdout())
			}
			fmt.Fprint(cmd.OutOrStdout(), cfg.String())
			return nil
		},
	}
	show.Flags().BoolVar(&asJSON, "json", false, "output in JSON format")

	cmd := &cobra.Command{
		Use:   "config",
		Short: "View and modify configuration",
		Args:  cobra.NoArgs,
		RunE:  show.RunE,
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "output in JSON format")

	get := &cobra.Command{
		Use:   "get <key>",
		Short: "Print one configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			value, err := cfg.Get(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%v\n", value)
			return nil
		},
	}

	set := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a value in the config file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.ConfigPath()
			if err != nil {
				return err
			}
			cfg, err := loadFileOnly(path)
			if err != nil {
				return err
			}
			if err := cfg.Set(args[0], args[1]); err != nil {
				return err
			}
			cfg.SetDefaults()
			if err := cfg.Validate(); err != nil {
				return err
			}
			if err := config.SaveTOML(cfg, path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", args[0], args[1])
			return nil
		},
	}

	keys := &cobra.Command{
		Use:   "keys",
		Short: "List configuration keys",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, key := range config.GetAllKeys() {
				fmt.Fprintln(cmd.OutOrStdout(), key)
			}
		},
	}

	reset := &cobra.Command{
		Use:   "reset",
		Short: "Write the default configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.ConfigPath()
			if err != nil {
				return err
			}
			if err := config.SaveTOML(config.Default(), path); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Configuration reset to defaults")
			return nil
		},
	}

	path := &cobra.Command{
		Use:   "path",
		Short: "Show the config file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := config.ConfigPath()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), p)
			return nil
		},
	}

	cmd.AddCommand(show, get, set, keys, reset, path)
	return cmd
}

// loadFileOnly reads the config file without environment overrides, so
// that set never writes env values into the file.
func loadFileOnly(path string) (*config.Config, error) {
	cfg := config.Default()
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}
	if err := config.LoadTOML(cfg, path); err != nil {
		return nil, err
	}
	return cfg, nil
}
