// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"errors"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/animastery-tui/internal/config"
	"github.com/jeranaias/animastery-tui/internal/ui/chat"
	"github.com/jeranaias/animastery-tui/internal/ui/styles"
)

// runTUI runs the full-screen chat until the user quits.
func runTUI(ctx context.Context, cfg *config.Config, opts *rootOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	prefs := openPrefs(cfg)
	defer prefs.Close()

	m := chat.New(chat.Options{
		Context: ctx,
		Querier: newAPIClient(cfg),
		Videos:  newVideoChecker(cfg),
		Prefs:   prefs,
		IsDark:  styles.InitialDark(prefs, styles.DetectDark),
		Model:   cfg.UI.DefaultModel,
		Reconfigure: func(next *config.Config) (chat.Querier, chat.VideoSource) {
			return newAPIClient(next), newVideoChecker(next)
		},
	})

	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if cfg.UI.AltScreen && !opts.noAltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	if cfg.UI.Mouse && !opts.noMouse {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(m, programOpts...)

	if w := watchConfig(opts, p); w != nil {
		defer w.Close()
	}

	slog.Info("starting chat", "backend", cfg.Backend.URL, "model", cfg.UI.DefaultModel)
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}

// watchConfig forwards config file edits to the running program. Flag
// overrides are reapplied so they survive a reload.
func watchConfig(opts *rootOptions, p *tea.Program) *config.Watcher {
	path, err := config.ConfigPath()
	if err != nil {
		return nil
	}
	if err := config.EnsureConfigDir(); err != nil {
		slog.Warn("config reload disabled", "error", err)
		return nil
	}

	w, err := config.NewWatcher(path, config.DefaultReloadDebounce, func(cfg *config.Config, err error) {
		if err == nil {
			opts.apply(cfg)
			err = cfg.Validate()
		}
		if err != nil {
			p.Send(chat.ConfigReloadedMsg{Err: err})
			return
		}
		config.SetGlobal(cfg)
		p.Send(chat.ConfigReloadedMsg{Config: cfg})
	})
	if err != nil {
		slog.Warn("config reload disabled", "error", err)
		return nil
	}
	if err := w.Watch(); err != nil {
		slog.Warn("config reload disabled", "error", err)
		w.Close()
		return nil
	}
	return w
}
