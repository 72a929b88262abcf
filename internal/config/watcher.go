// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// =============================================================================
// CONFIG FILE WATCHER
// =============================================================================

// DefaultReloadDebounce is how long the file must stay quiet before reloading.
const DefaultReloadDebounce = 250 * time.Millisecond

// Watcher reloads a config file when it changes and hands the result to a
// callback. Editors often write a file in several steps, so changes are
// debounced.
type Watcher struct {
	path     string
	debounce time.Duration
	onChange func(*Config, error)

	watcher *fsnotify.Watcher
	ctx     context.Context
	cancel  context.CancelFunc

	mu      sync.Mutex
	pending time.Time
	wg      sync.WaitGroup
}

// NewWatcher creates a watcher for the config file at path. The parent
// directory is watched so that atomic rename-over writes are seen.
func NewWatcher(path string, debounce time.Duration, onChange func(*Config, error)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if debounce <= 0 {
		debounce = DefaultReloadDebounce
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Watcher{
		path:     filepath.Clean(path),
		debounce: debounce,
		onChange: onChange,
		watcher:  fsw,
		ctx:      ctx,
		cancel:   cancel,
	}, nil
}

// Watch starts watching. It returns once the directory watch is registered.
func (w *Watcher) Watch() error {
	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		return err
	}

	w.wg.Add(2)
	go w.processEvents()
	go w.processPending()
	return nil
}

// Close stops watching and waits for the goroutines to exit.
func (w *Watcher) Close() error {
	w.cancel()
	err := w.watcher.Close()
	w.wg.Wait()
	return err
}

func (w *Watcher) processEvents() {
	defer w.wg.Done()

	for {
		select {
		case <-w.ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				w.mu.Lock()
				w.pending = time.Now()
				w.mu.Unlock()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Warn("config watcher error", "error", err)
		}
	}
}

func (w *Watcher) processPending() {
	defer w.wg.Done()

	ticker := time.NewTicker(w.debounce / 2)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return

		case now := <-ticker.C:
			w.mu.Lock()
			due := !w.pending.IsZero() && now.Sub(w.pending) >= w.debounce
			if due {
				w.pending = time.Time{}
			}
			w.mu.Unlock()

			if due {
				w.reload()
			}
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := LoadFromPath(w.path)
	if err != nil {
		slog.Warn("config reload failed", "path", w.path, "error", err)
	} else {
		slog.Info("config reloaded", "path", w.path)
	}
	if w.onChange != nil {
		w.onChange(cfg, err)
	}
}
