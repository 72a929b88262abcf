// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage provides local preference persistence for animastery.
//
// Preferences are small string key/value pairs that outlive a single run,
// such as the "theme" key holding "dark" or "light". Conversations are
// never persisted.
//
// # Key Types
//
//   - Prefs: Interface implemented by every preference store
//   - SQLiteStore: SQLite-backed store in ~/.animastery/prefs.db
//   - MemoryStore: In-process store used when the database cannot be opened
//
// # Usage
//
//	store, err := storage.OpenSQLite(path)
//	if err != nil {
//	    store = storage.NewMemoryStore()
//	}
//	defer store.Close()
//
//	_ = store.Set("theme", "dark")
//	value, ok, err := store.Get("theme")
package storage
