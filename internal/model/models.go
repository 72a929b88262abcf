// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for conversations and messages.
package model

import (
	"fmt"
	"strings"
)

// =============================================================================
// MODEL INFO TYPE
// =============================================================================

// ModelInfo is an entry of the model catalogue offered in the selector.
type ModelInfo struct {
	// ID is forwarded verbatim to the backend query
	ID string `json:"id"`

	// Name is the human-readable label
	Name string `json:"name"`
}

// =============================================================================
// MODEL CATALOGUE
// =============================================================================

// DefaultModelID is selected when nothing else is configured.
const DefaultModelID = "gpt-3.5-turbo"

// catalogue is ordered; the selector cycles through it in this order.
var catalogue = []ModelInfo{
	{ID: "gpt-3.5-turbo", Name: "GPT-3.5 Turbo"},
	{ID: "google/gemini-2.0-flash-exp:free", Name: "Gemini 2.0 Flash"},
	{ID: "xiaomi/mimo-v2-flash:free", Name: "Xiaomi MiMo"},
	{ID: "mistralai/mistral-7b-instruct:free", Name: "Mistral 7B"},
}

// ErrUnknownModel is returned when a model id is not in the catalogue.
type ErrUnknownModel struct {
	ID string
}

func (e *ErrUnknownModel) Error() string {
	return fmt.Sprintf("unknown model %q (supported: %s)", e.ID, strings.Join(ModelIDs(), ", "))
}

// SupportedModels returns a copy of the catalogue in display order.
func SupportedModels() []ModelInfo {
	out := make([]ModelInfo, len(catalogue))
	copy(out, catalogue)
	return out
}

// ModelIDs returns the ids of the catalogue in display order.
func ModelIDs() []string {
	ids := make([]string, len(catalogue))
	for i, m := range catalogue {
		ids[i] = m.ID
	}
	return ids
}

// LookupModel returns the catalogue entry for id.
func LookupModel(id string) (ModelInfo, bool) {
	for _, m := range catalogue {
		if m.ID == id {
			return m, true
		}
	}
	return ModelInfo{}, false
}

// IsSupportedModel reports whether id is in the catalogue.
func IsSupportedModel(id string) bool {
	_, ok := LookupModel(id)
	return ok
}

// ValidateModel returns an *ErrUnknownModel if id is not in the catalogue.
func ValidateModel(id string) error {
	if !IsSupportedModel(id) {
		return &ErrUnknownModel{ID: id}
	}
	return nil
}

// NextModel returns the catalogue entry after id, wrapping around.
// Unknown ids yield the first entry.
func NextModel(id string) ModelInfo {
	for i, m := range catalogue {
		if m.ID == id {
			return catalogue[(i+1)%len(catalogue)]
		}
	}
	return catalogue[0]
}

// ModelLabel returns the display label for id, or id itself if unknown.
func ModelLabel(id string) string {
	if m, ok := LookupModel(id); ok {
		return m.Name
	}
	return id
}
