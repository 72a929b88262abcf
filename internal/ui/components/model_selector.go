// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/jeranaias/animastery-tui/internal/model"
	"github.com/jeranaias/animastery-tui/internal/ui/styles"
)

// ModelSelector renders the catalogue with the selected entry highlighted.
// Narrow layouts show only the selected label.
type ModelSelector struct {
	Selected string
	theme    *styles.Theme
}

// NewModelSelector creates a selector showing selected.
func NewModelSelector(theme *styles.Theme, selected string) *ModelSelector {
	return &ModelSelector{Selected: selected, theme: theme}
}

// View renders the selector.
func (s *ModelSelector) View() string {
	label := s.theme.ModelLabel.Render("Model:")

	if s.theme.GetLayoutMode() != styles.LayoutWide {
		return label + " " + s.theme.ModelSelected.Render(model.ModelLabel(s.Selected))
	}

	parts := []string{label}
	for _, m := range model.SupportedModels() {
		if m.ID == s.Selected {
			parts = append(parts, s.theme.ModelSelected.Render(m.Name))
		} else {
			parts = append(parts, s.theme.ModelOption.Render(m.Name))
		}
	}
	return strings.Join(parts, " ")
}
