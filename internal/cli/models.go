// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jeranaias/animastery-tui/internal/model"
)

func newModelsCmd(opts *rootOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "models",
		Short: "List the models the assistant can use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			if asJSON {
				return NewJSONResponse("models", model.SupportedModels()).Print(cmd.OutOrStdout())
			}
			printModels(cmd.OutOrStdout(), cfg.UI.DefaultModel)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "output in JSON format")
	return cmd
}

// printModels lists the catalogue, marking selected.
func printModels(out io.Writer, selected string) {
	for _, info := range model.SupportedModels() {
		marker := "  "
		if info.ID == selected {
			marker = SuccessStyle.Render("* ")
		}
		fmt.Fprintf(out, "%s%s %s\n", marker, RenderLabel(info.Name), DimStyle.Render(info.ID))
	}
}
