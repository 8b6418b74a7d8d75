// Package review implements the review command: the cleanup audit of album
// titles changed during normalization.
package review

import (
	"github.com/spf13/cobra"

	"github.com/melodex/melodex/internal/cmd/application"
	"github.com/melodex/melodex/internal/cmd/globals"
	"github.com/melodex/melodex/internal/cmd/output"
	"github.com/melodex/melodex/internal/cmd/table"
)

// NewCommand creates the review command with app dependencies.
func NewCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "review",
		GroupID: "reports",
		Short:   "Show album titles changed by cleanup",
		Long: `Review lists every album whose title was altered by the cleanup rules,
original next to cleaned, so overzealous rules can be caught and corrected
in the mapping file.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := app.Workspace(cmd.Context())
			if err != nil {
				return err
			}

			pairs := ws.Catalog.CleanupReview()
			app.Logger().Debug().Int("changed", len(pairs)).Msg("Cleanup review")

			flags, err := globals.Parse(cmd)
			if err != nil {
				return err
			}
			if _, err := output.ParseFormat(flags.Output); err != nil {
				return err
			}
			format := output.DetectFormat(flags.Output)
			return output.Render(cmd.OutOrStdout(), format, pairs, table.ReviewToTableData(pairs))
		},
	}
}
