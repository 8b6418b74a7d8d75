package list

import (
	"github.com/spf13/cobra"

	"github.com/melodex/melodex/internal/cmd/application"
	"github.com/melodex/melodex/internal/cmd/output"
	"github.com/melodex/melodex/internal/cmd/table"
	"github.com/melodex/melodex/pkg/errors"
)

// NewExcludedCommand creates the list excluded subcommand.
func NewExcludedCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:   "excluded",
		Short: "List artists suppressed from missing reports",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := app.Workspace(cmd.Context())
			if err != nil {
				return err
			}

			names := ws.Excludes.Names()
			format, err := resolveFormat(cmd)
			if err != nil {
				return err
			}
			return output.Render(cmd.OutOrStdout(), format, names, table.NamesToTableData("Excluded Artist", names))
		},
	}
}

// NewSeatedCommand creates the list seated subcommand.
func NewSeatedCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:   "seated",
		Short: "List the external platform's followed artists",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := app.Workspace(cmd.Context())
			if err != nil {
				return err
			}
			if !ws.HasExternal() {
				return errors.NewValidationError("seated", "",
					"no Seated artist list configured; set --seated or run melodex fetch")
			}

			names := ws.External.Names()
			format, err := resolveFormat(cmd)
			if err != nil {
				return err
			}
			return output.Render(cmd.OutOrStdout(), format, names, table.NamesToTableData("Seated Artist", names))
		},
	}
}
