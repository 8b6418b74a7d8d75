// Package missing implements the missing command: the two set-difference
// reports between the catalog and the external platform list.
package missing

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/melodex/melodex/internal/cmd/application"
	"github.com/melodex/melodex/internal/cmd/globals"
	"github.com/melodex/melodex/internal/cmd/output"
	"github.com/melodex/melodex/internal/cmd/table"
	"github.com/melodex/melodex/internal/workspace"
	"github.com/melodex/melodex/pkg/errors"
	"github.com/melodex/melodex/pkg/reconcile"
)

// NewCommand creates the missing command with app dependencies.
func NewCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "missing [direction]",
		GroupID: "reports",
		Short:   "Show artists missing on one side of the reconciliation",
		Long: `Missing compares the catalog with the external platform's artist list.

Available subcommands:
  seated      - catalog artists the platform does not follow (minus excludes)
  library     - platform artists absent from the catalog`,
		Example: `  melodex missing seated       # Who should I follow on Seated?
  melodex missing library      # Who do I follow but not own?`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return fmt.Errorf("unknown direction: %s", args[0])
		},
	}

	cmd.AddCommand(newSeatedCommand(app))
	cmd.AddCommand(newLibraryCommand(app))

	return cmd
}

// newSeatedCommand reports catalog artists missing from the platform.
func newSeatedCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:   "seated",
		Short: "List catalog artists the platform does not follow",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWithExternal(app, cmd)
			if err != nil {
				return err
			}

			artists := reconcile.MissingFromExternal(ws.Catalog, ws.External, ws.Excludes)
			app.Logger().Info().Int("missing", len(artists)).Msg("Catalog artists missing from Seated")

			names := make([]string, len(artists))
			for i, a := range artists {
				names[i] = a.Name
			}

			format, err := resolveFormat(cmd)
			if err != nil {
				return err
			}
			return output.Render(cmd.OutOrStdout(), format, artists, table.NamesToTableData("Missing Artist", names))
		},
	}
}

// newLibraryCommand reports platform artists missing from the catalog.
func newLibraryCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:   "library",
		Short: "List platform artists absent from the catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWithExternal(app, cmd)
			if err != nil {
				return err
			}

			names := reconcile.MissingFromCatalog(ws.Catalog, ws.External)
			app.Logger().Info().Int("missing", len(names)).Msg("Seated artists missing from catalog")

			format, err := resolveFormat(cmd)
			if err != nil {
				return err
			}
			return output.Render(cmd.OutOrStdout(), format, names, table.NamesToTableData("Missing Library Artist", names))
		},
	}
}

// loadWithExternal loads the workspace and requires an external list.
func loadWithExternal(app application.Application, cmd *cobra.Command) (*workspace.Workspace, error) {
	ws, err := app.Workspace(cmd.Context())
	if err != nil {
		return nil, err
	}
	if !ws.HasExternal() {
		return nil, errors.NewValidationError("seated", "",
			"no Seated artist list configured; set --seated or run melodex fetch")
	}
	return ws, nil
}

// resolveFormat validates the global output flag and applies terminal detection.
func resolveFormat(cmd *cobra.Command) (output.Format, error) {
	flags, err := globals.Parse(cmd)
	if err != nil {
		return "", err
	}
	if _, err := output.ParseFormat(flags.Output); err != nil {
		return "", err
	}
	return output.DetectFormat(flags.Output), nil
}
