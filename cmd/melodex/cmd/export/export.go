// Package export implements the export command: writing report output to
// plain text files consumed elsewhere.
package export

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/melodex/melodex/internal/cmd/application"
	"github.com/melodex/melodex/internal/sources"
	"github.com/melodex/melodex/pkg/errors"
	"github.com/melodex/melodex/pkg/reconcile"
)

// NewCommand creates the export command with app dependencies.
func NewCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "export",
		GroupID: "data",
		Short:   "Export report output to a file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return fmt.Errorf("unknown report: %s", args[0])
		},
	}

	cmd.AddCommand(newMissingCommand(app))

	return cmd
}

// newMissingCommand writes the missing-from-Seated report, one canonical
// artist name per line.
func newMissingCommand(app application.Application) *cobra.Command {
	var outFile string

	cmd := &cobra.Command{
		Use:     "missing",
		Short:   "Export catalog artists missing from Seated",
		Example: `  melodex export missing --file missing_artists.txt`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := app.Workspace(cmd.Context())
			if err != nil {
				return err
			}
			if !ws.HasExternal() {
				return errors.NewValidationError("seated", "",
					"no Seated artist list configured; set --seated or run melodex fetch")
			}

			artists := reconcile.MissingFromExternal(ws.Catalog, ws.External, ws.Excludes)
			if len(artists) == 0 {
				app.Logger().Info().Msg("No missing artists to export")
				return nil
			}

			names := make([]string, len(artists))
			for i, a := range artists {
				names[i] = a.Name
			}
			if err := sources.WriteNames(outFile, names); err != nil {
				return err
			}

			app.Logger().Info().Int("artists", len(names)).Str("file", outFile).Msg("Exported missing artists")
			return nil
		},
	}

	cmd.Flags().StringVar(&outFile, "file", "missing_artists.txt", "destination file")

	return cmd
}
