package list

import (
	"github.com/spf13/cobra"

	"github.com/melodex/melodex/internal/cmd/application"
	"github.com/melodex/melodex/internal/cmd/globals"
	"github.com/melodex/melodex/internal/cmd/output"
	"github.com/melodex/melodex/internal/cmd/table"
	"github.com/melodex/melodex/pkg/reconcile"
)

// NewArtistsCommand creates the list artists subcommand.
func NewArtistsCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "artists",
		Short:   "List all artists with album counts",
		Aliases: []string{"artist"},
		Example: `  melodex list artists            # Alphabetical artist table
  melodex list artists -o yaml    # Same rows as YAML`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := app.Workspace(cmd.Context())
			if err != nil {
				return err
			}

			artists := reconcile.AllArtists(ws.Catalog)
			app.Logger().Debug().Int("artists", len(artists)).Msg("Listing artists")

			format, err := resolveFormat(cmd)
			if err != nil {
				return err
			}
			return output.Render(cmd.OutOrStdout(), format, artists, table.ArtistsToTableData(artists))
		},
	}
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
