// Package top implements the top command: artists with at least a threshold
// number of albums.
package top

import (
	"github.com/spf13/cobra"

	"github.com/melodex/melodex/internal/cmd/application"
	"github.com/melodex/melodex/internal/cmd/globals"
	"github.com/melodex/melodex/internal/cmd/output"
	"github.com/melodex/melodex/internal/cmd/table"
	"github.com/melodex/melodex/pkg/reconcile"
)

// NewCommand creates the top command with app dependencies.
func NewCommand(app application.Application) *cobra.Command {
	var minAlbums int

	cmd := &cobra.Command{
		Use:     "top",
		GroupID: "reports",
		Short:   "List artists with the most albums",
		Example: `  melodex top             # Artists with 3 or more albums
  melodex top --min 5     # Raise the threshold`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := app.Workspace(cmd.Context())
			if err != nil {
				return err
			}

			artists, err := reconcile.TopArtists(ws.Catalog, minAlbums)
			if err != nil {
				return err
			}
			app.Logger().Debug().Int("artists", len(artists)).Int("min_albums", minAlbums).Msg("Top artists")

			flags, err := globals.Parse(cmd)
			if err != nil {
				return err
			}
			if _, err := output.ParseFormat(flags.Output); err != nil {
				return err
			}
			format := output.DetectFormat(flags.Output)
			return output.Render(cmd.OutOrStdout(), format, artists, table.ArtistsToTableData(artists))
		},
	}

	cmd.Flags().IntVar(&minAlbums, "min", reconcile.DefaultMinAlbums, "minimum album count")

	return cmd
}
