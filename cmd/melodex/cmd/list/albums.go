package list

import (
	"github.com/spf13/cobra"

	"github.com/melodex/melodex/internal/cmd/application"
	"github.com/melodex/melodex/internal/cmd/output"
	"github.com/melodex/melodex/internal/cmd/table"
	"github.com/melodex/melodex/pkg/reconcile"
)

// NewAlbumsCommand creates the list albums subcommand.
func NewAlbumsCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "albums",
		Short:   "List cleaned albums sorted by artist and release date",
		Aliases: []string{"album"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := app.Workspace(cmd.Context())
			if err != nil {
				return err
			}

			albums := reconcile.Albums(ws.Catalog)
			app.Logger().Debug().Int("albums", len(albums)).Msg("Listing albums")

			format, err := resolveFormat(cmd)
			if err != nil {
				return err
			}
			return output.Render(cmd.OutOrStdout(), format, albums, table.AlbumsToTableData(albums))
		},
	}
}
