// Package list implements the list command: the artist, album, exclude, and
// external platform views of the loaded catalog.
package list

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/melodex/melodex/internal/cmd/application"
)

// NewCommand creates the list command with app dependencies.
func NewCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list [resource]",
		GroupID: "reports",
		Short:   "List resources from the loaded catalog",
		Long: `List displays views of the loaded catalog.

Available subcommands:
  artists     - canonical artists with album counts
  albums      - cleaned albums sorted by artist and release date
  excluded    - artists suppressed from missing reports
  seated      - the external platform's followed-artist list`,
		Example: `  melodex list artists                 # All artists with album counts
  melodex list albums -o json          # Albums as JSON
  melodex list seated                  # Cached Seated artist list`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return fmt.Errorf("unknown resource: %s", args[0])
		},
	}

	cmd.AddCommand(NewArtistsCommand(app))
	cmd.AddCommand(NewAlbumsCommand(app))
	cmd.AddCommand(NewExcludedCommand(app))
	cmd.AddCommand(NewSeatedCommand(app))

	return cmd
}
