// Package fetch implements the fetch command: retrieving the followed-artist
// list from the Seated platform and refreshing the local cache file.
package fetch

import (
	"github.com/spf13/cobra"

	"github.com/melodex/melodex/internal/cmd/application"
	"github.com/melodex/melodex/internal/sources"
	"github.com/melodex/melodex/pkg/errors"
)

// NewCommand creates the fetch command with app dependencies. defaultSession
// comes from configuration and can be overridden by flag.
func NewCommand(app application.Application, defaultSession string) *cobra.Command {
	var (
		session   string
		cacheFile string
	)

	cmd := &cobra.Command{
		Use:     "fetch",
		GroupID: "data",
		Short:   "Fetch the followed-artist list from Seated",
		Long: `Fetch retrieves the followed-artist list from the Seated platform with
an authenticated session token and writes it to the local cache file the
reconciliation reports read.

The session token identifies an already-completed login; melodex does not
perform the login itself.`,
		Example: `  melodex fetch --session "$MELODEX_SEATED_SESSION"
  melodex fetch --session TOKEN --cache seated_artists.txt`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if session == "" {
				return errors.ErrSessionRequired
			}
			target := cacheFile
			if target == "" {
				target = app.ExternalCachePath()
			}
			if target == "" {
				return errors.NewValidationError("cache", "",
					"no cache file configured; set --cache or external_file in config")
			}

			names, err := app.SeatedClient().FollowedArtists(cmd.Context(), session)
			if err != nil {
				return err
			}
			if err := sources.WriteNames(target, names); err != nil {
				return err
			}

			app.Logger().Info().Int("artists", len(names)).Str("file", target).Msg("Fetched Seated artist list")
			return nil
		},
	}

	cmd.Flags().StringVar(&session, "session", defaultSession, "authenticated Seated session token")
	cmd.Flags().StringVar(&cacheFile, "cache", "", "cache file to write (defaults to the configured list file)")

	return cmd
}
