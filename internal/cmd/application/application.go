// Package application defines the interface subcommands need from the app.
// Commands depend on this narrow surface instead of the concrete app type,
// which keeps them testable with fakes.
package application

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/melodex/melodex/internal/sources/seated"
	"github.com/melodex/melodex/internal/workspace"
)

// Application is the dependency surface handed to subcommand constructors.
type Application interface {
	// Workspace returns the loaded run snapshot, building it on first use.
	Workspace(ctx context.Context) (*workspace.Workspace, error)

	// Logger returns the application logger.
	Logger() *zerolog.Logger

	// SeatedClient returns the client for live external-platform fetches.
	SeatedClient() *seated.Client

	// ExternalCachePath returns the configured path of the external list
	// cache file, where fetch results are written.
	ExternalCachePath() string
}
