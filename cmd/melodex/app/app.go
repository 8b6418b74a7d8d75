// Package app provides the application context and dependency management for
// the melodex CLI. It centralizes configuration, logging, and the per-run
// workspace behind one type handed to subcommands as a narrow interface.
package app

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/melodex/melodex/internal/sources/seated"
	"github.com/melodex/melodex/internal/workspace"
	"github.com/melodex/melodex/pkg/logging"
)

// App represents the melodex application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// Workspace snapshot (lazy-initialized, one per run)
	mu sync.RWMutex
	ws *workspace.Workspace

	// External platform client (lazy-initialized)
	seated *seated.Client
}

// Option customizes an App during construction.
type Option func(*App) error

// New creates a new App instance with the given version information.
func New(version, commit, date string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// WithConfig overrides the loaded configuration, mainly for tests.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		logger := NewLogger(config)
		a.logger = &logger
		return nil
	}
}

// Version returns the version string.
func (a *App) Version() string {
	return a.version
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// Workspace returns the run's loaded snapshot, building it on first use. The
// snapshot is immutable once built; repeated calls return the same instance.
func (a *App) Workspace(ctx context.Context) (*workspace.Workspace, error) {
	a.mu.RLock()
	ws := a.ws
	a.mu.RUnlock()
	if ws != nil {
		return ws, nil
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.ws != nil {
		return a.ws, nil
	}

	ctx = logging.WithLogger(ctx, a.logger)
	ws, err := workspace.Load(ctx, workspace.Config{
		ArtistsFile:  a.config.ArtistsFile,
		AlbumsFile:   a.config.AlbumsFile,
		MappingFile:  a.config.MappingFile,
		ExcludeFile:  a.config.ExcludeFile,
		ExternalFile: a.config.ExternalFile,
	})
	if err != nil {
		return nil, err
	}
	a.ws = ws
	return ws, nil
}

// SeatedClient returns the client for live external-platform fetches.
func (a *App) SeatedClient() *seated.Client {
	if a.seated == nil {
		var opts []seated.Option
		if a.config.SeatedBaseURL != "" {
			opts = append(opts, seated.WithBaseURL(a.config.SeatedBaseURL))
		}
		a.seated = seated.New(opts...)
	}
	return a.seated
}

// ExternalCachePath returns the configured external list cache file path.
func (a *App) ExternalCachePath() string {
	return a.config.ExternalFile
}
