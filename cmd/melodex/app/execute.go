package app

import (
	"context"
	"os"

	"github.com/spf13/cobra"
)

// Execute runs the melodex CLI application with the given arguments.
// This is the main entry point called from main.go.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "melodex",
		Short:   "Music library reconciliation CLI",
		Version: a.version,
		Long: `Melodex reconciles a personal music library export against the artist
list of an external concert-notification platform.

Artist and album names are cleaned through deterministic rules and a curated
override mapping, so featuring credits, remaster suffixes, and alternate
spellings collapse to one canonical artist before the two lists are compared.`,
		PersistentPreRunE: a.setupCommand,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	rootCmd.AddGroup(&cobra.Group{
		ID:    "reports",
		Title: "Report Commands:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "data",
		Title: "Data Commands:",
	})

	// Global flags
	rootCmd.PersistentFlags().StringVar(&a.config.ConfigFile, "config", "", "config file (default is $HOME/.melodex.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&a.config.Verbose, "verbose", "v", a.config.Verbose, "verbose output (shortcut for LOG_LEVEL=debug)")
	rootCmd.PersistentFlags().BoolVarP(&a.config.Quiet, "quiet", "q", a.config.Quiet, "minimal output (shortcut for LOG_LEVEL=warn)")
	rootCmd.PersistentFlags().BoolVar(&a.config.NoColor, "no-color", a.config.NoColor, "disable colored output")
	rootCmd.PersistentFlags().StringVarP(&a.config.Output, "output", "o", a.config.Output, "output format: table, json, yaml")

	// Source file flags; defaults come from the config file or environment
	rootCmd.PersistentFlags().StringVar(&a.config.ArtistsFile, "artists", a.config.ArtistsFile, "artist export CSV")
	rootCmd.PersistentFlags().StringVar(&a.config.AlbumsFile, "albums", a.config.AlbumsFile, "album export CSV")
	rootCmd.PersistentFlags().StringVar(&a.config.MappingFile, "mapping", a.config.MappingFile, "artist cleanup mapping file")
	rootCmd.PersistentFlags().StringVar(&a.config.ExcludeFile, "exclude", a.config.ExcludeFile, "exclude list file")
	rootCmd.PersistentFlags().StringVar(&a.config.ExternalFile, "seated", a.config.ExternalFile, "cached Seated artist list file")

	rootCmd.SetVersionTemplate("melodex {{.Version}}\n")

	a.registerCommands(rootCmd)

	return rootCmd
}

// setupCommand is called before any command runs. Flags have been parsed into
// the config by now, so the logger is rebuilt to honor them.
func (a *App) setupCommand(_ *cobra.Command, _ []string) error {
	logger := NewLogger(a.config)
	a.logger = &logger
	return nil
}

// ExitOnError is a helper that prints an error and exits with status 1.
// This is meant to be used in main.go for top-level error handling.
func ExitOnError(err error) {
	if err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
