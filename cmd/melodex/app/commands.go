package app

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/melodex/melodex/cmd/melodex/cmd/export"
	"github.com/melodex/melodex/cmd/melodex/cmd/fetch"
	"github.com/melodex/melodex/cmd/melodex/cmd/list"
	"github.com/melodex/melodex/cmd/melodex/cmd/missing"
	"github.com/melodex/melodex/cmd/melodex/cmd/review"
	"github.com/melodex/melodex/cmd/melodex/cmd/top"
)

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	// Report commands
	rootCmd.AddCommand(list.NewCommand(a))
	rootCmd.AddCommand(top.NewCommand(a))
	rootCmd.AddCommand(missing.NewCommand(a))
	rootCmd.AddCommand(review.NewCommand(a))

	// Data commands
	rootCmd.AddCommand(export.NewCommand(a))
	rootCmd.AddCommand(fetch.NewCommand(a, a.config.SeatedSession))

	// Utility commands
	rootCmd.AddCommand(a.newVersionCommand())
}

// newVersionCommand creates the version command.
func (a *App) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "melodex version %s\n", a.version)
			fmt.Fprintf(out, "commit: %s\n", a.commit)
			fmt.Fprintf(out, "built: %s\n", a.date)
			fmt.Fprintf(out, "go version: %s\n", runtime.Version())
			fmt.Fprintf(out, "platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}
