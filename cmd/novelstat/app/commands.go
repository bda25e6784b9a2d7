package app

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/novelstat/cmd/novelstat/cmd/chapters"
	"github.com/agentstation/novelstat/cmd/novelstat/cmd/status"
	synccmd "github.com/agentstation/novelstat/cmd/novelstat/cmd/sync"
)

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	rootCmd.AddCommand(status.NewCommand(a))
	rootCmd.AddCommand(synccmd.NewCommand(a))
	rootCmd.AddCommand(chapters.NewCommand(a))
	rootCmd.AddCommand(a.newVersionCommand())
}

// newVersionCommand creates the version command.
func (a *App) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("novelstat %s\n", a.version)
			if a.config.Verbose {
				cmd.Printf("  commit:   %s\n", a.commit)
				cmd.Printf("  built:    %s\n", a.date)
				cmd.Printf("  built by: %s\n", a.builtBy)
			}
		},
	}
}
