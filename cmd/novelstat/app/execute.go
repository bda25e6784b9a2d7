package app

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentstation/novelstat/cmd/novelstat/cmd/status"
)

// rootFlags holds the persistent flags until setupCommand merges them
// into the config.
type rootFlags struct {
	configFile string
	path       string
	verbose    bool
	quiet      bool
	noColor    bool
	format     string
	logLevel   string
}

// Execute runs the novelstat CLI application with the given arguments.
// This is the main entry point called from main.go.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
// Run without a subcommand, the root behaves like status.
func (a *App) createRootCommand() *cobra.Command {
	flags := &rootFlags{}
	statusFlags := &status.Flags{}

	rootCmd := &cobra.Command{
		Use:     "novelstat",
		Short:   "Status dashboard for a file-based novel project",
		Version: a.version,
		Long: `Novelstat reports on a novel-writing project laid out as planning/ metadata
and manuscript/chapters/ files. It reconciles what the planning files declare
against what the manuscript actually contains and prints a dashboard with any
discrepancies, and can print corrected planning files for you to apply.

Run without a subcommand it behaves like "novelstat status".`,
		Args: cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setupCommand(flags)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return status.Run(cmd, a, statusFlags)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "Core Commands:",
	})

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.configFile, "config", "", "config file (default is $HOME/.novelstat.yaml)")
	pf.StringVarP(&flags.path, "path", "p", "", "path to the novel project (default \".\")")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "verbose output (shortcut for --log-level=debug)")
	pf.BoolVarP(&flags.quiet, "quiet", "q", false, "minimal output (shortcut for --log-level=warn)")
	pf.BoolVar(&flags.noColor, "no-color", false, "disable colored output")
	pf.StringVarP(&flags.format, "format", "o", "", "output format: text, markdown, json, yaml")
	pf.StringVar(&flags.logLevel, "log-level", "", "log level: trace, debug, info, warn, error (overrides -v/-q)")

	status.AddFlags(rootCmd, statusFlags, a.config.Interval)

	rootCmd.SetVersionTemplate("novelstat {{.Version}}\n")

	a.registerCommands(rootCmd)

	return rootCmd
}

// setupCommand is called before any command runs.
func (a *App) setupCommand(flags *rootFlags) error {
	if flags.configFile != "" {
		config, err := LoadConfig(flags.configFile)
		if err != nil {
			return err
		}
		a.config = config
	}

	a.config.UpdateFromFlags(flags.verbose, flags.quiet, flags.noColor, flags.format, flags.logLevel, flags.path)

	// Reinitialize logger with updated config
	logger := NewLogger(a.config)
	a.logger = &logger

	a.logger.Debug().
		Str("project", a.config.ProjectPath).
		Str("config", a.config.ConfigFile).
		Msg("Configured")
	return nil
}

// ExitOnError is a helper that prints an error and exits with status 1.
// This is meant to be used in main.go for top-level error handling.
func ExitOnError(err error) {
	if err != nil {
		//nolint:errcheck // Ignoring write error since we're exiting anyway
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		os.Exit(1)
	}
}
