// Package status implements the status command: the project dashboard,
// once or on a polling loop.
package status

import (
	"context"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/agentstation/novelstat/internal/cmd/application"
	"github.com/agentstation/novelstat/internal/cmd/output"
	"github.com/agentstation/novelstat/internal/monitor"
	"github.com/agentstation/novelstat/pkg/logging"
	"github.com/agentstation/novelstat/pkg/report"
)

// Flags holds the status command flags.
type Flags struct {
	Monitor  bool
	Interval time.Duration
	Sync     bool
}

// NewCommand creates the status command with app dependencies.
func NewCommand(app application.Application) *cobra.Command {
	flags := &Flags{}

	cmd := &cobra.Command{
		Use:     "status",
		GroupID: "core",
		Short:   "Show the project status dashboard",
		Long: `Status reconciles the declared progress and chapter tracking files under
planning/ against the manuscript files under manuscript/chapters/ and prints
a dashboard: word counts, progress, consistency findings, per-file status,
the tracked chapter breakdown, a component checklist and recommendations.

Nothing is ever written to the project.`,
		Example: `  novelstat status                      # One-shot dashboard
  novelstat status --monitor -i 1m      # Refresh every minute until Ctrl+C
  novelstat status --sync               # Print the correction report
  novelstat status -o markdown > STATUS.md`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return Run(cmd, app, flags)
		},
	}

	AddFlags(cmd, flags, app.RefreshInterval())
	return cmd
}

// AddFlags registers the status flags on cmd. The root command reuses them
// so that a bare invocation behaves like status.
func AddFlags(cmd *cobra.Command, flags *Flags, interval time.Duration) {
	cmd.Flags().BoolVarP(&flags.Monitor, "monitor", "m", false, "continuously refresh the dashboard")
	cmd.Flags().DurationVarP(&flags.Interval, "interval", "i", interval, "refresh interval for --monitor")
	cmd.Flags().BoolVarP(&flags.Sync, "sync", "s", false, "print the correction report instead of the dashboard")
	cmd.MarkFlagsMutuallyExclusive("monitor", "sync")
}

// Run executes the status command.
func Run(cmd *cobra.Command, app application.Application, flags *Flags) error {
	format, err := output.Resolve(app.OutputFormat())
	if err != nil {
		return err
	}

	ctx := logging.WithLogger(cmd.Context(), app.Logger())
	paths := app.ProjectPaths()
	opts := app.ReportOptions()

	if flags.Sync {
		d, err := report.Build(ctx, paths, opts...)
		if err != nil {
			return err
		}
		return output.WriteCorrection(cmd.OutOrStdout(), format, d, paths)
	}

	render := func(ctx context.Context, w io.Writer) error {
		d, err := report.Build(ctx, paths, opts...)
		if err != nil {
			return err
		}
		return output.WriteDashboard(w, format, d)
	}

	if flags.Monitor {
		if !cmd.Flags().Changed("interval") {
			flags.Interval = app.RefreshInterval()
		}
		app.Logger().Debug().
			Str("project", paths.Root).
			Dur("interval", flags.Interval).
			Msg("Starting monitor")
		return monitor.Run(ctx, flags.Interval, render, monitor.WithOutput(cmd.OutOrStdout()))
	}
	return render(ctx, cmd.OutOrStdout())
}
