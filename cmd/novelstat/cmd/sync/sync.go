// Package sync implements the sync command, which prints the correction
// report for the declared tracking files.
package sync

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/novelstat/internal/cmd/application"
	"github.com/agentstation/novelstat/internal/cmd/output"
	"github.com/agentstation/novelstat/pkg/logging"
	"github.com/agentstation/novelstat/pkg/report"
)

// NewCommand creates the sync command with app dependencies.
func NewCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "sync",
		GroupID: "core",
		Short:   "Print corrected tracking files derived from the manuscript",
		Long: `Sync recomputes the chapter tracking collection and the progress record
from the manuscript files alone and prints both as JSON, with the files
they are meant to replace. Title, target and milestone are carried over from
the current progress record.

The planning files are never modified; copy the payloads over them yourself.`,
		Example: `  novelstat sync
  novelstat sync -o json | jq .tracking`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := output.Resolve(app.OutputFormat())
			if err != nil {
				return err
			}

			ctx := logging.WithLogger(cmd.Context(), app.Logger())
			paths := app.ProjectPaths()
			d, err := report.Build(ctx, paths, app.ReportOptions()...)
			if err != nil {
				return err
			}
			return output.WriteCorrection(cmd.OutOrStdout(), format, d, paths)
		},
	}
}
