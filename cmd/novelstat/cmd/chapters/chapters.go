// Package chapters implements the chapters command, a per-chapter table of
// tracked against observed state.
package chapters

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/novelstat/internal/cmd/application"
	"github.com/agentstation/novelstat/internal/cmd/output"
	"github.com/agentstation/novelstat/pkg/logging"
	"github.com/agentstation/novelstat/pkg/report"
)

// NewCommand creates the chapters command with app dependencies.
func NewCommand(app application.Application) *cobra.Command {
	var files bool

	cmd := &cobra.Command{
		Use:     "chapters",
		GroupID: "core",
		Aliases: []string{"ch"},
		Short:   "Compare tracked and observed chapters",
		Example: `  novelstat chapters
  novelstat chapters --files
  novelstat chapters -o yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := output.ResolveData(app.OutputFormat(), cmd.OutOrStdout())
			if err != nil {
				return err
			}

			ctx := logging.WithLogger(cmd.Context(), app.Logger())
			d, err := report.Build(ctx, app.ProjectPaths(), app.ReportOptions()...)
			if err != nil {
				return err
			}
			if files {
				return output.WriteFiles(cmd.OutOrStdout(), format, d)
			}
			return output.WriteChapters(cmd.OutOrStdout(), format, d)
		},
	}

	cmd.Flags().BoolVar(&files, "files", false, "list scanned manuscript files instead of chapters")
	return cmd
}
