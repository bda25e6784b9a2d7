// Package application defines what commands need from the running app.
//
// Commands accept the Application interface rather than the concrete App
// type, so they can be tested with Mock:
//
//	mock := &application.Mock{
//	    ProjectPathsFunc: func() project.Paths {
//	        return project.NewPaths(t.TempDir())
//	    },
//	}
//	cmd := status.NewCommand(mock)
package application

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/agentstation/novelstat/pkg/project"
	"github.com/agentstation/novelstat/pkg/report"
)

// Application provides the application interface that commands need.
type Application interface {
	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the requested output format, or "" to detect it.
	OutputFormat() string

	// ProjectPaths returns the layout of the project being reported on.
	ProjectPaths() project.Paths

	// ReportOptions returns the dashboard options built from configuration
	// (thresholds, tolerance, extensions and the component checklist).
	ReportOptions() []report.Option

	// RefreshInterval returns the default monitor interval.
	RefreshInterval() time.Duration

	// Version information.
	Version() string
	Commit() string
	Date() string
	BuiltBy() string
}
