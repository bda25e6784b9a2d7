// Package app provides the application context and dependency management
// for the novelstat CLI. It centralizes configuration, logging and the
// options handed to commands.
package app

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/agentstation/novelstat/internal/cmd/application"
	"github.com/agentstation/novelstat/pkg/errors"
	"github.com/agentstation/novelstat/pkg/manuscript"
	"github.com/agentstation/novelstat/pkg/project"
	"github.com/agentstation/novelstat/pkg/report"
)

// App represents the novelstat application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	config *Config
	logger *zerolog.Logger
}

// New creates a new App instance with the given version information.
// The app is initialized with configuration from the environment and the
// default config file; options may replace either.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	config, err := LoadConfig("")
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

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured output format.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// ProjectPaths returns the layout of the configured project.
func (a *App) ProjectPaths() project.Paths {
	return project.NewPaths(a.config.ProjectPath)
}

// RefreshInterval returns the configured monitor interval.
func (a *App) RefreshInterval() time.Duration {
	return a.config.Interval
}

// ReportOptions translates the configuration into dashboard options.
func (a *App) ReportOptions() []report.Option {
	c := a.config
	opts := []report.Option{
		report.WithThresholds(manuscript.Thresholds{
			Complete:   c.CompleteWords,
			InProgress: c.InProgressWords,
		}),
		report.WithTolerance(c.WordTolerance),
		report.WithLogger(a.logger),
	}
	if len(c.Extensions) > 0 {
		opts = append(opts, report.WithExtensions(c.Extensions...))
	}
	if len(c.Components) > 0 {
		components := make([]report.Component, len(c.Components))
		for i, s := range c.Components {
			components[i] = report.ParseComponent(s)
		}
		opts = append(opts, report.WithComponents(components...))
	}
	return opts
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		if config == nil {
			return &errors.ValidationError{Field: "config", Message: "must not be nil"}
		}
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// Ensure App implements application.Application at compile time.
var _ application.Application = (*App)(nil)
