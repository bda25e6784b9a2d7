package application

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/agentstation/novelstat/pkg/constants"
	"github.com/agentstation/novelstat/pkg/project"
	"github.com/agentstation/novelstat/pkg/report"
)

// Mock provides a mock implementation of Application for testing.
// Each method can be customized by setting the corresponding function field.
// If a function field is nil, the method returns a default value.
type Mock struct {
	LoggerFunc          func() *zerolog.Logger
	OutputFormatFunc    func() string
	ProjectPathsFunc    func() project.Paths
	ReportOptionsFunc   func() []report.Option
	RefreshIntervalFunc func() time.Duration
	VersionFunc         func() string
	CommitFunc          func() string
	DateFunc            func() string
	BuiltByFunc         func() string
}

// Logger returns a logger using the mock function or a no-op logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	logger := zerolog.Nop()
	return &logger
}

// OutputFormat returns output format using the mock function or "text".
func (m *Mock) OutputFormat() string {
	if m.OutputFormatFunc != nil {
		return m.OutputFormatFunc()
	}
	return "text"
}

// ProjectPaths returns paths using the mock function or the current directory.
func (m *Mock) ProjectPaths() project.Paths {
	if m.ProjectPathsFunc != nil {
		return m.ProjectPathsFunc()
	}
	return project.NewPaths("")
}

// ReportOptions returns options using the mock function or none.
func (m *Mock) ReportOptions() []report.Option {
	if m.ReportOptionsFunc != nil {
		return m.ReportOptionsFunc()
	}
	return nil
}

// RefreshInterval returns the interval using the mock function or the default.
func (m *Mock) RefreshInterval() time.Duration {
	if m.RefreshIntervalFunc != nil {
		return m.RefreshIntervalFunc()
	}
	return constants.DefaultRefreshInterval
}

// Version returns version using the mock function or "dev".
func (m *Mock) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "dev"
}

// Commit returns commit using the mock function or "unknown".
func (m *Mock) Commit() string {
	if m.CommitFunc != nil {
		return m.CommitFunc()
	}
	return "unknown"
}

// Date returns date using the mock function or "unknown".
func (m *Mock) Date() string {
	if m.DateFunc != nil {
		return m.DateFunc()
	}
	return "unknown"
}

// BuiltBy returns builtBy using the mock function or "test".
func (m *Mock) BuiltBy() string {
	if m.BuiltByFunc != nil {
		return m.BuiltByFunc()
	}
	return "test"
}

// Ensure Mock implements Application at compile time.
var _ Application = (*Mock)(nil)
