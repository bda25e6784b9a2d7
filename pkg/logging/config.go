package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/agentstation/novelstat/pkg/constants"
)

// Config describes how the CLI logger is built.
type Config struct {
	// Level is trace, debug, info, warn or error. Anything else means info.
	Level string

	// Format is json, console or auto. Auto picks console on a terminal.
	Format string

	// Output is stderr, stdout, discard or a file path. Reports own stdout,
	// so stderr is the default.
	Output string

	// TimeFormat is a Go layout for console timestamps; empty means kitchen.
	TimeFormat string

	// NoColor disables colors in console mode.
	NoColor bool

	// AddCaller adds file:line to each entry.
	AddCaller bool
}

// NewLoggerFromConfig builds a logger from cfg. A nil cfg logs info and
// above to stderr.
func NewLoggerFromConfig(cfg *Config) zerolog.Logger {
	if cfg == nil {
		cfg = &Config{}
	}
	level := parseLevel(cfg.Level)
	zerolog.SetGlobalLevel(level)

	logger := zerolog.New(formatWriter(openOutput(cfg.Output), cfg)).
		Level(level).
		With().
		Timestamp().
		Logger()
	if cfg.AddCaller {
		logger = logger.With().Caller().Logger()
	}
	return logger
}

// openOutput resolves an output name. A log file that cannot be opened
// falls back to stderr so a bad LOG_OUTPUT never stops a report.
func openOutput(name string) io.Writer {
	switch strings.ToLower(name) {
	case "", "stderr":
		return os.Stderr
	case "stdout":
		return os.Stdout
	case "discard", "none":
		return io.Discard
	}
	file, err := os.OpenFile(name, os.O_CREATE|os.O_APPEND|os.O_WRONLY, constants.FilePermissions)
	if err != nil {
		return os.Stderr
	}
	return file
}

func formatWriter(out io.Writer, cfg *Config) io.Writer {
	format := strings.ToLower(cfg.Format)
	if format == "" || format == "auto" {
		format = "json"
		if f, ok := out.(*os.File); ok && isTerminal(f) {
			format = "console"
		}
	}
	if format != "console" && format != "pretty" {
		return out
	}

	timeFormat := cfg.TimeFormat
	if timeFormat == "" {
		timeFormat = time.Kitchen
	}
	return zerolog.ConsoleWriter{Out: out, TimeFormat: timeFormat, NoColor: cfg.NoColor}
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
