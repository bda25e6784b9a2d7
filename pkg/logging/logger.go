// Package logging provides the zerolog setup shared by novelstat.
//
// The CLI builds one logger from its configuration and passes it down
// through the context; packages fetch it with FromContext. Logs always go
// to stderr (or a file) so that the report on stdout can be piped.
//
//	ctx := logging.WithLogger(context.Background(), &logger)
//	ctx = logging.WithOperation(ctx, "scan")
//	logging.FromContext(ctx).Debug().Int("files", n).Msg("Scanned manuscript directory")
package logging

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// defaultLogger is used when a context carries no logger. It honours
// LOG_LEVEL and LOG_FORMAT so library callers get the same knobs as the CLI.
var defaultLogger = NewLoggerFromConfig(&Config{
	Level:   os.Getenv("LOG_LEVEL"),
	Format:  os.Getenv("LOG_FORMAT"),
	NoColor: os.Getenv("NO_COLOR") != "",
})

// Default returns the fallback logger.
func Default() *zerolog.Logger {
	return &defaultLogger
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
