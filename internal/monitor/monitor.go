// Package monitor re-runs a render function on a fixed interval until the
// context is cancelled. Each iteration is independent: nothing is carried
// from one render to the next.
package monitor

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/agentstation/novelstat/internal/emoji"
	"github.com/agentstation/novelstat/pkg/constants"
	"github.com/agentstation/novelstat/pkg/errors"
	"github.com/agentstation/novelstat/pkg/logging"
)

// clearScreen moves the cursor home and clears the terminal.
const clearScreen = "\033[H\033[2J"

// RenderFunc draws one frame to w.
type RenderFunc func(ctx context.Context, w io.Writer) error

type options struct {
	out   io.Writer
	clear bool
	after func(time.Duration) <-chan time.Time
}

// Option configures Run.
type Option func(*options)

// WithOutput sets where frames and notices are written. The screen is
// cleared between frames only when out is a terminal.
func WithOutput(out io.Writer) Option {
	return func(o *options) {
		o.out = out
		o.clear = isTerminal(out)
	}
}

// WithClear forces screen clearing on or off.
func WithClear(clear bool) Option {
	return func(o *options) {
		o.clear = clear
	}
}

// withAfter replaces time.After (tests).
func withAfter(after func(time.Duration) <-chan time.Time) Option {
	return func(o *options) {
		o.after = after
	}
}

// Run renders, waits interval, and repeats until ctx is done. Cancellation
// is the normal way to stop and returns nil after a stop notice. A render
// error ends the loop and is returned.
func Run(ctx context.Context, interval time.Duration, render RenderFunc, opts ...Option) error {
	if interval < constants.MinRefreshInterval {
		return &errors.ValidationError{
			Field:   "interval",
			Value:   interval,
			Message: fmt.Sprintf("must be at least %s", constants.MinRefreshInterval),
		}
	}

	o := &options{
		out:   os.Stdout,
		clear: isTerminal(os.Stdout),
		after: time.After,
	}
	for _, opt := range opts {
		opt(o)
	}

	logger := logging.FromContext(logging.WithOperation(ctx, "monitor"))

	fmt.Fprintf(o.out, "%s Starting continuous monitoring...\n", emoji.Refresh)
	fmt.Fprintf(o.out, "%s Refreshing every %s\n", emoji.Chart, interval)
	fmt.Fprintf(o.out, "%s  Press Ctrl+C to stop monitoring\n", emoji.Stop)

	for iteration := 1; ; iteration++ {
		if ctx.Err() != nil {
			break
		}
		if o.clear {
			fmt.Fprint(o.out, clearScreen)
		}

		if err := render(ctx, o.out); err != nil {
			if errors.IsCanceled(err) {
				break
			}
			return err
		}
		logger.Debug().Int("iteration", iteration).Dur("interval", interval).Msg("Rendered dashboard")

		select {
		case <-ctx.Done():
		case <-o.after(interval):
		}
	}

	fmt.Fprintf(o.out, "\n%s Monitoring stopped\n", emoji.Wave)
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
