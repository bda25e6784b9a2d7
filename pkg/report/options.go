package report

import (
	"github.com/agentstation/utc"
	"github.com/rs/zerolog"

	"github.com/agentstation/novelstat/pkg/constants"
	"github.com/agentstation/novelstat/pkg/errors"
	"github.com/agentstation/novelstat/pkg/manuscript"
)

type options struct {
	thresholds manuscript.Thresholds
	tolerance  int
	extensions []string
	components []Component
	now        func() utc.Time
	logger     *zerolog.Logger
}

func defaultOptions() *options {
	return &options{
		thresholds: manuscript.DefaultThresholds(),
		tolerance:  constants.WordTolerance,
		extensions: constants.DefaultExtensions,
		components: DefaultComponents(),
		now:        utc.Now,
	}
}

// Option configures Build.
type Option func(*options) error

// WithThresholds overrides the chapter status thresholds used by the scan,
// the reconciliation and the correction.
func WithThresholds(t manuscript.Thresholds) Option {
	return func(o *options) error {
		if t.InProgress < 0 || t.Complete < t.InProgress {
			return &errors.ValidationError{
				Field:   "thresholds",
				Value:   t,
				Message: "require 0 <= in_progress <= complete",
			}
		}
		o.thresholds = t
		return nil
	}
}

// WithTolerance overrides the word-count tolerance.
func WithTolerance(words int) Option {
	return func(o *options) error {
		if words < 0 {
			return &errors.ValidationError{
				Field:   "tolerance",
				Value:   words,
				Message: "must not be negative",
			}
		}
		o.tolerance = words
		return nil
	}
}

// WithExtensions sets which manuscript file extensions are scanned. The
// scanner validates them.
func WithExtensions(exts ...string) Option {
	return func(o *options) error {
		o.extensions = exts
		return nil
	}
}

// WithComponents replaces the component checklist.
func WithComponents(components ...Component) Option {
	return func(o *options) error {
		o.components = components
		return nil
	}
}

// WithClock fixes the generated-at timestamp.
func WithClock(now func() utc.Time) Option {
	return func(o *options) error {
		o.now = now
		return nil
	}
}

// WithLogger sets the logger passed down to the scanner and reconciler.
func WithLogger(logger *zerolog.Logger) Option {
	return func(o *options) error {
		o.logger = logger
		return nil
	}
}
