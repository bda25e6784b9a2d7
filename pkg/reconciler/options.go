package reconciler

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/novelstat/pkg/constants"
	"github.com/agentstation/novelstat/pkg/errors"
	"github.com/agentstation/novelstat/pkg/manuscript"
)

// options configures a reconciler.
type options struct {
	tolerance  int
	thresholds manuscript.Thresholds
	logger     *zerolog.Logger
}

func defaultOptions() *options {
	return &options{
		tolerance:  constants.WordTolerance,
		thresholds: manuscript.DefaultThresholds(),
	}
}

// Option is a function that configures a Reconciler.
type Option func(*options) error

func (o *options) apply(opts ...Option) (*options, error) {
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// WithTolerance sets the largest word difference that is not reported.
func WithTolerance(words int) Option {
	return func(o *options) error {
		if words < 0 {
			return &errors.ValidationError{
				Field:   "tolerance",
				Value:   words,
				Message: "cannot be negative",
			}
		}
		o.tolerance = words
		return nil
	}
}

// WithThresholds sets the word counts used to judge completion.
func WithThresholds(t manuscript.Thresholds) Option {
	return func(o *options) error {
		if t.Complete < t.InProgress || t.InProgress < 0 {
			return &errors.ValidationError{
				Field:   "thresholds",
				Value:   t,
				Message: "complete must be >= in_progress >= 0",
			}
		}
		o.thresholds = t
		return nil
	}
}

// WithLogger sets a logger used instead of the one carried by the context.
func WithLogger(logger *zerolog.Logger) Option {
	return func(o *options) error {
		o.logger = logger
		return nil
	}
}
