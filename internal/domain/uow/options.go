package uow

import (
	"time"

	"github.com/amirhossein-jamali/dbcoord/internal/domain/port/core"
)

type options struct {
	logger   core.Logger
	observer Observer
	now      func() time.Time
}

// Option configures a unit of work
type Option func(*options)

// WithLogger sets the logger used for lifecycle and hook failure messages
func WithLogger(logger core.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithObserver sets the lifecycle observer
func WithObserver(observer Observer) Option {
	return func(o *options) {
		if observer != nil {
			o.observer = observer
		}
	}
}

// WithTimeProvider sets the clock used to measure unit of work lifetimes
func WithTimeProvider(timeProvider core.TimeProvider) Option {
	return func(o *options) {
		if timeProvider != nil {
			o.now = timeProvider.Now
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{
		logger:   noopLogger{},
		observer: noopObserver{},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
