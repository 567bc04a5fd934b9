package neodb

import "log/slog"

type options struct {
	metrics MetricsCollector
	logger  *Logger
}

// Option configures Database construction behavior.
type Option func(*options)

// WithMetricsCollector configures a metrics collector for lookups and
// queries. Pass nil to disable metrics collection.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metrics = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metrics: NoopMetricsCollector{},
		logger:  NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
