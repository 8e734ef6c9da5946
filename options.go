package spaces

import (
	"github.com/hupe1980/spaces/prng"
)

type options struct {
	source  prng.Uniform
	logger  *Logger
	metrics MetricsCollector
}

func defaultOptions() options {
	return options{
		source:  prng.Global(),
		logger:  NoopLogger(),
		metrics: NoopMetricsCollector{},
	}
}

func applyOptions(optFns []Option) options {
	o := defaultOptions()
	for _, fn := range optFns {
		fn(&o)
	}
	return o
}

// Option configures a space at construction time.
type Option func(*options)

// WithSource sets the random source Sample draws from.
//
// If nil is passed, prng.Global() is used.
func WithSource(src prng.Uniform) Option {
	return func(o *options) {
		if src == nil {
			src = prng.Global()
		}
		o.source = src
	}
}

// WithLogger configures structured logging.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &spaces.BasicMetricsCollector{}
//	box, _ := spaces.NewBox(-1, 1, ndarray.Shape{3}, spaces.WithMetricsCollector(metrics))
//	stats := metrics.GetStats()
func WithMetricsCollector(m MetricsCollector) Option {
	return func(o *options) {
		if m == nil {
			m = NoopMetricsCollector{}
		}
		o.metrics = m
	}
}
