package statview

type options struct {
	environment *string
	previous    *DatasetView
	serving     *DatasetView
	strictPaths bool
	logger      *Logger
	metrics     MetricsCollector
}

func defaultOptions() options {
	return options{
		logger:  NoopLogger(),
		metrics: NoopMetricsCollector{},
	}
}

// Option configures DatasetView construction.
type Option func(*options)

// WithEnvironment tags the view with an environment label (e.g.
// "TRAINING", "SERVING"). Features can be scoped to environments by the
// consuming layer.
func WithEnvironment(environment string) Option {
	return func(o *options) {
		o.environment = &environment
	}
}

// WithPrevious links a previous-baseline view for comparison queries.
func WithPrevious(previous DatasetView) Option {
	return func(o *options) {
		o.previous = &previous
	}
}

// WithServing links a serving-baseline view for comparison queries.
func WithServing(serving DatasetView) Option {
	return func(o *options) {
		o.serving = &serving
	}
}

// WithStrictPaths makes duplicate feature paths a construction error
// instead of keeping the first-seen mapping.
func WithStrictPaths() Option {
	return func(o *options) {
		o.strictPaths = true
	}
}

// WithLogger configures the logger used during construction.
//
// If nil is passed, logging is disabled.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithMetrics configures the metrics collector.
//
// If nil is passed, metrics collection is disabled.
func WithMetrics(metrics MetricsCollector) Option {
	return func(o *options) {
		if metrics == nil {
			metrics = NoopMetricsCollector{}
		}
		o.metrics = metrics
	}
}
