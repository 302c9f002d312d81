package bloomscore

import (
	"log/slog"

	"github.com/hupe1980/bloomscore/similarity"
)

type options struct {
	metric           similarity.Metric
	impl             similarity.Implementation
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures a Scorer.
type Option func(*options)

// WithMetric selects the similarity coefficient. Default: MetricDice.
func WithMetric(m similarity.Metric) Option {
	return func(o *options) {
		o.metric = m
	}
}

// WithImplementation selects the reference or optimized kernel.
// Default: Optimized. Reference is only meant for validation runs.
func WithImplementation(impl similarity.Implementation) Option {
	return func(o *options) {
		o.impl = impl
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &bloomscore.BasicMetricsCollector{}
//	s, _ := bloomscore.New(bloomscore.WithMetricsCollector(metrics))
//	// ... use s ...
//	stats := metrics.GetStats()
//	fmt.Printf("Scores: %d, Avg latency: %dns\n", stats.ScoreCount, stats.ScoreAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := bloomscore.NewJSONLogger(slog.LevelDebug)
//	s, _ := bloomscore.New(bloomscore.WithLogger(logger))
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
		metric:           similarity.MetricDice,
		impl:             similarity.Optimized,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
