package diskpack

import (
	"log/slog"
)

// DefaultAngleCount is the number of sweep directions used by Search.
const DefaultAngleCount = 8

type options struct {
	angleCount       int
	parallelism      int
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures a Search.
type Option func(*options)

// WithAngleCount sets the number of sweep directions.
// Directions are spaced uniformly around the full circle, starting at angle 0.
//
// Values below one make Search return ErrInvalidAngleCount.
func WithAngleCount(n int) Option {
	return func(o *options) {
		o.angleCount = n
	}
}

// WithParallelism sets how many direction sweeps may run at the same time.
//
// Each sweep allocates its own grid and aliveness flags, so memory use grows
// linearly with p. Values below one are treated as one. The result is
// identical for every setting.
func WithParallelism(p int) Option {
	return func(o *options) {
		o.parallelism = p
	}
}

// WithMetricsCollector configures a metrics collector for monitoring searches.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &diskpack.BasicMetricsCollector{}
//	res, _ := diskpack.Search(ctx, pts, r, diskpack.WithMetricsCollector(metrics))
//	stats := metrics.GetStats()
//	fmt.Printf("Directions: %d, Avg latency: %dns\n", stats.DirectionCount, stats.DirectionAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for searches.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := diskpack.NewJSONLogger(slog.LevelInfo)
//	res, _ := diskpack.Search(ctx, pts, r, diskpack.WithLogger(logger))
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
		angleCount:       DefaultAngleCount,
		parallelism:      1,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.parallelism < 1 {
		o.parallelism = 1
	}
	return o
}
