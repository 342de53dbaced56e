package shapesim

import (
	"log/slog"

	"github.com/hupe1980/shapesim/feature"
	"github.com/hupe1980/shapesim/resource"
)

type options struct {
	extractor        feature.ExtractorFunc
	resources        *resource.Controller
	batchConcurrency int
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures an Engine.
type Option func(*options)

// WithExtractor replaces feature.Extract for both stored and query meshes.
//
// If nil is passed, feature.Extract is used.
func WithExtractor(fn feature.ExtractorFunc) Option {
	return func(o *options) {
		if fn == nil {
			fn = feature.Extract
		}
		o.extractor = fn
	}
}

// WithResourceController bounds extraction memory, concurrency and
// throughput. Pass nil to disable limits (the default).
//
// Example:
//
//	rc := resource.NewController(resource.Config{
//	    MaxConcurrentExtractions: int64(runtime.GOMAXPROCS(0)),
//	    MemoryLimitBytes:         1 << 30,
//	})
//	eng := shapesim.New(shapesim.WithResourceController(rc))
func WithResourceController(rc *resource.Controller) Option {
	return func(o *options) {
		o.resources = rc
	}
}

// WithBatchConcurrency sets how many meshes AddBatch extracts at once.
// Values < 1 mean 1.
func WithBatchConcurrency(n int) Option {
	return func(o *options) {
		o.batchConcurrency = max(n, 1)
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &shapesim.BasicMetricsCollector{}
//	eng := shapesim.New(shapesim.WithMetricsCollector(metrics))
//	// ... use eng ...
//	stats := metrics.GetStats()
//	fmt.Printf("Adds: %d, Avg latency: %dns\n", stats.UpsertCount, stats.UpsertAvgNanos)
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
//	logger := shapesim.NewJSONLogger(slog.LevelInfo)
//	eng := shapesim.New(shapesim.WithLogger(logger))
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
		extractor:        feature.Extract,
		batchConcurrency: 1,
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
