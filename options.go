package somgo

import (
	"fmt"
	"log/slog"
)

// DefaultTExpMin is the decay floor applied once the step counter reaches
// TotalSteps. It keeps the decayed radius away from zero.
const DefaultTExpMin float32 = 1e-7

// Stride selects the row stride Prototype uses to address a cell.
type Stride int

const (
	// StrideHeight addresses cell (x, y) at (x + y*Height) * VectorLen.
	// This is the historical layout and only packs the buffer when
	// Width == Height. On rectangular grids some cells are unreachable
	// through Prototype.
	StrideHeight Stride = iota
	// StrideWidth addresses cell (x, y) at (x + y*Width) * VectorLen,
	// matching the order in which FindBestMatch and TrainingStep walk the buffer.
	StrideWidth
)

func (s Stride) String() string {
	switch s {
	case StrideHeight:
		return "height"
	case StrideWidth:
		return "width"
	default:
		return fmt.Sprintf("Unknown(%d)", s)
	}
}

type options struct {
	random           RandomSource
	allocator        Allocator
	faultHandler     FaultHandler
	tExpMin          float32
	stride           Stride
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures the capabilities a Map is built with.
type Option func(*options)

// WithRandomSource sets the source Reset draws initial weights from.
//
// Pass a seeded testutil.RNG for reproducible maps. If nil is passed, the
// default math/rand/v2 source is used.
func WithRandomSource(src RandomSource) Option {
	return func(o *options) {
		if src == nil {
			src = defaultRandomSource()
		}
		o.random = src
	}
}

// WithAllocator sets the strategy that provides and releases the weight buffer.
// If nil is passed, AlignedAllocator is used.
func WithAllocator(a Allocator) Option {
	return func(o *options) {
		if a == nil {
			a = AlignedAllocator{}
		}
		o.allocator = a
	}
}

// WithFaultHandler sets the handler for precondition violations.
// If nil is passed, PanicFaultHandler is used.
//
// Example collecting violations in a test:
//
//	var faults []error
//	m := somgo.New(2, 2, 3, 1, 100, 0.5, somgo.WithFaultHandler(func(err error) {
//	    faults = append(faults, err)
//	}))
func WithFaultHandler(h FaultHandler) Option {
	return func(o *options) {
		if h == nil {
			h = PanicFaultHandler
		}
		o.faultHandler = h
	}
}

// WithTExpMin overrides the decay floor (DefaultTExpMin).
// Non-positive values are ignored.
func WithTExpMin(v float32) Option {
	return func(o *options) {
		if v > 0 {
			o.tExpMin = v
		}
	}
}

// WithRowStride selects the addressing used by Prototype.
// The default is StrideHeight.
func WithRowStride(s Stride) Option {
	return func(o *options) {
		o.stride = s
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &somgo.BasicMetricsCollector{}
//	m := somgo.New(8, 8, 3, 4, 1000, 0.5, somgo.WithMetricsCollector(metrics))
//	// ... train ...
//	stats := metrics.GetStats()
//	fmt.Printf("Steps: %d, Avg latency: %dns\n", stats.TrainingStepCount, stats.TrainingAvgNanos)
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
//	logger := somgo.NewJSONLogger(slog.LevelDebug)
//	m := somgo.New(8, 8, 3, 4, 1000, 0.5, somgo.WithLogger(logger))
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
		random:           defaultRandomSource(),
		allocator:        AlignedAllocator{},
		faultHandler:     PanicFaultHandler,
		tExpMin:          DefaultTExpMin,
		stride:           StrideHeight,
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
