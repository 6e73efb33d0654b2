package somgo

import (
	"math"
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus
// (see examples/observability).
type MetricsCollector interface {
	// RecordReset is called after each weight reinitialization.
	RecordReset(duration time.Duration)

	// RecordFindBestMatch is called after each best-matching-unit search,
	// including the one performed inside TrainingStep.
	RecordFindBestMatch(duration time.Duration, distSq float32)

	// RecordTrainingStep is called after each training update.
	// tExp is the decay factor the update was computed with.
	RecordTrainingStep(duration time.Duration, tExp float32)

	// RecordFault is called for every precondition violation.
	RecordFault(err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordReset(time.Duration)                  {}
func (NoopMetricsCollector) RecordFindBestMatch(time.Duration, float32) {}
func (NoopMetricsCollector) RecordTrainingStep(time.Duration, float32)  {}
func (NoopMetricsCollector) RecordFault(error)                          {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	ResetCount         atomic.Int64
	SearchCount        atomic.Int64
	SearchTotalNanos   atomic.Int64
	TrainingStepCount  atomic.Int64
	TrainingTotalNanos atomic.Int64
	FaultCount         atomic.Int64

	lastDistSq atomic.Uint32
	lastTExp   atomic.Uint32
}

// RecordReset implements MetricsCollector.
func (b *BasicMetricsCollector) RecordReset(time.Duration) {
	b.ResetCount.Add(1)
}

// RecordFindBestMatch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFindBestMatch(duration time.Duration, distSq float32) {
	b.SearchCount.Add(1)
	b.SearchTotalNanos.Add(duration.Nanoseconds())
	b.lastDistSq.Store(math.Float32bits(distSq))
}

// RecordTrainingStep implements MetricsCollector.
func (b *BasicMetricsCollector) RecordTrainingStep(duration time.Duration, tExp float32) {
	b.TrainingStepCount.Add(1)
	b.TrainingTotalNanos.Add(duration.Nanoseconds())
	b.lastTExp.Store(math.Float32bits(tExp))
}

// RecordFault implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFault(error) {
	b.FaultCount.Add(1)
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		ResetCount:        b.ResetCount.Load(),
		SearchCount:       b.SearchCount.Load(),
		SearchAvgNanos:    avg(b.SearchTotalNanos.Load(), b.SearchCount.Load()),
		TrainingStepCount: b.TrainingStepCount.Load(),
		TrainingAvgNanos:  avg(b.TrainingTotalNanos.Load(), b.TrainingStepCount.Load()),
		FaultCount:        b.FaultCount.Load(),
		LastDistSq:        math.Float32frombits(b.lastDistSq.Load()),
		LastTExp:          math.Float32frombits(b.lastTExp.Load()),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of metrics from BasicMetricsCollector.
type BasicMetricsStats struct {
	ResetCount        int64
	SearchCount       int64
	SearchAvgNanos    int64
	TrainingStepCount int64
	TrainingAvgNanos  int64
	FaultCount        int64

	// LastDistSq is the winner distance of the most recent search.
	LastDistSq float32
	// LastTExp is the decay factor of the most recent training step.
	LastTExp float32
}
