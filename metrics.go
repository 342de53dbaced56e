package shapesim

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordUpsert is called after each add operation.
	// duration includes extraction, err is nil if successful.
	RecordUpsert(duration time.Duration, err error)

	// RecordBatchUpsert is called after each batch add.
	// count is the number of meshes attempted, failed is the number that failed.
	RecordBatchUpsert(count, failed int, duration time.Duration)

	// RecordSearch is called after each similarity query.
	RecordSearch(k int, duration time.Duration, err error)

	// RecordRemove is called after each remove operation.
	RecordRemove(duration time.Duration, removed bool)

	// RecordClear is called after each clear. count is the number of shapes dropped.
	RecordClear(count int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordUpsert(time.Duration, error)         {}
func (NoopMetricsCollector) RecordBatchUpsert(int, int, time.Duration) {}
func (NoopMetricsCollector) RecordSearch(int, time.Duration, error)    {}
func (NoopMetricsCollector) RecordRemove(time.Duration, bool)          {}
func (NoopMetricsCollector) RecordClear(int, time.Duration)            {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	UpsertCount       atomic.Int64
	UpsertErrors      atomic.Int64
	UpsertTotalNanos  atomic.Int64
	BatchUpsertCount  atomic.Int64
	BatchUpsertItems  atomic.Int64
	BatchUpsertFailed atomic.Int64
	SearchCount       atomic.Int64
	SearchErrors      atomic.Int64
	SearchTotalNanos  atomic.Int64
	RemoveCount       atomic.Int64
	RemoveMisses      atomic.Int64
	ClearCount        atomic.Int64
	ClearedShapes     atomic.Int64
}

// RecordUpsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordUpsert(duration time.Duration, err error) {
	b.UpsertCount.Add(1)
	b.UpsertTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.UpsertErrors.Add(1)
	}
}

// RecordBatchUpsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBatchUpsert(count, failed int, duration time.Duration) {
	b.BatchUpsertCount.Add(1)
	b.BatchUpsertItems.Add(int64(count))
	b.BatchUpsertFailed.Add(int64(failed))
}

// RecordSearch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSearch(k int, duration time.Duration, err error) {
	b.SearchCount.Add(1)
	b.SearchTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.SearchErrors.Add(1)
	}
}

// RecordRemove implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRemove(duration time.Duration, removed bool) {
	b.RemoveCount.Add(1)
	if !removed {
		b.RemoveMisses.Add(1)
	}
}

// RecordClear implements MetricsCollector.
func (b *BasicMetricsCollector) RecordClear(count int, duration time.Duration) {
	b.ClearCount.Add(1)
	b.ClearedShapes.Add(int64(count))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		UpsertCount:       b.UpsertCount.Load(),
		UpsertErrors:      b.UpsertErrors.Load(),
		UpsertAvgNanos:    avgNanos(b.UpsertTotalNanos.Load(), b.UpsertCount.Load()),
		BatchUpsertCount:  b.BatchUpsertCount.Load(),
		BatchUpsertItems:  b.BatchUpsertItems.Load(),
		BatchUpsertFailed: b.BatchUpsertFailed.Load(),
		SearchCount:       b.SearchCount.Load(),
		SearchErrors:      b.SearchErrors.Load(),
		SearchAvgNanos:    avgNanos(b.SearchTotalNanos.Load(), b.SearchCount.Load()),
		RemoveCount:       b.RemoveCount.Load(),
		RemoveMisses:      b.RemoveMisses.Load(),
		ClearCount:        b.ClearCount.Load(),
		ClearedShapes:     b.ClearedShapes.Load(),
	}
}

func avgNanos(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	UpsertCount       int64
	UpsertErrors      int64
	UpsertAvgNanos    int64
	BatchUpsertCount  int64
	BatchUpsertItems  int64
	BatchUpsertFailed int64
	SearchCount       int64
	SearchErrors      int64
	SearchAvgNanos    int64
	RemoveCount       int64
	RemoveMisses      int64
	ClearCount        int64
	ClearedShapes     int64
}
