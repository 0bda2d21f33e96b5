package diskpack

import (
	"sync"
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Implementations must be safe for concurrent use: with parallelism above
// one, RecordDirection is called from several goroutines.
type MetricsCollector interface {
	// RecordDirection is called after each direction sweep.
	// size is the number of selected disks.
	RecordDirection(angle float64, size int, duration time.Duration)

	// RecordSearch is called after each search.
	// best is the size of the returned packing, err is nil if successful.
	RecordSearch(directions, best int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordDirection(float64, int, time.Duration) {}
func (NoopMetricsCollector) RecordSearch(int, int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	DirectionCount      atomic.Int64
	DirectionTotalNanos atomic.Int64
	SearchCount         atomic.Int64
	SearchErrors        atomic.Int64
	SearchTotalNanos    atomic.Int64

	mu       sync.Mutex
	bestSize int
}

// RecordDirection implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDirection(angle float64, size int, duration time.Duration) {
	b.DirectionCount.Add(1)
	b.DirectionTotalNanos.Add(duration.Nanoseconds())
}

// RecordSearch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSearch(directions, best int, duration time.Duration, err error) {
	b.SearchCount.Add(1)
	b.SearchTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.SearchErrors.Add(1)
		return
	}

	b.mu.Lock()
	b.bestSize = max(b.bestSize, best)
	b.mu.Unlock()
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	b.mu.Lock()
	best := b.bestSize
	b.mu.Unlock()

	return BasicMetricsStats{
		DirectionCount:    b.DirectionCount.Load(),
		DirectionAvgNanos: avg(b.DirectionTotalNanos.Load(), b.DirectionCount.Load()),
		SearchCount:       b.SearchCount.Load(),
		SearchErrors:      b.SearchErrors.Load(),
		SearchAvgNanos:    avg(b.SearchTotalNanos.Load(), b.SearchCount.Load()),
		BestPackingSize:   best,
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	DirectionCount    int64
	DirectionAvgNanos int64
	SearchCount       int64
	SearchErrors      int64
	SearchAvgNanos    int64
	BestPackingSize   int
}
