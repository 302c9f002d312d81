package bloomscore

import (
	"sync/atomic"
	"time"

	"github.com/hupe1980/bloomscore/similarity"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Implementations must be safe for concurrent use; a Scorer may be shared by
// many goroutines.
type MetricsCollector interface {
	// RecordScore is called after each pair scoring operation.
	// err is nil if successful.
	RecordScore(metric similarity.Metric, duration time.Duration, err error)

	// RecordScoreMany is called after each one-against-many operation.
	// count is the number of candidates attempted.
	RecordScoreMany(metric similarity.Metric, count int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordScore(similarity.Metric, time.Duration, error)          {}
func (NoopMetricsCollector) RecordScoreMany(similarity.Metric, int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	ScoreCount          atomic.Int64
	ScoreErrors         atomic.Int64
	ScoreTotalNanos     atomic.Int64
	ScoreManyCount      atomic.Int64
	ScoreManyErrors     atomic.Int64
	ScoreManyItems      atomic.Int64
	ScoreManyTotalNanos atomic.Int64
}

// RecordScore implements MetricsCollector.
func (b *BasicMetricsCollector) RecordScore(_ similarity.Metric, duration time.Duration, err error) {
	b.ScoreCount.Add(1)
	b.ScoreTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ScoreErrors.Add(1)
	}
}

// RecordScoreMany implements MetricsCollector.
func (b *BasicMetricsCollector) RecordScoreMany(_ similarity.Metric, count int, duration time.Duration, err error) {
	b.ScoreManyCount.Add(1)
	b.ScoreManyItems.Add(int64(count))
	b.ScoreManyTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ScoreManyErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		ScoreCount:        b.ScoreCount.Load(),
		ScoreErrors:       b.ScoreErrors.Load(),
		ScoreAvgNanos:     avg(b.ScoreTotalNanos.Load(), b.ScoreCount.Load()),
		ScoreManyCount:    b.ScoreManyCount.Load(),
		ScoreManyErrors:   b.ScoreManyErrors.Load(),
		ScoreManyItems:    b.ScoreManyItems.Load(),
		ScoreManyAvgNanos: avg(b.ScoreManyTotalNanos.Load(), b.ScoreManyCount.Load()),
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
	ScoreCount        int64
	ScoreErrors       int64
	ScoreAvgNanos     int64
	ScoreManyCount    int64
	ScoreManyErrors   int64
	ScoreManyItems    int64
	ScoreManyAvgNanos int64
}
