package spaces

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordConstruct is called after each space construction attempt.
	RecordConstruct(err error)

	// RecordSample is called after each sample draw.
	// size is the number of coordinates drawn, err is nil if successful.
	RecordSample(size int, duration time.Duration, err error)

	// RecordContains is called after each membership test.
	RecordContains(hit bool)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordConstruct(error)                   {}
func (NoopMetricsCollector) RecordSample(int, time.Duration, error) {}
func (NoopMetricsCollector) RecordContains(bool)                     {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	ConstructCount   atomic.Int64
	ConstructErrors  atomic.Int64
	SampleCount      atomic.Int64
	SampleErrors     atomic.Int64
	SampledValues    atomic.Int64
	SampleTotalNanos atomic.Int64
	ContainsCount    atomic.Int64
	ContainsHits     atomic.Int64
}

// RecordConstruct implements MetricsCollector.
func (b *BasicMetricsCollector) RecordConstruct(err error) {
	b.ConstructCount.Add(1)
	if err != nil {
		b.ConstructErrors.Add(1)
	}
}

// RecordSample implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSample(size int, duration time.Duration, err error) {
	b.SampleCount.Add(1)
	b.SampleTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.SampleErrors.Add(1)
		return
	}
	b.SampledValues.Add(int64(size))
}

// RecordContains implements MetricsCollector.
func (b *BasicMetricsCollector) RecordContains(hit bool) {
	b.ContainsCount.Add(1)
	if hit {
		b.ContainsHits.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		ConstructCount:  b.ConstructCount.Load(),
		ConstructErrors: b.ConstructErrors.Load(),
		SampleCount:     b.SampleCount.Load(),
		SampleErrors:    b.SampleErrors.Load(),
		SampledValues:   b.SampledValues.Load(),
		SampleAvgNanos:  b.getAvgSampleNanos(),
		ContainsCount:   b.ContainsCount.Load(),
		ContainsHits:    b.ContainsHits.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgSampleNanos() int64 {
	count := b.SampleCount.Load()
	if count == 0 {
		return 0
	}
	return b.SampleTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	ConstructCount  int64
	ConstructErrors int64
	SampleCount     int64
	SampleErrors    int64
	SampledValues   int64
	SampleAvgNanos  int64
	ContainsCount   int64
	ContainsHits    int64
}
