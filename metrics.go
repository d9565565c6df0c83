package statview

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordViewBuild is called after each view construction.
	// features is the record count, duration the build time, err is nil
	// on success.
	RecordViewBuild(features int, duration time.Duration, err error)

	// RecordPathLookup is called after each ByPath lookup.
	RecordPathLookup(found bool)

	// RecordSnapshotLoad is called after each snapshot load attempt.
	// bytes is the blob size (0 when the blob could not be read),
	// duration the total load time, err is nil on success.
	RecordSnapshotLoad(bytes int64, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordViewBuild(int, time.Duration, error)      {}
func (NoopMetricsCollector) RecordPathLookup(bool)                          {}
func (NoopMetricsCollector) RecordSnapshotLoad(int64, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	BuildCount      atomic.Int64
	BuildErrors     atomic.Int64
	BuildFeatures   atomic.Int64
	BuildTotalNanos atomic.Int64
	LookupCount     atomic.Int64
	LookupMisses    atomic.Int64
	LoadCount       atomic.Int64
	LoadErrors      atomic.Int64
	LoadBytes       atomic.Int64
	LoadTotalNanos  atomic.Int64
}

// RecordViewBuild implements MetricsCollector.
func (b *BasicMetricsCollector) RecordViewBuild(features int, duration time.Duration, err error) {
	b.BuildCount.Add(1)
	b.BuildFeatures.Add(int64(features))
	b.BuildTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.BuildErrors.Add(1)
	}
}

// RecordPathLookup implements MetricsCollector.
func (b *BasicMetricsCollector) RecordPathLookup(found bool) {
	b.LookupCount.Add(1)
	if !found {
		b.LookupMisses.Add(1)
	}
}

// RecordSnapshotLoad implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSnapshotLoad(bytes int64, duration time.Duration, err error) {
	b.LoadCount.Add(1)
	b.LoadBytes.Add(bytes)
	b.LoadTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.LoadErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		BuildCount:    b.BuildCount.Load(),
		BuildErrors:   b.BuildErrors.Load(),
		BuildFeatures: b.BuildFeatures.Load(),
		BuildAvgNanos: b.getAvgBuildNanos(),
		LookupCount:   b.LookupCount.Load(),
		LookupMisses:  b.LookupMisses.Load(),
		LoadCount:     b.LoadCount.Load(),
		LoadErrors:    b.LoadErrors.Load(),
		LoadBytes:     b.LoadBytes.Load(),
		LoadAvgNanos:  b.getAvgLoadNanos(),
	}
}

func (b *BasicMetricsCollector) getAvgLoadNanos() int64 {
	count := b.LoadCount.Load()
	if count == 0 {
		return 0
	}
	return b.LoadTotalNanos.Load() / count
}

func (b *BasicMetricsCollector) getAvgBuildNanos() int64 {
	count := b.BuildCount.Load()
	if count == 0 {
		return 0
	}
	return b.BuildTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	BuildCount    int64
	BuildErrors   int64
	BuildFeatures int64
	BuildAvgNanos int64
	LookupCount   int64
	LookupMisses  int64
	LoadCount     int64
	LoadErrors    int64
	LoadBytes     int64
	LoadAvgNanos  int64
}
