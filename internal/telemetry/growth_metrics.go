package telemetry

import (
	"sync/atomic"
	"time"
)

// GrowthMetrics aggregates measurements about buffer reallocations.
type GrowthMetrics struct {
	totalDuration atomic.Int64
	reallocations atomic.Uint64
	failures      atomic.Uint64
	slotsMoved    atomic.Uint64
}

var defaultGrowthMetrics GrowthMetrics

// DefaultGrowthMetrics returns the global metrics.
func DefaultGrowthMetrics() *GrowthMetrics {
	return &defaultGrowthMetrics
}

// TraceGrowth starts a reallocation span and returns a finish function that
// reports the number of transferred slots and the error state.
func TraceGrowth() func(moved int, err error) {
	start := time.Now()
	defaultGrowthMetrics.reallocations.Add(1)
	return func(moved int, err error) {
		elapsed := time.Since(start)
		defaultGrowthMetrics.totalDuration.Add(elapsed.Nanoseconds())
		if err != nil {
			defaultGrowthMetrics.failures.Add(1)
			return
		}
		defaultGrowthMetrics.slotsMoved.Add(uint64(moved))
	}
}

// Snapshot returns the collected values.
func (m *GrowthMetrics) Snapshot() (reallocations, failures, slotsMoved uint64, average time.Duration) {
	reallocations = m.reallocations.Load()
	failures = m.failures.Load()
	slotsMoved = m.slotsMoved.Load()
	total := m.totalDuration.Load()
	if reallocations == 0 {
		return reallocations, failures, slotsMoved, 0
	}
	average = time.Duration(total / int64(reallocations))
	return reallocations, failures, slotsMoved, average
}

// Reset sets all counters back to zero.
func (m *GrowthMetrics) Reset() {
	m.totalDuration.Store(0)
	m.reallocations.Store(0)
	m.failures.Store(0)
	m.slotsMoved.Store(0)
}
