package telemetry

import (
	"errors"
	"testing"
	"time"
)

func TestDefaultGrowthMetricsSingleton(t *testing.T) {
	if DefaultGrowthMetrics() != DefaultGrowthMetrics() {
		t.Fatalf("expected default metrics to return singleton instance")
	}
}

func TestTraceGrowthRecordsMovesFailuresAndDuration(t *testing.T) {
	metrics := DefaultGrowthMetrics()
	metrics.Reset()

	finish := TraceGrowth()
	time.Sleep(time.Millisecond)
	finish(8, nil)

	finish = TraceGrowth()
	finish(0, errors.New("allocation refused"))

	reallocations, failures, slotsMoved, average := metrics.Snapshot()
	if reallocations != 2 {
		t.Fatalf("expected 2 reallocations, got %d", reallocations)
	}
	if failures != 1 {
		t.Fatalf("expected 1 failure, got %d", failures)
	}
	if slotsMoved != 8 {
		t.Fatalf("expected 8 moved slots, got %d", slotsMoved)
	}
	if average <= 0 {
		t.Fatalf("expected average duration > 0, got %v", average)
	}

	metrics.Reset()
	reallocations, failures, slotsMoved, average = metrics.Snapshot()
	if reallocations != 0 || failures != 0 || slotsMoved != 0 || average != 0 {
		t.Fatalf("expected metrics to reset to zero, got reallocations=%d failures=%d moved=%d average=%v", reallocations, failures, slotsMoved, average)
	}
}
