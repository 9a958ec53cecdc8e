package cli

import (
	"sync/atomic"
	"time"
)

// Metrics tracks per-session operation outcomes using atomic operations
type Metrics struct {
	Succeeded atomic.Int64
	Failed    atomic.Int64
	StartTime time.Time
}

// NewMetrics creates a new Metrics instance
func NewMetrics() *Metrics {
	return &Metrics{
		StartTime: time.Now(),
	}
}

// IncSucceeded increments the succeeded operations counter
func (m *Metrics) IncSucceeded() {
	m.Succeeded.Add(1)
}

// IncFailed increments the failed operations counter
func (m *Metrics) IncFailed() {
	m.Failed.Add(1)
}

// MetricsSnapshot represents a point-in-time snapshot of metrics
type MetricsSnapshot struct {
	Succeeded int64
	Failed    int64
	StartTime time.Time
	Uptime    time.Duration
}

// GetSnapshot returns a snapshot of current metrics
func (m *Metrics) GetSnapshot() MetricsSnapshot {
	return MetricsSnapshot{
		Succeeded: m.Succeeded.Load(),
		Failed:    m.Failed.Load(),
		StartTime: m.StartTime,
		Uptime:    time.Since(m.StartTime),
	}
}

// Total returns the number of operations attempted
func (s MetricsSnapshot) Total() int64 {
	return s.Succeeded + s.Failed
}
