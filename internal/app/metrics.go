package app

import (
	"sync/atomic"
	"time"
)

// Metrics counts main loop activity.
type Metrics struct {
	iterations      atomic.Uint64
	keyEvents       atomic.Uint64
	handledKeys     atomic.Uint64
	mouseEvents     atomic.Uint64
	redraws         atomic.Uint64
	invocations     atomic.Uint64
	recoveredPanics atomic.Uint64
	maxDepth        atomic.Int64

	iterationTotalNs atomic.Int64

	startTime time.Time
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	return &Metrics{startTime: time.Now()}
}

// RecordIteration records one main loop iteration.
func (m *Metrics) RecordIteration(duration time.Duration) {
	m.iterations.Add(1)
	m.iterationTotalNs.Add(duration.Nanoseconds())
}

// RecordKey records a key event and whether it was handled.
func (m *Metrics) RecordKey(handled bool) {
	m.keyEvents.Add(1)
	if handled {
		m.handledKeys.Add(1)
	}
}

// RecordMouse records a mouse event.
func (m *Metrics) RecordMouse() {
	m.mouseEvents.Add(1)
}

// RecordRedraw records a screen redraw.
func (m *Metrics) RecordRedraw() {
	m.redraws.Add(1)
}

// RecordInvocation records a function run from the invoke queue.
func (m *Metrics) RecordInvocation() {
	m.invocations.Add(1)
}

// RecordPanic records a recovered panic.
func (m *Metrics) RecordPanic() {
	m.recoveredPanics.Add(1)
}

// RecordDepth records the run loop nesting depth.
func (m *Metrics) RecordDepth(depth int) {
	d := int64(depth)
	for {
		old := m.maxDepth.Load()
		if d <= old {
			return
		}
		if m.maxDepth.CompareAndSwap(old, d) {
			return
		}
	}
}

// Snapshot returns a snapshot of current metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	iterations := m.iterations.Load()
	var avg int64
	if iterations > 0 {
		avg = m.iterationTotalNs.Load() / int64(iterations)
	}
	return MetricsSnapshot{
		Uptime:          time.Since(m.startTime),
		Iterations:      iterations,
		AvgIterationNs:  avg,
		KeyEvents:       m.keyEvents.Load(),
		HandledKeys:     m.handledKeys.Load(),
		MouseEvents:     m.mouseEvents.Load(),
		Redraws:         m.redraws.Load(),
		Invocations:     m.invocations.Load(),
		RecoveredPanics: m.recoveredPanics.Load(),
		MaxRunDepth:     int(m.maxDepth.Load()),
	}
}

// MetricsSnapshot is a point-in-time view of metrics.
type MetricsSnapshot struct {
	Uptime          time.Duration
	Iterations      uint64
	AvgIterationNs  int64
	KeyEvents       uint64
	HandledKeys     uint64
	MouseEvents     uint64
	Redraws         uint64
	Invocations     uint64
	RecoveredPanics uint64
	MaxRunDepth     int
}
