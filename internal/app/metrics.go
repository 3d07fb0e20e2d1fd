package app

import (
	"time"
)

// Metrics tracks what happened during one editing session.
// The editor is single-threaded, so Metrics is not safe for concurrent use.
type Metrics struct {
	keyCount    uint64
	frameCount  uint64
	frameTotal  time.Duration
	frameMax    time.Duration
	saveCount   uint64
	failedSaves uint64

	// Start time for uptime calculation
	startTime time.Time
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	return &Metrics{
		startTime: time.Now(),
	}
}

// RecordKey records one key read from the terminal.
func (m *Metrics) RecordKey() {
	m.keyCount++
}

// RecordFrame records frame timing.
func (m *Metrics) RecordFrame(duration time.Duration) {
	m.frameCount++
	m.frameTotal += duration
	m.frameMax = max(m.frameMax, duration)
}

// RecordSave records a save attempt.
func (m *Metrics) RecordSave(ok bool) {
	if ok {
		m.saveCount++
		return
	}
	m.failedSaves++
}

// Snapshot returns a snapshot of current metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	var avg time.Duration
	if m.frameCount > 0 {
		avg = m.frameTotal / time.Duration(m.frameCount)
	}
	return MetricsSnapshot{
		Uptime:       time.Since(m.startTime),
		KeyCount:     m.keyCount,
		FrameCount:   m.frameCount,
		AvgFrameTime: avg,
		MaxFrameTime: m.frameMax,
		SaveCount:    m.saveCount,
		FailedSaves:  m.failedSaves,
	}
}

// MetricsSnapshot is a point-in-time view of metrics.
type MetricsSnapshot struct {
	Uptime       time.Duration
	KeyCount     uint64
	FrameCount   uint64
	AvgFrameTime time.Duration
	MaxFrameTime time.Duration
	SaveCount    uint64
	FailedSaves  uint64
}

// Fields returns the snapshot as log fields.
func (s MetricsSnapshot) Fields() map[string]any {
	return map[string]any{
		"uptime":      s.Uptime.String(),
		"keys":        s.KeyCount,
		"frames":      s.FrameCount,
		"avgFrame":    s.AvgFrameTime.String(),
		"maxFrame":    s.MaxFrameTime.String(),
		"saves":       s.SaveCount,
		"failedSaves": s.FailedSaves,
	}
}

// Timer provides a simple way to measure elapsed time.
type Timer struct {
	start time.Time
}

// StartTimer creates a new timer.
func StartTimer() *Timer {
	return &Timer{start: time.Now()}
}

// Elapsed returns the elapsed time since the timer started.
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}
