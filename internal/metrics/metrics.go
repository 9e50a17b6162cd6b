package metrics

import (
	"sync/atomic"
	"time"
)

type Counter struct {
	value uint64
}

func (c *Counter) Inc() {
	atomic.AddUint64(&c.value, 1)
}

func (c *Counter) Add(n uint64) {
	atomic.AddUint64(&c.value, n)
}

func (c *Counter) Load() uint64 {
	return atomic.LoadUint64(&c.value)
}

type Timer struct {
	start time.Time
}

func StartTimer() *Timer {
	return &Timer{start: time.Now()}
}

func (t *Timer) Duration() time.Duration {
	return time.Since(t.start)
}

// ClientStats counts what the transport client did since start.
type ClientStats struct {
	Requests     Counter
	Failures     Counter
	Unauthorized Counter
	Deduplicated Counter
	// total request latency in microseconds
	latencyMicros Counter
}

func (s *ClientStats) Observe(d time.Duration) {
	s.latencyMicros.Add(uint64(d.Microseconds()))
}

// Snapshot is a point-in-time copy of ClientStats.
type Snapshot struct {
	Requests       uint64
	Failures       uint64
	Unauthorized   uint64
	Deduplicated   uint64
	AverageLatency time.Duration
}

func (s *ClientStats) Snapshot() Snapshot {
	snap := Snapshot{
		Requests:     s.Requests.Load(),
		Failures:     s.Failures.Load(),
		Unauthorized: s.Unauthorized.Load(),
		Deduplicated: s.Deduplicated.Load(),
	}
	if snap.Requests > 0 {
		snap.AverageLatency = time.Duration(s.latencyMicros.Load()/snap.Requests) * time.Microsecond
	}
	return snap
}
