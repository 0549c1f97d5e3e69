package pfifo

import (
	"sync/atomic"
)

// MetricsPolicy defines hooks used by the buffer to report queueing
// activity.
//
// Implementations must be safe for concurrent use. All methods are
// called with the buffer lock held and are expected to be lightweight
// and non-blocking.
type MetricsPolicy interface {

	// IncPushed increments the accepted-payloads counter.
	IncPushed()

	// IncPulled increments the delivered-payloads counter.
	IncPulled()

	// BatchAddPulled increments the delivered counter by n.
	//
	// Used when a flush removes a whole batch of payloads at once.
	BatchAddPulled(n int64)
}

// AtomicMetrics is a lock-free metrics implementation backed by atomics.
//
// Writes are optimized for hot paths.
// Reads are intended for cold-path observation.
type AtomicMetrics struct {
	// pushed is the total number of payloads accepted.
	pushed atomic.Uint64

	_ [56]byte // padding to avoid false sharing

	// pulled is the total number of payloads delivered, flushes included.
	pulled atomic.Uint64
}

// Pushed returns the total number of accepted payloads.
// Intended for cold-path observation.
func (m *AtomicMetrics) Pushed() uint64 {
	return m.pushed.Load()
}

// Pulled returns the total number of delivered payloads.
// Intended for cold-path observation.
func (m *AtomicMetrics) Pulled() uint64 {
	return m.pulled.Load()
}

// IncPushed increments the accepted-payloads counter by one.
func (m *AtomicMetrics) IncPushed() {
	m.pushed.Add(1)
}

// IncPulled increments the delivered-payloads counter by one.
func (m *AtomicMetrics) IncPulled() {
	m.pulled.Add(1)
}

// BatchAddPulled increments the delivered-payloads counter by n.
func (m *AtomicMetrics) BatchAddPulled(n int64) {
	m.pulled.Add(uint64(n))
}

//------------- NoopMetrics ----------------------------------

// NoopMetrics is a MetricsPolicy implementation that discards
// all metric updates.
//
// It can be used when metrics collection is disabled and
// zero overhead is desired.
type NoopMetrics struct{}

func (m *NoopMetrics) IncPushed()             {}
func (m *NoopMetrics) IncPulled()             {}
func (m *NoopMetrics) BatchAddPulled(n int64) {}
