package pfifo

import "go.uber.org/zap"

// Flush atomically removes every buffered payload and returns them in
// removal order: index 0 is the payload a Pull at that moment would
// have produced. Flushing an empty buffer returns an empty slice, it
// never waits for payloads to arrive. The whole drain happens under a
// single lock hold, so no concurrent Push or Pull can interleave.
func (b *Buffer[T]) Flush() ([]T, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil, ErrClosed
	}
	return b.flushLocked(), nil
}

// TryFlush is the non-blocking Flush; it fails with ErrWouldBlock if
// the buffer lock is contended.
func (b *Buffer[T]) TryFlush() ([]T, error) {
	if !b.mu.TryLock() {
		return nil, ErrWouldBlock
	}
	defer b.mu.Unlock()

	if b.closed {
		return nil, ErrClosed
	}
	return b.flushLocked(), nil
}

func (b *Buffer[T]) flushLocked() []T {
	out := make([]T, 0, b.occupancy)
	for !b.seq.empty() {
		out = append(out, b.seq.removeTail().value)
	}
	b.occupancy = 0
	b.metrics.BatchAddPulled(int64(len(out)))

	// One broadcast covers every producer the drain made room for.
	b.nonfull.Broadcast()

	b.log.Debug("buffer flushed", zap.Int("drained", len(out)))
	return out
}

// Close flushes the buffer, marks it closed, and returns the payloads
// that were still queued so the owner can dispose of them. After Close
// every operation, including a second Close, returns ErrClosed; any
// goroutine still blocked in Push or Pull is woken and receives
// ErrClosed.
func (b *Buffer[T]) Close() ([]T, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil, ErrClosed
	}

	out := b.flushLocked()
	b.closed = true
	b.nonempty.Broadcast()
	b.nonfull.Broadcast()

	b.log.Info("buffer closed", zap.Int("recovered", len(out)))
	return out, nil
}
