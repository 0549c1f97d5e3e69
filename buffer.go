package pfifo

import (
	"sync"

	"go.uber.org/zap"
)

// Buffer is a bounded, priority-ordered, thread-safe buffer of
// payloads of type T. The zero value is not usable; construct with
// NewBuffer or NewBufferFromOptions.
//
// All state is guarded by a single mutex. Two condition variables
// carry the backpressure protocol: nonfull is signaled whenever
// occupancy drops below capacity, nonempty whenever it rises above
// zero. Every wait sits in a predicate re-check loop, so spurious or
// surplus wakeups are harmless.
type Buffer[T any] struct {
	mu       sync.Mutex
	nonfull  *sync.Cond
	nonempty *sync.Cond

	seq       list[T]
	capacity  int
	occupancy int
	closed    bool

	log     *zap.Logger
	metrics MetricsPolicy
}

// NewBuffer returns a Buffer holding at most capacity payloads.
// capacity must be positive.
func NewBuffer[T any](capacity int) *Buffer[T] {
	return NewBufferFromOptions[T](capacity, Options{})
}

// NewBufferFromOptions is NewBuffer with explicit Options. Zero-value
// option fields are replaced with defaults.
func NewBufferFromOptions[T any](capacity int, opts Options) *Buffer[T] {
	if capacity <= 0 {
		panic("pfifo: capacity must be positive")
	}
	opts.FillDefaults()

	b := &Buffer[T]{
		capacity: capacity,
		log:      opts.Log,
		metrics:  opts.Metrics,
	}
	b.seq.init()
	b.nonfull = sync.NewCond(&b.mu)
	b.nonempty = sync.NewCond(&b.mu)
	return b
}

// Push inserts v at the position its priority demands, blocking while
// the buffer is full. It returns ErrClosed if the buffer is closed
// before or while waiting.
func (b *Buffer[T]) Push(v T, prio int) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return ErrClosed
	}
	for b.occupancy == b.capacity {
		statPushWait()
		b.nonfull.Wait()
		if b.closed {
			return ErrClosed
		}
	}

	b.pushLocked(v, prio)
	return nil
}

// TryPush is the non-blocking Push. It fails with ErrWouldBlock if the
// buffer lock is contended and with ErrFull if the buffer is at
// capacity; in both cases the buffer is left unchanged.
func (b *Buffer[T]) TryPush(v T, prio int) error {
	if !b.mu.TryLock() {
		return ErrWouldBlock
	}
	defer b.mu.Unlock()

	if b.closed {
		return ErrClosed
	}
	if b.occupancy == b.capacity {
		return ErrFull
	}

	b.pushLocked(v, prio)
	return nil
}

func (b *Buffer[T]) pushLocked(v T, prio int) {
	b.seq.insert(v, prio)
	b.occupancy++
	b.metrics.IncPushed()
	b.nonempty.Signal()
}

// Pull removes and returns the most urgent payload, blocking while the
// buffer is empty. It returns ErrClosed if the buffer is closed before
// or while waiting.
func (b *Buffer[T]) Pull() (T, error) {
	var zero T

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return zero, ErrClosed
	}
	for b.occupancy == 0 {
		statPullWait()
		b.nonempty.Wait()
		if b.closed {
			return zero, ErrClosed
		}
	}

	return b.pullLocked(), nil
}

// TryPull is the non-blocking Pull. It fails with ErrWouldBlock if the
// buffer lock is contended and with ErrEmpty if the buffer holds no
// payloads.
func (b *Buffer[T]) TryPull() (T, error) {
	var zero T

	if !b.mu.TryLock() {
		return zero, ErrWouldBlock
	}
	defer b.mu.Unlock()

	if b.closed {
		return zero, ErrClosed
	}
	if b.occupancy == 0 {
		return zero, ErrEmpty
	}

	return b.pullLocked(), nil
}

func (b *Buffer[T]) pullLocked() T {
	n := b.seq.removeTail()
	b.occupancy--
	b.metrics.IncPulled()
	b.nonfull.Signal()
	return n.value
}

// Len returns the number of payloads currently buffered.
func (b *Buffer[T]) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.occupancy
}

// Cap returns the fixed capacity set at construction.
func (b *Buffer[T]) Cap() int {
	return b.capacity
}
