// Package pfifo provides a bounded, priority-ordered, thread-safe
// buffer for handing payloads between producer and consumer
// goroutines.
//
// Ordering model
//
// Every payload carries a signed priority. Consumers always receive
// the most urgent payload first:
//
//   - Negative priorities mean "expedite". They are delivered before
//     every non-negative payload, and among themselves in LIFO order:
//     the most recently expedited payload is delivered first.
//
//   - Non-negative priorities are delivered grouped by descending
//     priority, and within a priority in FIFO order: the earliest
//     submission of a given priority is delivered first.
//
// The asymmetry between the two classes is deliberate; both orders
// fall out of a single insertion rule over one doubly linked chain.
//
// Synchronization model
//
// A Buffer has a fixed capacity set at construction. Push blocks while
// the buffer is full, Pull blocks while it is empty. TryPush and
// TryPull never block: they attempt the lock once and fail with
// ErrWouldBlock under contention, or with ErrFull/ErrEmpty when the
// buffer cannot accept or supply a payload immediately.
//
// Flush atomically drains every queued payload under a single lock
// hold, returning them in the exact order a sequence of Pull calls
// would have produced. Close flushes the buffer, returns whatever was
// still queued, and permanently invalidates the buffer; all later
// operations return ErrClosed.
//
// The buffer never inspects or retains payloads. A payload is moved in
// by value at Push and moved out by value at Pull; the consumer owns
// it fully from the moment Pull returns.
//
// Intended use cases
//
// pfifo suits the classic bounded producer/consumer handoff where
// urgency matters: command queues with an expedited control lane,
// work feeds where late-arriving urgent items must overtake a
// backlog, shutdown paths that need to reclaim queued payloads.
//
// It is not a scheduler: there is no aging, no starvation prevention
// beyond the ordering rule, and no fairness guarantee about which of
// several blocked goroutines wakes first.
package pfifo
