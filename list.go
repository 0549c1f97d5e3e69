package pfifo

// node is a single queued entry. It belongs to exactly one list from
// insertion until removal; the links are nil while detached.
type node[T any] struct {
	value T
	prio  int
	next  *node[T]
	prev  *node[T]
}

// list is a doubly linked chain delimited by a sentinel that never
// carries a payload. head is sentinel.next, tail is sentinel.prev;
// removal always takes the tail, so more urgent entries sit closer
// to the tail.
//
// The sentinel is embedded, one per list. It must never be shared
// between lists and is never counted or removed.
type list[T any] struct {
	sentinel node[T]
}

func (l *list[T]) init() {
	l.sentinel.next = &l.sentinel
	l.sentinel.prev = &l.sentinel
}

func (l *list[T]) empty() bool {
	return l.sentinel.prev == &l.sentinel
}

func (l *list[T]) insertAfter(at, n *node[T]) {
	n.next = at.next
	n.prev = at
	at.next.prev = n
	at.next = n
}

// insert links a new entry at the position its priority demands.
//
// Negative priority: append directly at the tail. The entry becomes
// the very next one removed, ahead of everything present including
// earlier negative entries — LIFO within the expedite class.
//
// Non-negative priority: scan head to tail and stop at the first
// entry with prio >= the new priority, or with a negative priority
// (the expedite cluster at the tail is an absolute bound the scan
// must not cross); insert before it. A scan that reaches the sentinel
// appends at the tail. Equal non-negative priorities therefore keep
// FIFO order: earlier insertions end up closer to the tail.
func (l *list[T]) insert(v T, prio int) {
	n := &node[T]{value: v, prio: prio}

	if prio < 0 {
		l.insertAfter(l.sentinel.prev, n)
		return
	}

	p := l.sentinel.next
	for ; p != &l.sentinel; p = p.next {
		if p.prio >= prio || p.prio < 0 {
			break
		}
	}
	l.insertAfter(p.prev, n)
}

// removeTail unlinks and returns the tail entry. Calling it on an
// empty list is a bug in the caller, not a runtime condition, and
// panics.
func (l *list[T]) removeTail() *node[T] {
	n := l.sentinel.prev
	if n == &l.sentinel {
		panic("pfifo: removeTail on empty list")
	}
	n.prev.next = n.next
	n.next.prev = n.prev
	n.next = nil
	n.prev = nil
	return n
}

// each walks head to tail. The list must not be mutated during the walk.
func (l *list[T]) each(fn func(prio int, v T)) {
	for p := l.sentinel.next; p != &l.sentinel; p = p.next {
		fn(p.prio, p.value)
	}
}
