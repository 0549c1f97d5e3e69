package pfifo

import (
	"fmt"
	"strings"
)

// Dump returns a human-readable listing of the buffered payloads for
// debugging. Entries are listed head to tail, so the highest position
// number is the next payload a Pull would return. The output format is
// not part of the API and may change.
func (b *Buffer[T]) Dump() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	var sb strings.Builder
	fmt.Fprintf(&sb, "pfifo: occupancy %d/%d", b.occupancy, b.capacity)
	if b.closed {
		sb.WriteString(" (closed)")
	}
	sb.WriteByte('\n')

	i := 0
	b.seq.each(func(prio int, v T) {
		fmt.Fprintf(&sb, "  node %d: priority=%d value=%v\n", i, prio, v)
		i++
	})
	return sb.String()
}
