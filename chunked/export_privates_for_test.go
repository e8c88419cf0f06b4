package chunked

// Test-only introspection hooks. This file is compiled into test binaries
// only and exposes just enough of the chain to assert structural invariants
// without widening the public API.

// ChunkUsage returns the occupancy of every chunk in chain order.
func (l *List[T]) ChunkUsage() []int {
	var usage []int
	for cur := l.head; cur != nil; cur = cur.next {
		usage = append(usage, cur.used)
	}

	return usage
}
