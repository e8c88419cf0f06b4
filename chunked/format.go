package chunked

import (
	"fmt"
	"strings"
)

// String renders a human-readable dump of the chain, one chunk per line with
// its occupancy and live slot values. Diagnostic output only; the exact
// format is not a contract.
// Complexity: O(Len()).
func (l *List[T]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "chunked.List(len=%d, chunks=%d, cap=%d)\n", l.length, l.chunks, l.capacity)

	for i, cur := 0, l.head; cur != nil; i, cur = i+1, cur.next {
		fmt.Fprintf(&sb, "  #%d [%d/%d]", i, cur.used, ChunkSize)
		for s := 0; s < cur.used; s++ {
			fmt.Fprintf(&sb, " %v", cur.slots[s])
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
