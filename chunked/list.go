// Package chunked: the List container — index resolution, capacity
// bookkeeping, and the add / remove algorithms over the chunk chain.
package chunked

// List is a sequential container backed by a chain of fixed-capacity chunks.
//
// The list always owns at least one chunk, even when empty. length, chunks
// and capacity are cached aggregates: length equals the sum of every chunk's
// occupancy, chunks equals the number of reachable chunks, and capacity
// equals chunks × ChunkSize. All list-level policy — where Add inserts, how
// Remove migrates elements, when trailing chunks are pruned — lives here;
// chunks themselves are pure storage.
//
// List is not safe for concurrent use.
type List[T any] struct {
	head     *chunk[T] // first chunk, never nil
	length   int       // total live elements across the chain
	chunks   int       // chunks reachable from head
	capacity int       // chunks * ChunkSize
}

// New creates an empty List holding a single empty chunk.
// Complexity: O(1).
func New[T any]() *List[T] {
	return &List[T]{
		head:     &chunk[T]{},
		chunks:   1,
		capacity: ChunkSize,
	}
}

// Len returns the number of live elements.
// Complexity: O(1).
func (l *List[T]) Len() int { return l.length }

// ChunkCount returns the number of chunks in the chain, always ≥ 1.
// Complexity: O(1).
func (l *List[T]) ChunkCount() int { return l.chunks }

// Capacity returns the total slot capacity, ChunkCount() × ChunkSize.
// Complexity: O(1).
func (l *List[T]) Capacity() int { return l.capacity }

// locate resolves a valid logical index into its owning chunk and in-chunk
// offset by walking index/ChunkSize links from the head.
// Callers validate the index first.
// Complexity: O(index/ChunkSize).
func (l *List[T]) locate(index int) (*chunk[T], int) {
	cur := l.head
	for ord := index / ChunkSize; ord > 0; ord-- {
		cur = cur.next
	}

	return cur, index % ChunkSize
}

// Get returns the element at the given logical index.
// Returns ErrOutOfRange when index < 0 or index ≥ Len(). No side effects.
// Complexity: O(index/ChunkSize).
func (l *List[T]) Get(index int) (T, error) {
	if index < 0 || index >= l.length {
		var zero T
		return zero, ErrOutOfRange
	}

	cur, offset := l.locate(index)

	return cur.slots[offset], nil
}

// First returns the element at index 0.
// Returns ErrEmptyList when the list holds no elements; this is a distinct
// condition from an out-of-range index.
// Complexity: O(1).
func (l *List[T]) First() (T, error) {
	if l.length == 0 {
		var zero T
		return zero, ErrEmptyList
	}

	return l.head.slots[0], nil
}

// Add appends v at the logical end of the list.
//
// The chain is scanned from the head for the first chunk with a free slot;
// under the packing invariant every chunk before it is full, so the scan only
// ever passes a fully-packed prefix. When no chunk has room, a new empty
// chunk is linked as the tail and the capacity counters grow by one chunk.
// Complexity: O(ChunkCount()) worst case.
func (l *List[T]) Add(v T) {
	// Find the insertion chunk: first one with room, else a fresh tail.
	cur := l.head
	for !cur.hasAvailable() {
		if !cur.hasNext() {
			cur.next = &chunk[T]{}
			l.chunks++
			l.capacity += ChunkSize
		}
		cur = cur.next
	}

	cur.slots[cur.used] = v
	cur.used++
	l.length++
}

// Remove deletes and returns the element at the given logical index, shifting
// every element after it down by one.
//
// After the in-chunk deletion the freed tail slot is refilled by a cascade:
// each successor chunk donates its first element to the chunk before it and
// closes its own gap, until an empty or absent successor stops the borrow.
// The chain is then pruned of the trailing chunk the cascade drained, which
// restores the packing invariant before the call returns.
//
// Returns ErrOutOfRange when index < 0 or index ≥ Len(); a failed call leaves
// the list untouched.
// Complexity: O(Len()) worst case.
func (l *List[T]) Remove(index int) (T, error) {
	if index < 0 || index >= l.length {
		var zero T
		return zero, ErrOutOfRange
	}

	// Delete inside the owning chunk; this leaves a one-slot deficit at the
	// chunk's tail.
	cur, offset := l.locate(index)
	removed := cur.slots[offset]
	cur.shiftLeftFrom(offset)

	// Cascade: refill the deficit from the next chunk's first element, then
	// let that chunk close its own gap and carry the deficit forward. Chunks
	// before the removal point were full and stay full, so the cascade never
	// needs to look behind.
	for cur.hasNext() && !cur.next.isEmpty() {
		cur.slots[ChunkSize-1] = cur.next.slots[0]
		cur.used++
		cur.next.shiftLeftFrom(0)
		cur = cur.next
	}

	l.prune()
	l.length--

	return removed, nil
}

// prune walks the chain from the head and cuts the link to the first empty
// successor, dropping the drained trailing chunk. At most one chunk is ever
// unlinked per removal, and the head chunk itself is never pruned.
// Complexity: O(ChunkCount()).
func (l *List[T]) prune() {
	count := 1
	for cur := l.head; cur.hasNext(); cur = cur.next {
		if cur.next.isEmpty() {
			cur.next = nil // unlink; the chunk is now collectable

			break
		}
		count++
	}

	l.chunks = count
	l.capacity = count * ChunkSize
}
