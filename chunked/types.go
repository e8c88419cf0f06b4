// Package chunked: central constants, sentinel errors and the chunk leaf type.
package chunked

import "errors"

// ChunkSize is the fixed slot capacity of every chunk. It is a power of two,
// so index resolution (index/ChunkSize, index%ChunkSize) stays branch-free.
const ChunkSize = 16

// Sentinel errors for list operations. Match with errors.Is.
var (
	// ErrOutOfRange indicates an index below zero or at/after Len().
	ErrOutOfRange = errors.New("chunked: index out of range")

	// ErrEmptyList indicates First was called on a zero-length list.
	ErrEmptyList = errors.New("chunked: list is empty")
)

// chunk is a fixed-capacity slot array with an occupancy counter and an
// exclusively-owned link to the next chunk in the chain.
//
// Slots [0, used) hold live elements in logical order; slots [used, ChunkSize)
// are dead storage. used never exceeds ChunkSize; callers maintain that bound.
type chunk[T any] struct {
	slots [ChunkSize]T // fixed backing storage
	used  int          // count of live slots, 0 ≤ used ≤ ChunkSize
	next  *chunk[T]    // successor chunk, nil at the tail
}

// hasAvailable reports whether the chunk can take one more element.
// Complexity: O(1).
func (c *chunk[T]) hasAvailable() bool { return c.used < ChunkSize }

// isEmpty reports whether the chunk holds no live elements.
// Complexity: O(1).
func (c *chunk[T]) isEmpty() bool { return c.used == 0 }

// hasNext reports whether a successor chunk is linked.
// Complexity: O(1).
func (c *chunk[T]) hasNext() bool { return c.next != nil }

// shiftLeftFrom closes the logical hole at start by copying each element one
// slot to the left over [start, used-1), then decrements used. The vacated
// slot is zeroed so pointer-carrying elements do not pin garbage.
//
// Callers guarantee 0 ≤ start < used; no bounds check is performed here.
// Complexity: O(used-start).
func (c *chunk[T]) shiftLeftFrom(start int) {
	for i := start; i < c.used-1; i++ {
		c.slots[i] = c.slots[i+1]
	}
	c.used--

	// Drop the stale copy left behind the new tail.
	var zero T
	c.slots[c.used] = zero
}
