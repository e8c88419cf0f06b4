// Package chunked implements a hybrid sequential container: elements live in
// fixed-capacity array blocks ("chunks") linked in a singly-linked chain.
// Within a chunk access is array-like; across chunks the structure grows and
// shrinks like a linked list, one block at a time, without large copies.
//
// Shape:
//
//	head ──▶ [16 slots, used=16] ──▶ [16 slots, used=16] ──▶ [16 slots, used=5]
//
// The chain obeys a packing invariant: chunks fill front-to-back, so at most
// one chunk is partially occupied and every chunk before it is full. Add
// always appends at the logical end; Remove closes the gap inside its chunk,
// then cascades — borrowing the first element of each following chunk to
// refill the freed tail slot — and finally prunes the trailing chunk the
// cascade drained. The invariant therefore holds again the moment any public
// call returns.
//
// Core guarantees:
//
//   - Len() == sum of per-chunk occupancy at all times
//   - Capacity() == ChunkCount() × ChunkSize at all times
//   - Remove(i) shifts every element after i down by exactly one
//   - a failed Get/First/Remove leaves the list untouched
//
// The list is single-threaded: no locking is performed, and concurrent
// mutation is undefined. Guard access at a higher layer if you need sharing.
//
// Errors:
//
//	ErrOutOfRange - index negative or ≥ Len(), from Get and Remove.
//	ErrEmptyList  - First called on a zero-length list.
package chunked
