// Package blockseq is a small in-memory toolkit built around one central
// container — a chunked sequential list — plus the handful of plain value
// helpers that grew up alongside it.
//
// 🚀 What is blockseq?
//
//	A compact, single-threaded library that brings together:
//		• chunked/  — the core: fixed-capacity array blocks linked in a chain,
//		  giving array-like access inside a block and list-like growth without
//		  large copies
//		• numkit/   — parity & wholeness predicates, small constant tables,
//		  and a memoized Fibonacci evaluator
//		• cnum/     — an immutable complex-number value type
//		• matrix/   — square matrices: a float64 algebra type and a generic
//		  storage grid
//		• digraph/  — a minimal directed-graph adjacency structure
//		• timing/   — a monotonic stopwatch for measuring operations
//
// ✨ Why choose blockseq?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Predictable – sentinel errors everywhere, no panics on user input
//   - Pure Go – no cgo, no hidden deps
//
// The chunked list is where the real machinery lives: every removal runs a
// cascade that refills the freed slot from the following block and prunes the
// chain's empty tail, so blocks stay packed front-to-back at all times. The
// remaining packages are stateless collaborators consumed as plain values.
//
//	go get github.com/katalvlaran/blockseq/chunked
package blockseq
