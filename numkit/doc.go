// Package numkit bundles small numeric helpers consumed as plain values:
// bit-level parity predicates, wholeness checks for floats, a couple of
// constant tables with their membership tests, and a memoized Fibonacci
// evaluator.
//
// Everything here is stateless except the Fib memo, which only ever caches
// results of a pure function and is therefore safe to reuse across calls
// (though not across goroutines).
//
// Errors:
//
//	ErrNegativeIndex - Fibonacci requested for n < 0.
//	ErrOverflow      - Fibonacci result does not fit in uint64 (n > 93).
package numkit
