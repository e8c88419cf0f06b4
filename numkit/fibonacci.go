package numkit

import "errors"

// Sentinel errors for Fibonacci evaluation. Match with errors.Is.
var (
	// ErrNegativeIndex indicates a Fibonacci index below zero.
	ErrNegativeIndex = errors.New("numkit: negative fibonacci index")

	// ErrOverflow indicates the requested Fibonacci number exceeds uint64.
	ErrOverflow = errors.New("numkit: fibonacci overflows uint64")
)

// maxFibIndex is the largest n for which Fib(n) fits in a uint64.
const maxFibIndex = 93

// Fib is a memoized Fibonacci evaluator. Results are cached across calls, so
// repeated or ascending evaluations cost O(1) amortized per index.
//
// Not safe for concurrent use; the memo is a plain map.
type Fib struct {
	memo map[int]uint64
}

// NewFib creates an evaluator seeded with the two base cases.
// Complexity: O(1).
func NewFib() *Fib {
	return &Fib{memo: map[int]uint64{0: 0, 1: 1}}
}

// Eval returns the n-th Fibonacci number (Fib(0)=0, Fib(1)=1).
//
// Returns ErrNegativeIndex for n < 0 and ErrOverflow for n > 93; the memo is
// untouched by failed calls. Evaluation is iterative from the highest cached
// index, filling the memo as it climbs.
// Complexity: O(n) first time, O(1) memoized.
func (f *Fib) Eval(n int) (uint64, error) {
	if n < 0 {
		return 0, ErrNegativeIndex
	}
	if n > maxFibIndex {
		return 0, ErrOverflow
	}
	if v, ok := f.memo[n]; ok {
		return v, nil
	}

	// Climb from the highest contiguous cached pair up to n.
	lo, hi := f.memo[0], f.memo[1]
	i := 1
	for ; ; i++ {
		v, ok := f.memo[i+1]
		if !ok {
			break
		}
		lo, hi = hi, v
	}
	for ; i < n; i++ {
		lo, hi = hi, lo+hi
		f.memo[i+1] = hi
	}

	return f.memo[n], nil
}

// Known reports how many indices the memo currently covers.
// Complexity: O(1).
func (f *Fib) Known() int { return len(f.memo) }
