// Package numkit: parity and wholeness predicates plus constant tables.
package numkit

import "math"

// Parity labels an integer as even or odd.
type Parity int

const (
	// EvenParity marks integers with a clear low bit.
	EvenParity Parity = iota
	// OddParity marks integers with a set low bit.
	OddParity
)

// String returns "even" or "odd".
func (p Parity) String() string {
	if p == EvenParity {
		return "even"
	}

	return "odd"
}

// Primes16 lists the first sixteen prime numbers.
var Primes16 = [16]int{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53}

// PowersOfTwo lists 2^0 through 2^15.
var PowersOfTwo = [16]int{1, 2, 4, 8, 16, 32, 64, 128, 256, 512, 1024, 2048, 4096, 8192, 16384, 32768}

// IsEven reports whether n is even, via the low bit.
// Complexity: O(1).
func IsEven(n int) bool { return n&1 == 0 }

// IsOdd reports whether n is odd, via the low bit.
// Complexity: O(1).
func IsOdd(n int) bool { return n&1 == 1 }

// ParityOf classifies n as EvenParity or OddParity.
// Complexity: O(1).
func ParityOf(n int) Parity {
	if IsEven(n) {
		return EvenParity
	}

	return OddParity
}

// IsWhole reports whether x is a finite number with no fractional part.
// NaN and ±Inf are never whole.
// Complexity: O(1).
func IsWhole(x float64) bool {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return false
	}

	return x == math.Trunc(x)
}

// IsSmallPrime reports whether n appears in the Primes16 table.
// Complexity: O(len(Primes16)).
func IsSmallPrime(n int) bool {
	for _, p := range Primes16 {
		if n == p {
			return true
		}
	}

	return false
}

// IsPowerOfTwo reports whether n is a positive power of two, via the
// classic n&(n-1) bit trick.
// Complexity: O(1).
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
