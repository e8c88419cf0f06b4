// Package cnum provides an immutable complex-number value type with named
// arithmetic operations. Values are plain structs passed by copy; every
// operation returns a fresh value and never mutates its operands, so a
// Complex can be shared freely without aliasing surprises.
//
// The stdlib complex128 covers the same arithmetic; this type exists for
// call sites that want explicit, discoverable operation names and an
// epsilon-aware equality, mirroring the numeric policy used elsewhere in
// this module.
package cnum

import (
	"fmt"
	"math"
)

// Complex is an immutable complex number with float64 parts.
type Complex struct {
	re, im float64
}

// NewComplex builds a value from its real and imaginary parts.
// Complexity: O(1).
func NewComplex(re, im float64) Complex {
	return Complex{re: re, im: im}
}

// Re returns the real part.
func (z Complex) Re() float64 { return z.re }

// Im returns the imaginary part.
func (z Complex) Im() float64 { return z.im }

// Add returns z + w.
// Complexity: O(1).
func (z Complex) Add(w Complex) Complex {
	return Complex{re: z.re + w.re, im: z.im + w.im}
}

// Sub returns z - w.
// Complexity: O(1).
func (z Complex) Sub(w Complex) Complex {
	return Complex{re: z.re - w.re, im: z.im - w.im}
}

// Mul returns z * w by the (a+bi)(c+di) expansion.
// Complexity: O(1).
func (z Complex) Mul(w Complex) Complex {
	return Complex{
		re: z.re*w.re - z.im*w.im,
		im: z.re*w.im + z.im*w.re,
	}
}

// Conj returns the complex conjugate of z.
// Complexity: O(1).
func (z Complex) Conj() Complex {
	return Complex{re: z.re, im: -z.im}
}

// Abs returns the modulus |z|, computed with math.Hypot to avoid
// intermediate overflow.
// Complexity: O(1).
func (z Complex) Abs() float64 {
	return math.Hypot(z.re, z.im)
}

// Equal reports whether z and w coincide within eps on both parts.
// Complexity: O(1).
func (z Complex) Equal(w Complex, eps float64) bool {
	return math.Abs(z.re-w.re) <= eps && math.Abs(z.im-w.im) <= eps
}

// String renders the value as "a+bi" / "a-bi".
func (z Complex) String() string {
	if z.im < 0 {
		return fmt.Sprintf("%g-%gi", z.re, -z.im)
	}

	return fmt.Sprintf("%g+%gi", z.re, z.im)
}
