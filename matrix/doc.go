// Package matrix provides two square-matrix containers: Square, a float64
// n×n matrix with a little algebra (Add, Mul, Transpose, Identity), and
// Grid, a generic n×n storage container with no arithmetic at all.
//
// Both fix their dimension at construction and store elements row-major in a
// single flat slice for cache friendliness. Public indexers return sentinel
// errors instead of panicking; algorithms validate shapes before touching
// storage, so a failed call never leaves a half-written matrix.
//
// Errors:
//
//	ErrInvalidDimension  - requested dimension is not positive.
//	ErrOutOfRange        - row or column index outside [0, n).
//	ErrDimensionMismatch - operand dimensions differ.
package matrix
