// Package matrix: Square — a row-major float64 n×n matrix with basic algebra.
package matrix

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for matrix operations. Match with errors.Is; call-site
// context is added by wrapping, never by new error kinds.
var (
	// ErrInvalidDimension indicates a requested dimension that is not positive.
	ErrInvalidDimension = errors.New("matrix: dimension must be > 0")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	// Public indexers return this, they never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates operands of differing dimensions.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")
)

// squareErrorf wraps an underlying sentinel with Square method context.
func squareErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Square.%s(%d,%d): %w", method, row, col, err)
}

// Square is a row-major n×n matrix of float64 values. The dimension is fixed
// at construction; data holds n*n elements in row-major order.
type Square struct {
	n    int       // dimension
	data []float64 // flat backing storage, length == n*n
}

// NewSquare creates an n×n Square initialized to zeros.
// Returns ErrInvalidDimension when n ≤ 0.
// Complexity: O(n²) time and memory.
func NewSquare(n int) (*Square, error) {
	if n <= 0 {
		return nil, ErrInvalidDimension
	}

	return &Square{n: n, data: make([]float64, n*n)}, nil
}

// Identity creates the n×n identity matrix.
// Complexity: O(n²).
func Identity(n int) (*Square, error) {
	m, err := NewSquare(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// N returns the matrix dimension.
// Complexity: O(1).
func (m *Square) N() int { return m.n }

// indexOf computes the flat index for (row, col) or reports ErrOutOfRange.
// Complexity: O(1).
func (m *Square) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		return 0, squareErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.n + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Square) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set stores v at (row, col).
// Complexity: O(1).
func (m *Square) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Add returns the element-wise sum m + o as a new matrix.
// Returns ErrDimensionMismatch when dimensions differ; operands are never
// modified.
// Complexity: O(n²).
func (m *Square) Add(o *Square) (*Square, error) {
	if m.n != o.n {
		return nil, ErrDimensionMismatch
	}

	out := &Square{n: m.n, data: make([]float64, len(m.data))}
	for i, v := range m.data {
		out.data[i] = v + o.data[i]
	}

	return out, nil
}

// Mul returns the matrix product m × o as a new matrix.
// Returns ErrDimensionMismatch when dimensions differ.
// Complexity: O(n³).
func (m *Square) Mul(o *Square) (*Square, error) {
	if m.n != o.n {
		return nil, ErrDimensionMismatch
	}

	n := m.n
	out := &Square{n: n, data: make([]float64, n*n)}
	for i := 0; i < n; i++ {
		for k := 0; k < n; k++ {
			// Row-major friendly loop order: accumulate row i of the result
			// from row k of o scaled by m[i][k].
			aik := m.data[i*n+k]
			if aik == 0 {
				continue
			}
			for j := 0; j < n; j++ {
				out.data[i*n+j] += aik * o.data[k*n+j]
			}
		}
	}

	return out, nil
}

// Transpose returns a new matrix with rows and columns swapped.
// Complexity: O(n²).
func (m *Square) Transpose() *Square {
	n := m.n
	out := &Square{n: n, data: make([]float64, n*n)}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out.data[j*n+i] = m.data[i*n+j]
		}
	}

	return out
}

// String renders the matrix one row per line. Diagnostic output only.
// Complexity: O(n²).
func (m *Square) String() string {
	var sb strings.Builder
	for i := 0; i < m.n; i++ {
		for j := 0; j < m.n; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.n+j])
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
