// Package matrix: Grid — a generic square storage container, no arithmetic.
package matrix

import "fmt"

// Grid is a generic n×n container storing elements of any type row-major in
// a flat slice. It shares the Square bounds and error contract but carries
// no algebra; it is pure fixed-shape storage.
type Grid[T any] struct {
	n    int
	data []T // flat backing storage, length == n*n
}

// NewGrid creates an n×n Grid holding zero values of T.
// Returns ErrInvalidDimension when n ≤ 0.
// Complexity: O(n²).
func NewGrid[T any](n int) (*Grid[T], error) {
	if n <= 0 {
		return nil, ErrInvalidDimension
	}

	return &Grid[T]{n: n, data: make([]T, n*n)}, nil
}

// N returns the grid dimension.
// Complexity: O(1).
func (g *Grid[T]) N() int { return g.n }

// At retrieves the element at (row, col), or ErrOutOfRange.
// Complexity: O(1).
func (g *Grid[T]) At(row, col int) (T, error) {
	if row < 0 || row >= g.n || col < 0 || col >= g.n {
		var zero T
		return zero, fmt.Errorf("Grid.At(%d,%d): %w", row, col, ErrOutOfRange)
	}

	return g.data[row*g.n+col], nil
}

// Set stores v at (row, col), or returns ErrOutOfRange.
// Complexity: O(1).
func (g *Grid[T]) Set(row, col int, v T) error {
	if row < 0 || row >= g.n || col < 0 || col >= g.n {
		return fmt.Errorf("Grid.Set(%d,%d): %w", row, col, ErrOutOfRange)
	}
	g.data[row*g.n+col] = v

	return nil
}

// Fill writes v into every cell.
// Complexity: O(n²).
func (g *Grid[T]) Fill(v T) {
	for i := range g.data {
		g.data[i] = v
	}
}
