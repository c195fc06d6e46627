// SPDX-License-Identifier: MIT

package table

import (
	"errors"
	"fmt"
)

// Unassigned marks a cell that no traversal wrote. Valid indices are >= 0.
const Unassigned = -999

var (
	// ErrBadShape is returned for a negative grid dimension.
	ErrBadShape = errors.New("table: invalid shape")

	// ErrOutOfRange indicates an index outside the grid.
	ErrOutOfRange = errors.New("table: index out of range")

	// ErrNegativeValue indicates an attempt to store a negative index.
	ErrNegativeValue = errors.New("table: stored index must be >= 0")
)

const (
	ctxSquareSet = "Square.Set"
	ctxCubeSet   = "Cube.Set"
)

// Square is an n×n grid of indices.
type Square struct {
	n    int
	data []int // len == n*n, row-major
}

// NewSquare allocates an n×n grid with every cell Unassigned.
// Complexity: O(n²) time and memory.
func NewSquare(n int) (*Square, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrBadShape, n)
	}

	return &Square{n: n, data: filled(n * n)}, nil
}

// Dim returns the edge length n.
func (s *Square) Dim() int { return s.n }

func (s *Square) offset(i, j int) (int, bool) {
	if i < 0 || i >= s.n || j < 0 || j >= s.n {
		return 0, false
	}

	return i*s.n + j, true
}

// Lookup returns the index stored at (i, j). ok is false when the cell is
// out of range or Unassigned.
func (s *Square) Lookup(i, j int) (int, bool) {
	off, ok := s.offset(i, j)
	if !ok || s.data[off] == Unassigned {
		return Unassigned, false
	}

	return s.data[off], true
}

// Raw returns the stored value, or Unassigned for out-of-range coordinates.
func (s *Square) Raw(i, j int) int {
	v, _ := s.Lookup(i, j)

	return v
}

// Set stores v at (i, j).
func (s *Square) Set(i, j, v int) error {
	off, ok := s.offset(i, j)
	if !ok {
		return fmt.Errorf("%s(%d,%d): %w", ctxSquareSet, i, j, ErrOutOfRange)
	}
	if v < 0 {
		return fmt.Errorf("%s(%d,%d): %w", ctxSquareSet, i, j, ErrNegativeValue)
	}
	s.data[off] = v

	return nil
}

// Assigned counts the cells holding an index.
func (s *Square) Assigned() int { return countAssigned(s.data) }

// Cube is an n×n×n grid of indices.
type Cube struct {
	n    int
	data []int // len == n*n*n, row-major
}

// NewCube allocates an n×n×n grid with every cell Unassigned.
// Complexity: O(n³) time and memory.
func NewCube(n int) (*Cube, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrBadShape, n)
	}

	return &Cube{n: n, data: filled(n * n * n)}, nil
}

// Dim returns the edge length n.
func (c *Cube) Dim() int { return c.n }

func (c *Cube) offset(i, j, k int) (int, bool) {
	if i < 0 || i >= c.n || j < 0 || j >= c.n || k < 0 || k >= c.n {
		return 0, false
	}

	return (i*c.n+j)*c.n + k, true
}

// Lookup returns the index stored at (i, j, k). ok is false when the cell is
// out of range or Unassigned.
func (c *Cube) Lookup(i, j, k int) (int, bool) {
	off, ok := c.offset(i, j, k)
	if !ok || c.data[off] == Unassigned {
		return Unassigned, false
	}

	return c.data[off], true
}

// Raw returns the stored value, or Unassigned for out-of-range coordinates.
func (c *Cube) Raw(i, j, k int) int {
	v, _ := c.Lookup(i, j, k)

	return v
}

// Set stores v at (i, j, k).
func (c *Cube) Set(i, j, k, v int) error {
	off, ok := c.offset(i, j, k)
	if !ok {
		return fmt.Errorf("%s(%d,%d,%d): %w", ctxCubeSet, i, j, k, ErrOutOfRange)
	}
	if v < 0 {
		return fmt.Errorf("%s(%d,%d,%d): %w", ctxCubeSet, i, j, k, ErrNegativeValue)
	}
	c.data[off] = v

	return nil
}

// Assigned counts the cells holding an index.
func (c *Cube) Assigned() int { return countAssigned(c.data) }

func filled(n int) []int {
	data := make([]int, n)
	for i := range data {
		data[i] = Unassigned
	}

	return data
}

func countAssigned(data []int) int {
	n := 0
	for _, v := range data {
		if v != Unassigned {
			n++
		}
	}

	return n
}
