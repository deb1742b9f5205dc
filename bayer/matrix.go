// SPDX-License-Identifier: MIT

// Package bayer: Matrix is a concrete, row-major threshold map storing its
// cells in a flat slice. It has no setters; once built it never changes, so
// copies of a Matrix value may share the buffer safely.
package bayer

import (
	"fmt"
	"math/bits"
	"strings"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Matrix is an immutable rows×cols grid of Bayer thresholds.
// The zero Matrix is empty: Rows, Cols and Len report 0.
type Matrix[T constraints.Unsigned] struct {
	rows, cols int  // dimensions
	rowMask    int  // rows-1 if rows is a power of two, else -1
	colMask    int  // cols-1 if cols is a power of two, else -1
	spanBits   uint // HighestOutputBit+1; values lie in [0, 2^spanBits)
	data       []T  // flat backing storage, length == rows*cols
}

// newMatrix wraps data (already row-major, len rows*cols) without copying.
func newMatrix[T constraints.Unsigned](rows, cols int, data []T) Matrix[T] {
	return Matrix[T]{
		rows:     rows,
		cols:     cols,
		rowMask:  powerOfTwoMask(rows),
		colMask:  powerOfTwoMask(cols),
		spanBits: HighestOutputBit(rows, cols) + 1,
		data:     data,
	}
}

// powerOfTwoMask returns n-1 when n is a power of two, -1 otherwise.
func powerOfTwoMask(n int) int {
	if n > 0 && n&(n-1) == 0 {
		return n - 1
	}

	return -1
}

// Rows returns the number of rows.
func (m Matrix[T]) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m Matrix[T]) Cols() int { return m.cols }

// Len returns rows·cols, the number of threshold levels.
func (m Matrix[T]) Len() int { return len(m.data) }

// At returns the cell at (row, col).
// Returns ErrOutOfRange if the index lies outside the matrix.
// Complexity: O(1).
func (m Matrix[T]) At(row, col int) (T, error) {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return 0, fmt.Errorf("Matrix.At(%d,%d): %w", row, col, ErrOutOfRange)
	}

	return m.data[row*m.cols+col], nil
}

// Tile returns the threshold for image pixel (x, y) when the matrix is tiled
// over the plane: cell (y mod Rows, x mod Cols), wrapping negative
// coordinates as well. Power-of-two sides use a bitmask instead of a division.
// Tile on the zero Matrix returns 0.
// Complexity: O(1).
func (m Matrix[T]) Tile(x, y int) T {
	if len(m.data) == 0 {
		return 0
	}

	return m.data[wrap(y, m.rows, m.rowMask)*m.cols+wrap(x, m.cols, m.colMask)]
}

// wrap reduces v into [0, n).
func wrap(v, n, mask int) int {
	if mask >= 0 {
		return v & mask
	}
	v %= n
	if v < 0 {
		v += n
	}

	return v
}

// Row returns a copy of row i, or nil if i is out of range.
func (m Matrix[T]) Row(i int) []T {
	if i < 0 || i >= m.rows {
		return nil
	}

	return slices.Clone(m.data[i*m.cols : (i+1)*m.cols])
}

// Slices returns the matrix as freshly allocated nested row slices.
func (m Matrix[T]) Slices() [][]T {
	out := make([][]T, m.rows)
	for i := range out {
		out[i] = m.Row(i)
	}

	return out
}

// Max returns the largest cell value (0 for the zero Matrix).
func (m Matrix[T]) Max() T {
	if len(m.data) == 0 {
		return 0
	}

	return slices.Max(m.data)
}

// Scaled maps every cell v to ⌊v·levels / 2^(HighestOutputBit+1)⌋, in
// row-major order. The divisor is the value span of the matrix (Len() for a
// square power-of-two matrix), so results stay below levels for any shape.
// With levels=256 a 16×16 matrix scales to its own raw values.
func (m Matrix[T]) Scaled(levels uint32) []uint32 {
	out := make([]uint32, len(m.data))
	s := m.spanBits
	for k, v := range m.data {
		hi, lo := bits.Mul64(uint64(v), uint64(levels))
		if s >= 64 {
			out[k] = uint32(hi >> (s - 64))
			continue
		}
		out[k] = uint32(lo>>s | hi<<(64-s))
	}

	return out
}

// Equal reports whether m and other have the same shape and cells.
func (m Matrix[T]) Equal(other Matrix[T]) bool {
	return m.rows == other.rows && m.cols == other.cols && slices.Equal(m.data, other.data)
}

// String implements fmt.Stringer: one bracketed row per line.
func (m Matrix[T]) String() string {
	var sb strings.Builder
	for i := 0; i < m.rows; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%d", m.data[i*m.cols+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
