package bayer

import (
	"fmt"
	"math"
	"math/bits"

	"golang.org/x/exp/constraints"
)

// New returns the rows×cols Bayer matrix with elements of type T.
//
// Stage 1 (Validate): rows and cols must be ≥ 1, the output width must fit a
// uint and rows·cols elements of T must be addressable; otherwise New panics.
// This check is never compiled out.
// Stage 2 (Prepare): derive HighestOutputBit and allocate one flat buffer.
// Stage 3 (Execute): visit rows 0..rows−1, columns 0..cols−1, computing each
// cell with ValueAt and narrowing it with T(v).
// Stage 4 (Finalize): unless built with -tags bayer_nocheck, panic if any
// value exceeds the largest T; with the tag, values truncate to the low bits.
//
// New is pure and safe for concurrent use.
// Complexity: O(rows·cols·log max(rows,cols)) time, O(rows·cols) memory.
func New[T constraints.Unsigned](rows, cols int) Matrix[T] {
	hob, err := shape[T](rows, cols)
	switch err {
	case nil:
	case ErrZeroSize:
		panic(panicZeroSize)
	default:
		panic(panicTooLarge)
	}

	m, bad := fill[T](rows, cols, hob, rangeChecks)
	if bad != nil {
		panic(fmt.Sprintf(panicTooNarrowFmt, bad.value, bad.row, bad.col, uint64(^T(0))))
	}

	return m
}

// Build is the checked variant of New for dimensions that come from user
// input. It always verifies that every value fits T, regardless of build tags.
//
// Errors (wrapped with the requested shape):
//   - ErrZeroSize         — rows < 1 or cols < 1.
//   - ErrTooLarge         — a side needs more output bits than a uint holds,
//     or rows·cols elements of T would not fit the address space.
//   - ErrElementTooNarrow — some value exceeds the largest T.
func Build[T constraints.Unsigned](rows, cols int) (Matrix[T], error) {
	hob, err := shape[T](rows, cols)
	if err != nil {
		return Matrix[T]{}, buildErrorf(rows, cols, err)
	}

	m, bad := fill[T](rows, cols, hob, true)
	if bad != nil {
		return Matrix[T]{}, fmt.Errorf("%w: value %d at (%d,%d)",
			buildErrorf(rows, cols, ErrElementTooNarrow), bad.value, bad.row, bad.col)
	}

	return m, nil
}

// Generate returns New[T](rows, cols) as nested row slices.
// The result shares nothing with any other matrix.
func Generate[T constraints.Unsigned](rows, cols int) [][]T {
	return New[T](rows, cols).Slices()
}

// shape validates a rows×cols request for element type T and returns its
// HighestOutputBit. It returns ErrZeroSize or ErrTooLarge unwrapped.
func shape[T constraints.Unsigned](rows, cols int) (uint, error) {
	if rows < 1 || cols < 1 {
		return 0, ErrZeroSize
	}
	hob := HighestOutputBit(rows, cols)
	if hob >= bits.UintSize {
		return 0, ErrTooLarge
	}
	size := max(1, bits.Len64(uint64(^T(0)))/8) // bytes per element
	if rows > math.MaxInt/size/cols {
		return 0, ErrTooLarge
	}

	return hob, nil
}

// overflow records the first cell whose value did not fit T.
type overflow struct {
	row, col int
	value    uint
}

// fill populates a rows×cols matrix in row-major order. When check is set it
// stops at the first value above ^T(0) and reports it. The second cell in
// row-major order holds 1<<hob, so a too-narrow T is usually refused there,
// before the buffer is allocated.
func fill[T constraints.Unsigned](rows, cols int, hob uint, check bool) (Matrix[T], *overflow) {
	limit := uint64(^T(0))
	if check && rows*cols > 1 {
		i, j := 0, 1
		if cols == 1 {
			i, j = 1, 0
		}
		if v := ValueAt(uint(i), uint(j), hob); uint64(v) > limit {
			return Matrix[T]{}, &overflow{row: i, col: j, value: v}
		}
	}
	data := make([]T, rows*cols)

	k := 0
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v := ValueAt(uint(i), uint(j), hob)
			if check && uint64(v) > limit {
				return Matrix[T]{}, &overflow{row: i, col: j, value: v}
			}
			data[k] = T(v) // keeps the low bits of v
			k++
		}
	}

	return newMatrix(rows, cols, data), nil
}
