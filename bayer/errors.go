// SPDX-License-Identifier: MIT
// Package bayer: sentinel error set.
// Build returns these (wrapped with context) and tests match them via
// errors.Is. New panics instead, using the panic* messages below; a zero-size
// or too-narrow matrix is a caller contract violation, not a runtime state.

package bayer

import (
	"errors"
	"fmt"
)

var (
	// ErrZeroSize is returned when rows < 1 or cols < 1.
	ErrZeroSize = errors.New("bayer: cannot generate a zero-size matrix")

	// ErrTooLarge is returned when a side needs more output bits than a uint holds.
	ErrTooLarge = errors.New("bayer: dimensions exceed native word width")

	// ErrElementTooNarrow is returned when a computed value does not fit T.
	ErrElementTooNarrow = errors.New("bayer: element type too small to hold matrix values")

	// ErrOutOfRange indicates a row or column index outside the matrix.
	ErrOutOfRange = errors.New("bayer: index out of range")
)

// Panic messages (no magic strings).
const (
	panicZeroSize     = "bayer: cannot generate a zero-size Bayer dithering matrix"
	panicTooLarge     = "bayer: Bayer dithering matrix dimensions exceed native word width"
	panicTooNarrowFmt = "bayer: element type too small for Bayer matrix values (value %d at (%d,%d), max %d)"
)

// buildErrorf wraps err with the requested shape.
func buildErrorf(rows, cols int, err error) error {
	return fmt.Errorf("Build(%d,%d): %w", rows, cols, err)
}
