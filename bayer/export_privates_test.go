// SPDX-License-Identifier: MIT

package bayer

// Test bridge (white-box): exposes unexported kernels and constants to
// package bayer_test only. Keep it in sync with the private names it wraps.

// RangeChecksEnabled reports whether New asserts element width in this build.
const RangeChecksEnabled = rangeChecks

// PanicZeroSize and PanicTooLarge are the panic values of New.
const (
	PanicZeroSize = panicZeroSize
	PanicTooLarge = panicTooLarge
)

// InterleaveAndReverseBits_TestOnly wraps interleaveAndReverseBits.
func InterleaveAndReverseBits_TestOnly(a, b, highestOutputBit uint) uint {
	return interleaveAndReverseBits(a, b, highestOutputBit)
}

// FillUnchecked_TestOnly builds a matrix with the width assertion disabled,
// exposing the truncating narrowing regardless of build tags.
func FillUnchecked_TestOnly[T uint8 | uint16](rows, cols int) Matrix[T] {
	m, _ := fill[T](rows, cols, HighestOutputBit(rows, cols), false)

	return m
}
