package bayer

import "math/bits"

// interleaveAndReverseBits writes the bits of a and b, alternating a, b, a, b…,
// into the output from bit highestOutputBit downward. Input bits are consumed
// from bit 0 upward, so the result is the bit-reversed interleaving of a and b.
// The loop ends once the output cursor has shifted past bit 0; a shift past
// the word width yields zero, so any highestOutputBit is well-defined.
// Complexity: O(highestOutputBit).
func interleaveAndReverseBits(a, b uint, highestOutputBit uint) uint {
	var acc uint
	out := uint(1) << highestOutputBit
	// at most the lower half of the input bits are ever read
	for in := uint(1); ; in <<= 1 {
		if a&in != 0 {
			acc |= out
		}
		out >>= 1

		if b&in != 0 {
			acc |= out
		}
		out >>= 1

		if out == 0 {
			return acc
		}
	}
}

// ValueAt returns the raw Bayer threshold for cell (i, j) of a matrix whose
// values span highestOutputBit+1 bits.
//
// Threshold map: interleave the bits of (i XOR j) and i, most significant
// output bit first. This reproduces the recursive Bayer ordering without
// recursion.
//
// Example:
//
//	ValueAt(0, 1, 1) == 2
//	ValueAt(1, 0, 1) == 3
func ValueAt(i, j uint, highestOutputBit uint) uint {
	return interleaveAndReverseBits(i^j, i, highestOutputBit)
}

// HighestOutputBit returns the position of the most significant bit written
// by ValueAt for a rows×cols matrix:
//
//	max(⌊log2(2·rows−1)⌋, ⌊log2(2·cols−1)⌋)·2 − 1, floored at 0.
//
// ⌊log2(2n−1)⌋ is ⌈log2 n⌉, so a side is effectively rounded up to the next
// power of two. Non-positive sides yield 0.
func HighestOutputBit(rows, cols int) uint {
	side := max(rows, cols)
	if side < 1 {
		return 0
	}
	sideBits := uint(bits.Len(uint(side)<<1-1) - 1)
	if sideBits == 0 {
		return 0
	}

	return sideBits<<1 - 1
}
