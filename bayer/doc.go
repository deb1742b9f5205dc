// Package bayer computes ordered-dithering threshold matrices (Bayer matrices)
// of arbitrary dimensions for any unsigned element type.
//
// 🚀 What is a Bayer matrix?
//
//	A threshold map for ordered dithering: every cell holds a distinct rank
//	in 0..N·M−1, laid out so that consecutive ranks are spread as far apart
//	as possible. Tiling the map over an image and comparing each pixel with
//	the cell under it turns grayscale into a small palette (usually black
//	and white) while keeping the perceived luminance.
//
//	    2×2            4×4
//	   ┌─────┐   ┌─────────────┐
//	   │ 0  2│   │ 0  8  2 10 │
//	   │ 3  1│   │12  4 14  6 │
//	   └─────┘   │ 3 11  1  9 │
//	             │15  7 13  5 │
//	             └─────────────┘
//
// ✨ How it is built:
//   - ValueAt interleaves the bits of (row XOR col) and row, most significant
//     output bit first. This is the closed form of the recursive definition
//     M₂ₙ = [[4Mₙ, 4Mₙ+2], [4Mₙ+3, 4Mₙ+1]].
//   - HighestOutputBit derives the output width from the larger side.
//   - New fills a row-major Matrix[T] and narrows each value with T(v).
//
// ⚙️ Usage:
//
//	m := bayer.New[uint8](16, 16) // panics on zero size or a too-narrow T
//	t := m.Tile(x, y)             // wraps around for tiling over an image
//
//	// user-supplied dimensions: checked variant
//	m, err := bayer.Build[uint16](rows, cols)
//	if errors.Is(err, bayer.ErrElementTooNarrow) { ... }
//
// Range checks:
//
//	New asserts that every value fits T. Building with -tags bayer_nocheck
//	compiles the assertion out; values then truncate to the low bits of T.
//	Build always checks. Zero-size rejection is never compiled out.
//
// Non-power-of-two sides:
//
//	An N×M matrix equals the top-left N×M crop of the K×K matrix, where K is
//	the smallest power of two ≥ max(N, M). Values stay distinct but are
//	not contiguous unless N = M = K.
//
// Complexity:
//
//	Time:   O(N·M·log max(N,M))
//	Memory: O(N·M), one buffer allocated once.
package bayer
