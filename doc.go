// Package dithermap is your toolbox for ordered dithering: Bayer threshold
// maps of any size and element type, plus the plumbing to apply them to
// grayscale images.
//
// 🚀 What is in the box?
//
//	bayer/  — the core: bit-interleaved Bayer matrices as pure values
//	          (New, Build, Generate, ValueAt, HighestOutputBit, Matrix[T])
//	dither/ — tile a matrix over an *image.Gray and threshold it in parallel
//	          (Apply, Image, ToGray, Options)
//	cmd/bayer-dither — decode an image, dither it, write a PNG
//	cmd/bayer-matrix — print a matrix as a table or a Go array literal
//
// ✨ Why a closed form?
//
//	The classic definition is recursive (M₂ₙ = [[4Mₙ, 4Mₙ+2], [4Mₙ+3, 4Mₙ+1]]).
//	bayer computes every cell directly by interleaving the bits of
//	(row XOR col) and row, so any cell is O(log n) and the generator never
//	allocates more than its output.
//
// Quick ASCII example (8×8 map, 25% gray):
//
//	█·█·█·█·
//	········
//	█·█·█·█·
//	········
//	█·█·█·█·
//	········
//	█·█·█·█·
//	········
//
//	go get github.com/katalvlaran/dithermap/bayer
package dithermap
