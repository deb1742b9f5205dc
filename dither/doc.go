// Package dither applies Bayer threshold maps to grayscale images.
//
// The map is tiled over the image from its top-left corner; every pixel is
// compared with the threshold under it and snapped to one of Levels evenly
// spaced gray values (black and white by default). Rows are split into bands
// processed concurrently; each pixel depends only on itself and its tile
// cell, so band order never changes the result.
//
// ⚙️ Usage:
//
//	m := bayer.New[uint8](16, 16)
//	gray := dither.ToGray(src)
//	if err := dither.Apply(gray, m, nil); err != nil { // DefaultOptions
//		// handle ErrNilImage, ErrEmptyMatrix, ErrBadWorkers, ErrBadLevels
//	}
//
// Complexity:
//
//	Time:   O(W·H / Workers)
//	Memory: O(N·M) for the scaled threshold table; the image is updated in place.
package dither
