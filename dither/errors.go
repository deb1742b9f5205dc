package dither

import "errors"

var (
	// ErrNilImage indicates a nil destination image.
	ErrNilImage = errors.New("dither: image is nil")
	// ErrEmptyMatrix indicates a zero-value bayer.Matrix.
	ErrEmptyMatrix = errors.New("dither: threshold matrix is empty")
	// ErrBadWorkers indicates Options.Workers < 1.
	ErrBadWorkers = errors.New("dither: workers must be >= 1")
	// ErrBadLevels indicates Options.Levels outside 2..256.
	ErrBadLevels = errors.New("dither: levels must be in 2..256")
)
