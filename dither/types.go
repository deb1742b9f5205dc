package dither

import (
	"fmt"
	"runtime"
)

// Level bounds for Options.Levels.
const (
	MinLevels = 2
	MaxLevels = 256
)

// Options configures Apply.
//
// Fields:
//   - Workers — number of row bands processed concurrently (≥ 1).
//   - Levels  — number of output gray levels, evenly spaced over 0..255.
//     2 gives pure black/white; 256 leaves the image unchanged as long as
//     no scaled threshold reaches 255 (any map with fewer than 256 cells).
type Options struct {
	Workers int
	Levels  int
}

// DefaultOptions returns Workers=GOMAXPROCS, Levels=2.
func DefaultOptions() Options {
	return Options{
		Workers: runtime.GOMAXPROCS(0),
		Levels:  MinLevels,
	}
}

// Validate reports ErrBadWorkers or ErrBadLevels for out-of-range fields.
func (o Options) Validate() error {
	if o.Workers < 1 {
		return fmt.Errorf("Options.Workers=%d: %w", o.Workers, ErrBadWorkers)
	}
	if o.Levels < MinLevels || o.Levels > MaxLevels {
		return fmt.Errorf("Options.Levels=%d: %w", o.Levels, ErrBadLevels)
	}

	return nil
}
