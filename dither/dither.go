package dither

import (
	"image"
	"sync"

	"github.com/samber/lo"
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/dithermap/bayer"
)

// Apply dithers img in place against the tiled threshold map m.
//
// Stage 1 (Validate): img non-nil, m non-empty, opts valid (nil ⇒ DefaultOptions).
// Stage 2 (Prepare): rescale m to 8-bit thresholds (bayer.Matrix.Scaled) and
// split the rows into at most opts.Workers contiguous bands.
// Stage 3 (Execute): one goroutine per band; pixel (x, y) is compared with
// cell ((y−minY) mod Rows, (x−minX) mod Cols).
// Stage 4 (Finalize): wait for all bands.
//
// With Levels=2 a pixel becomes 255 iff lum > threshold, else 0.
func Apply[T constraints.Unsigned](img *image.Gray, m bayer.Matrix[T], opts *Options) error {
	if img == nil {
		return ErrNilImage
	}
	if m.Len() == 0 {
		return ErrEmptyMatrix
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := o.Validate(); err != nil {
		return err
	}

	w, h := img.Rect.Dx(), img.Rect.Dy()
	if w <= 0 || h <= 0 {
		return nil
	}

	t := &table{
		rows:   m.Rows(),
		cols:   m.Cols(),
		cells:  m.Scaled(256),
		levels: uint32(o.Levels),
	}

	var wg sync.WaitGroup
	for _, band := range lo.Chunk(lo.Range(h), bandSize(h, o.Workers)) {
		wg.Add(1)
		go func(rows []int) {
			defer wg.Done()
			for _, dy := range rows {
				t.row(img, dy, w)
			}
		}(band)
	}
	wg.Wait()

	return nil
}

// Image converts src to grayscale and dithers the copy; src is not modified.
func Image[T constraints.Unsigned](src image.Image, m bayer.Matrix[T], opts *Options) (*image.Gray, error) {
	if src == nil {
		return nil, ErrNilImage
	}
	g := ToGray(src)
	if err := Apply(g, m, opts); err != nil {
		return nil, err
	}

	return g, nil
}

// bandSize returns ⌈h/workers⌉, at least 1.
func bandSize(h, workers int) int {
	n := (h + workers - 1) / workers
	if n < 1 {
		return 1
	}

	return n
}

// table holds the scaled thresholds of one matrix.
type table struct {
	rows, cols int
	cells      []uint32 // row-major, each in 0..255
	levels     uint32
}

// row dithers image row dy (relative to Rect.Min) of width w.
func (t *table) row(img *image.Gray, dy, w int) {
	cells := t.cells[(dy%t.rows)*t.cols : (dy%t.rows+1)*t.cols]
	off := img.PixOffset(img.Rect.Min.X, img.Rect.Min.Y+dy)
	pix := img.Pix[off : off+w]
	for dx, lum := range pix {
		pix[dx] = quantize(lum, cells[dx%t.cols], t.levels)
	}
}

// quantize snaps lum to one of levels evenly spaced values. s = lum·(levels−1)
// splits into a whole step q and a remainder r in 1..255 (s−1 = 255·q + r−1);
// q rounds up when r exceeds threshold. For levels=2 this is exactly:
// lum > threshold ⇒ 255, else 0.
func quantize(lum uint8, threshold, levels uint32) uint8 {
	s := uint32(lum) * (levels - 1)
	if s == 0 {
		return 0
	}
	q, r := (s-1)/255, (s-1)%255+1
	if r > threshold {
		q++
	}

	return uint8(q * 255 / (levels - 1))
}
