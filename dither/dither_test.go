package dither_test

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dithermap/bayer"
	"github.com/katalvlaran/dithermap/dither"
)

// uniform returns a w×h gray image filled with lum, anchored at origin.
func uniform(origin image.Point, w, h int, lum uint8) *image.Gray {
	img := image.NewGray(image.Rectangle{Min: origin, Max: origin.Add(image.Pt(w, h))})
	for i := range img.Pix {
		img.Pix[i] = lum
	}

	return img
}

// gradient returns a w×h image whose pixels cycle through all 256 levels.
func gradient(w, h int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = uint8((i*7 + i/w*13) % 256)
	}

	return img
}

// TestApply_Errors verifies every validation sentinel.
func TestApply_Errors(t *testing.T) {
	m := bayer.New[uint8](2, 2)
	img := uniform(image.Point{}, 2, 2, 0)

	assert.ErrorIs(t, dither.Apply(nil, m, nil), dither.ErrNilImage)
	assert.ErrorIs(t, dither.Apply(img, bayer.Matrix[uint8]{}, nil), dither.ErrEmptyMatrix)

	bad := dither.DefaultOptions()
	bad.Workers = 0
	assert.ErrorIs(t, dither.Apply(img, m, &bad), dither.ErrBadWorkers)

	for _, lv := range []int{0, 1, 257} {
		bad = dither.DefaultOptions()
		bad.Levels = lv
		err := dither.Apply(img, m, &bad)
		assert.True(t, errors.Is(err, dither.ErrBadLevels), "Levels=%d", lv)
	}

	_, err := dither.Image(nil, m, nil)
	assert.ErrorIs(t, err, dither.ErrNilImage)
}

// TestApply_MidGrayCheckerboard verifies a 2×2 map turns 50% gray into a checkerboard.
func TestApply_MidGrayCheckerboard(t *testing.T) {
	img := uniform(image.Point{}, 4, 4, 128)
	require.NoError(t, dither.Apply(img, bayer.New[uint8](2, 2), nil))

	// thresholds [[0 128] [192 64]]
	want := []uint8{
		255, 0, 255, 0,
		0, 255, 0, 255,
		255, 0, 255, 0,
		0, 255, 0, 255,
	}
	assert.Equal(t, want, img.Pix)
}

// TestApply_Extremes verifies black stays black and white stays white
// when every threshold is below 255.
func TestApply_Extremes(t *testing.T) {
	m := bayer.New[uint8](8, 8)
	for _, lum := range []uint8{0, 255} {
		img := uniform(image.Point{}, 9, 5, lum)
		require.NoError(t, dither.Apply(img, m, nil))
		assert.True(t, lo.EveryBy(img.Pix, func(p uint8) bool { return p == lum }), "lum=%d", lum)
	}
}

// TestApply_MatchesRawThresholds checks the 16×16 binary case against a
// direct per-pixel lum > m.Tile(x, y) comparison for every luminance.
func TestApply_MatchesRawThresholds(t *testing.T) {
	m := bayer.New[uint8](16, 16)
	for lum := 0; lum < 256; lum++ {
		img := uniform(image.Point{}, 16, 16, uint8(lum))
		require.NoError(t, dither.Apply(img, m, nil))
		for y := 0; y < 16; y++ {
			for x := 0; x < 16; x++ {
				want := uint8(0)
				if uint8(lum) > m.Tile(x, y) {
					want = 255
				}
				require.Equal(t, want, img.GrayAt(x, y).Y, "lum=%d pixel (%d,%d)", lum, x, y)
			}
		}
	}

	src := gradient(37, 23)
	img := dither.ToGray(src)
	require.NoError(t, dither.Apply(img, m, nil))
	for y := 0; y < 23; y++ {
		for x := 0; x < 37; x++ {
			want := uint8(0)
			if src.GrayAt(x, y).Y > m.Tile(x, y) {
				want = 255
			}
			require.Equal(t, want, img.GrayAt(x, y).Y, "gradient pixel (%d,%d)", x, y)
		}
	}
}

// TestApply_FullWhiteOnTopThreshold verifies a 255 pixel over the 255 cell
// of a 16×16 map turns black, since 255 > 255 is false.
func TestApply_FullWhiteOnTopThreshold(t *testing.T) {
	m := bayer.New[uint8](16, 16)
	top, err := m.At(15, 0)
	require.NoError(t, err)
	require.Equal(t, uint8(255), top)

	img := uniform(image.Point{}, 16, 16, 255)
	require.NoError(t, dither.Apply(img, m, nil))
	assert.Equal(t, uint8(0), img.GrayAt(0, 15).Y)
	assert.Equal(t, 255, lo.CountBy(img.Pix, func(p uint8) bool { return p == 255 }))
}

// TestApply_OffsetRect verifies tiling starts at Rect.Min, not the origin.
func TestApply_OffsetRect(t *testing.T) {
	m := bayer.New[uint8](2, 2)
	a := uniform(image.Pt(0, 0), 4, 4, 128)
	b := uniform(image.Pt(11, 7), 4, 4, 128)
	require.NoError(t, dither.Apply(a, m, nil))
	require.NoError(t, dither.Apply(b, m, nil))
	assert.Equal(t, a.Pix, b.Pix)
	assert.Equal(t, uint8(255), b.GrayAt(11, 7).Y)
}

// TestApply_SubImage verifies only the sub-image rows and columns are touched.
func TestApply_SubImage(t *testing.T) {
	parent := uniform(image.Point{}, 6, 6, 128)
	sub := parent.SubImage(image.Rect(2, 2, 4, 4)).(*image.Gray)
	require.NoError(t, dither.Apply(sub, bayer.New[uint8](2, 2), nil))

	assert.Equal(t, uint8(128), parent.GrayAt(0, 0).Y)
	assert.Equal(t, uint8(128), parent.GrayAt(5, 5).Y)
	assert.Equal(t, uint8(255), parent.GrayAt(2, 2).Y)
	assert.Equal(t, uint8(0), parent.GrayAt(3, 2).Y)
	assert.Equal(t, uint8(128), parent.GrayAt(4, 2).Y)
}

// TestApply_WorkersDoNotChangeResult compares 1 worker with many.
func TestApply_WorkersDoNotChangeResult(t *testing.T) {
	m := bayer.New[uint16](8, 8)
	seq := gradient(61, 47)
	par := gradient(61, 47)

	one := dither.Options{Workers: 1, Levels: 4}
	many := dither.Options{Workers: 13, Levels: 4}
	require.NoError(t, dither.Apply(seq, m, &one))
	require.NoError(t, dither.Apply(par, m, &many))
	assert.Equal(t, seq.Pix, par.Pix)

	huge := dither.Options{Workers: 1000, Levels: 4}
	more := gradient(61, 47)
	require.NoError(t, dither.Apply(more, m, &huge))
	assert.Equal(t, seq.Pix, more.Pix)
}

// TestApply_Levels verifies outputs stay on the level grid and 256 levels is a no-op.
func TestApply_Levels(t *testing.T) {
	m := bayer.New[uint8](4, 4)
	img := gradient(32, 32)
	opts := dither.Options{Workers: 4, Levels: 4}
	require.NoError(t, dither.Apply(img, m, &opts))
	allowed := []uint8{0, 85, 170, 255}
	for _, p := range lo.Uniq(img.Pix) {
		assert.Contains(t, allowed, p)
	}

	orig := gradient(32, 32)
	same := gradient(32, 32)
	opts.Levels = 256
	require.NoError(t, dither.Apply(same, m, &opts))
	assert.Equal(t, orig.Pix, same.Pix)
}

// TestApply_PreservesMeanLuminance checks that a tile-aligned uniform area
// averages back to (approximately) its input.
func TestApply_PreservesMeanLuminance(t *testing.T) {
	m := bayer.New[uint8](8, 8)
	for _, lum := range []uint8{32, 64, 100, 191} {
		img := uniform(image.Point{}, 16, 16, lum)
		require.NoError(t, dither.Apply(img, m, nil))
		mean := lo.SumBy(img.Pix, func(p uint8) int { return int(p) }) / len(img.Pix)
		assert.InDelta(t, int(lum), mean, 4, "lum=%d", lum)
	}
}

// TestToGray verifies conversion matches color.GrayModel and never aliases.
func TestToGray(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 3, 1))
	src.Set(0, 0, color.RGBA{R: 255, A: 255})
	src.Set(1, 0, color.RGBA{G: 255, A: 255})
	src.Set(2, 0, color.RGBA{B: 255, A: 255})

	g := dither.ToGray(src)
	for x := 0; x < 3; x++ {
		want := color.GrayModel.Convert(src.At(x, 0)).(color.Gray)
		assert.Equal(t, want, g.GrayAt(x, 0))
	}

	in := uniform(image.Point{}, 2, 2, 9)
	out := dither.ToGray(in)
	out.Pix[0] = 1
	assert.Equal(t, uint8(9), in.Pix[0])
}

// TestImage verifies the convert-then-dither convenience leaves src untouched.
func TestImage(t *testing.T) {
	src := uniform(image.Point{}, 4, 4, 128)
	out, err := dither.Image(src, bayer.New[uint8](2, 2), nil)
	require.NoError(t, err)
	assert.Equal(t, uint8(128), src.Pix[1])
	assert.Equal(t, uint8(0), out.Pix[1])
}
