package dither

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// ToGray returns a new *image.Gray with src's bounds, converted through
// color.GrayModel. A *image.Gray input is copied, never aliased.
func ToGray(src image.Image) *image.Gray {
	b := src.Bounds()
	dst := image.NewGray(b)
	xdraw.Draw(dst, b, src, b.Min, xdraw.Src)

	return dst
}
