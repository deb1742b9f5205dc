package dither_test

import (
	"fmt"
	"image"

	"github.com/katalvlaran/dithermap/bayer"
	"github.com/katalvlaran/dithermap/dither"
)

// ExampleApply dithers a 25% gray patch with a 4×4 map: 4 of 16 pixels light up.
func ExampleApply() {
	img := image.NewGray(image.Rect(0, 0, 4, 4))
	for i := range img.Pix {
		img.Pix[i] = 64
	}
	opts := dither.Options{Workers: 2, Levels: 2}
	if err := dither.Apply(img, bayer.New[uint8](4, 4), &opts); err != nil {
		fmt.Println("error:", err)

		return
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if img.GrayAt(x, y).Y == 255 {
				fmt.Print("█")
			} else {
				fmt.Print("·")
			}
		}
		fmt.Println()
	}
	// Output:
	// █·█·
	// ····
	// █·█·
	// ····
}
