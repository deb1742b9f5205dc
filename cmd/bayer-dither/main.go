// Command bayer-dither converts an image to grayscale and applies ordered
// dithering with a tiled Bayer matrix, writing the result as PNG.
//
// Usage:
//
//	bayer-dither -in bliss.png -out bliss-dithered.png
//	bayer-dither -in photo.jpg -out photo.png -size 8 -levels 4
//	bayer-dither -config run.json -workers 2
//
// A config file is a JSON object with any of the keys in, out, size, levels
// and workers; flags given on the command line win over it.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"log"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/katalvlaran/dithermap/bayer"
	"github.com/katalvlaran/dithermap/dither"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("bayer-dither: ")
	os.Exit(realMain(os.Args[1:]))
}

// realMain runs one invocation and returns its exit status. Asking for help
// with -h is not a failure.
func realMain(args []string) int {
	cfg, err := parseConfig(args)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		log.Printf("%v", err)
		return 1
	}
	if err := run(cfg); err != nil {
		log.Printf("%v", err)
		return 1
	}
	log.Printf("wrote %s (%d×%d map, %d levels)", cfg.Out, cfg.Size, cfg.Size, cfg.Levels)

	return 0
}

// run decodes cfg.In, dithers it and encodes cfg.Out.
func run(cfg Config) error {
	src, err := decodeFile(cfg.In)
	if err != nil {
		return err
	}

	m, err := bayer.Build[uint16](cfg.Size, cfg.Size)
	if err != nil {
		return err
	}
	opts := cfg.options()
	img, err := dither.Image(src, m, &opts)
	if err != nil {
		return err
	}

	return encodeFile(cfg.Out, img)
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	log.Printf("read %s (%s, %dx%d)", path, format, img.Bounds().Dx(), img.Bounds().Dy())

	return img, nil
}

func encodeFile(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}

	return f.Close()
}
