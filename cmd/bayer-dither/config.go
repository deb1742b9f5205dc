package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"reflect"

	"github.com/mitchellh/mapstructure"

	"github.com/katalvlaran/dithermap/dither"
)

// Config holds every setting of one dithering run.
type Config struct {
	In      string `mapstructure:"in"`
	Out     string `mapstructure:"out"`
	Size    int    `mapstructure:"size"`
	Levels  int    `mapstructure:"levels"`
	Workers int    `mapstructure:"workers"`
}

var (
	errNoInput  = errors.New("input path is required")
	errNoOutput = errors.New("output path is required")
	errBadSize  = errors.New("size must be a power of two in 1..256")

	errNotInteger = errors.New("integer setting has a fractional part")
)

// defaultConfig mirrors the classic example: a 16×16 map, black and white.
func defaultConfig() Config {
	opts := dither.DefaultOptions()

	return Config{
		Size:    16,
		Levels:  opts.Levels,
		Workers: opts.Workers,
	}
}

// parseConfig resolves defaults, then the -config JSON file, then flags the
// user set explicitly.
func parseConfig(args []string) (Config, error) {
	cfg := defaultConfig()

	fs := flag.NewFlagSet("bayer-dither", flag.ContinueOnError)
	configPath := fs.String("config", "", "JSON file with in/out/size/levels/workers")
	in := fs.String("in", cfg.In, "input image (png, jpeg, gif, bmp, tiff, webp)")
	out := fs.String("out", cfg.Out, "output PNG path")
	size := fs.Int("size", cfg.Size, "Bayer matrix side, power of two")
	levels := fs.Int("levels", cfg.Levels, "output gray levels (2..256)")
	workers := fs.Int("workers", cfg.Workers, "concurrent row bands")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *configPath != "" {
		f, err := os.Open(*configPath)
		if err != nil {
			return Config{}, fmt.Errorf("open config: %w", err)
		}
		err = decodeConfig(f, &cfg)
		f.Close()
		if err != nil {
			return Config{}, fmt.Errorf("config %s: %w", *configPath, err)
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "in":
			cfg.In = *in
		case "out":
			cfg.Out = *out
		case "size":
			cfg.Size = *size
		case "levels":
			cfg.Levels = *levels
		case "workers":
			cfg.Workers = *workers
		}
	})

	return cfg, cfg.validate()
}

// decodeConfig overlays the JSON object in r onto cfg. Unknown keys are errors.
func decodeConfig(r io.Reader, cfg *Config) error {
	var raw map[string]any
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return err
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.DecodeHookFuncType(wholeNumbers),
		Result:           cfg,
		ErrorUnused:      true,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}

	return dec.Decode(raw)
}

// wholeNumbers refuses JSON numbers with a fraction for integer fields; weak
// typing would otherwise truncate 8.5 to 8.
func wholeNumbers(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.Float64 || to.Kind() != reflect.Int {
		return data, nil
	}
	if f := data.(float64); f != math.Trunc(f) {
		return nil, fmt.Errorf("%v is not an integer: %w", f, errNotInteger)
	}

	return data, nil
}

// validate checks the run settings; dither options are checked by dither.Options.Validate.
func (c Config) validate() error {
	if c.In == "" {
		return errNoInput
	}
	if c.Out == "" {
		return errNoOutput
	}
	if c.Size < 1 || c.Size > 256 || c.Size&(c.Size-1) != 0 {
		return fmt.Errorf("size=%d: %w", c.Size, errBadSize)
	}

	return c.options().Validate()
}

// options returns the dither settings of c.
func (c Config) options() dither.Options {
	return dither.Options{Workers: c.Workers, Levels: c.Levels}
}
