package bayer_test

import (
	"testing"

	"github.com/katalvlaran/dithermap/bayer"
)

// benchmarkNew builds an n×n matrix of uint16 per iteration.
func benchmarkNew(b *testing.B, n int) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = bayer.New[uint16](n, n)
	}
}

// BenchmarkNew_8 benchmarks the common 8×8 map.
func BenchmarkNew_8(b *testing.B) { benchmarkNew(b, 8) }

// BenchmarkNew_16 benchmarks the 16×16 map (256 levels).
func BenchmarkNew_16(b *testing.B) { benchmarkNew(b, 16) }

// BenchmarkNew_256 benchmarks a large 256×256 map.
func BenchmarkNew_256(b *testing.B) { benchmarkNew(b, 256) }

// BenchmarkTile measures tiled lookups over a 1024-pixel row.
func BenchmarkTile(b *testing.B) {
	m := bayer.New[uint8](16, 16)
	var sink uint8
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for x := 0; x < 1024; x++ {
			sink ^= m.Tile(x, i)
		}
	}
	_ = sink
}
