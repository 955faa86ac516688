package spectrum

import (
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-highlight/dsp/grid"
)

var sizes = []struct {
	name string
	rows int
}{
	{"64x64", 64},
	{"256x256", 256},
	{"512x512", 512},
}

func benchSpectrum(rows int) grid.Complex {
	spec := grid.NewComplex(rows, rows)
	for i := range spec.Data {
		spec.Data[i] = complex(float64(i%97)/10.0, float64(len(spec.Data)-i)/10.0)
	}
	return spec
}

func BenchmarkMagnitudeImage(b *testing.B) {
	for _, tc := range sizes {
		b.Run(tc.name, func(b *testing.B) {
			spec := benchSpectrum(tc.rows)
			b.SetBytes(int64(len(spec.Data) * 16))
			b.ResetTimer()

			for range b.N {
				_ = MagnitudeImage(spec)
			}
		})
	}
}

func BenchmarkLogMagnitudeImage(b *testing.B) {
	for _, tc := range sizes {
		b.Run(tc.name, func(b *testing.B) {
			spec := benchSpectrum(tc.rows)
			b.SetBytes(int64(len(spec.Data) * 16))
			b.ResetTimer()

			for range b.N {
				_ = LogMagnitudeImage(spec, true)
			}
		})
	}
}

func magnitudeNaive(in []complex128) []float64 {
	out := make([]float64, len(in))
	for i, c := range in {
		out[i] = cmplx.Abs(c)
	}
	return out
}

func BenchmarkMagnitudeNaive(b *testing.B) {
	for _, tc := range sizes {
		b.Run(tc.name, func(b *testing.B) {
			spec := benchSpectrum(tc.rows)
			b.SetBytes(int64(len(spec.Data) * 16))
			b.ResetTimer()

			for range b.N {
				_ = magnitudeNaive(spec.Data)
			}
		})
	}
}
