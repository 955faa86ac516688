package conv

import (
	"fmt"
	"math"
	"testing"

	"github.com/cwbudde/algo-highlight/internal/testutil"
)

// Benchmark direct convolution with various sizes.
func BenchmarkDirect(b *testing.B) {
	sizes := []struct {
		signal int
		kernel int
	}{
		{256, 8},
		{256, 65},
		{1024, 8},
		{1024, 65},
	}

	for _, size := range sizes {
		signal := makeTestSignal(size.signal)
		kernel := makeTestKernel(size.kernel)

		b.Run(fmt.Sprintf("signal=%d_kernel=%d", size.signal, size.kernel), func(b *testing.B) {
			b.ReportAllocs()
			for range b.N {
				_, _ = Direct(signal, kernel)
			}
		})
	}
}

func BenchmarkSeparable(b *testing.B) {
	for _, n := range []int{64, 256} {
		img := testutil.NoiseImage(1, n, n)
		kernel := makeTestKernel(65)

		b.Run(fmt.Sprintf("%dx%d_kernel=65", n, n), func(b *testing.B) {
			b.ReportAllocs()
			for range b.N {
				_, _ = Separable(img, kernel, kernel, BorderReflect101)
			}
		})
	}
}

// Helper to create test signals.
func makeTestSignal(n int) []float64 {
	signal := make([]float64, n)
	for i := range signal {
		signal[i] = math.Sin(2*math.Pi*float64(i)/100) + 0.5*math.Cos(2*math.Pi*float64(i)/30)
	}
	return signal
}

// Helper to create symmetric Gaussian-shaped test kernels.
func makeTestKernel(n int) []float64 {
	kernel := make([]float64, n)
	center := float64(n-1) / 2
	for i := range kernel {
		x := (float64(i) - center) / 2
		kernel[i] = math.Exp(-x * x / 2)
	}
	return kernel
}
