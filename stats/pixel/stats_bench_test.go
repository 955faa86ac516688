package pixel

import (
	"testing"

	"github.com/cwbudde/algo-highlight/internal/testutil"
)

func BenchmarkCalculate(b *testing.B) {
	img := testutil.NoiseImage(1, 256, 256)
	b.ReportAllocs()
	for range b.N {
		_ = Calculate(img)
	}
}

func BenchmarkTotalVariation(b *testing.B) {
	img := testutil.NoiseImage(1, 256, 256)
	b.ReportAllocs()
	for range b.N {
		_ = TotalVariation(img)
	}
}
