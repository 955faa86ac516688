package spectrum_test

import (
	"fmt"

	"github.com/cwbudde/algo-highlight/dsp/spectrum"
)

func ExampleMagnitude() {
	bins := []complex128{1 + 0i, 0 + 1i, -1 + 0i}
	mag := spectrum.Magnitude(bins)
	fmt.Printf("%.1f %.1f %.1f\n", mag[0], mag[1], mag[2])
	// Output:
	// 1.0 1.0 1.0
}

func ExampleLogMagnitude() {
	lm := spectrum.LogMagnitude([]complex128{0, 3 + 4i})
	fmt.Printf("%.3f %.3f\n", lm[0], lm[1])
	// Output:
	// 0.000 35.835
}
