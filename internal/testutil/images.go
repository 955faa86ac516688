package testutil

import (
	"math"
	"math/rand"

	"github.com/cwbudde/algo-highlight/dsp/grid"
)

// DeterministicNoise generates uniform noise in [-amplitude, amplitude]
// with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// NoiseImage returns a rows x cols image of uniform noise in [0, 1].
func NoiseImage(seed int64, rows, cols int) grid.Image {
	img := grid.New(rows, cols)
	for i, v := range DeterministicNoise(seed, 0.5, rows*cols) {
		img.Data[i] = v + 0.5
	}
	return img
}

// Flat returns a constant-valued image.
func Flat(rows, cols int, value float64) grid.Image {
	return grid.Filled(rows, cols, value)
}

// Checkerboard returns an image alternating between 0 and 1, with 1 at (0, 0).
func Checkerboard(rows, cols int) grid.Image {
	img := grid.New(rows, cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if (r+c)%2 == 0 {
				img.Set(r, c, 1)
			}
		}
	}
	return img
}

// HorizontalGradient returns an image ramping from 0 in the first column
// to 1 in the last.
func HorizontalGradient(rows, cols int) grid.Image {
	img := grid.New(rows, cols)
	if cols < 2 {
		return img
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			img.Set(r, c, float64(c)/float64(cols-1))
		}
	}
	return img
}

// Disc returns a zero image with a filled disc of ones of the given radius
// centered on the image.
func Disc(rows, cols int, radius float64) grid.Image {
	img := grid.New(rows, cols)
	cy, cx := float64(rows-1)/2, float64(cols-1)/2
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if math.Hypot(float64(r)-cy, float64(c)-cx) <= radius {
				img.Set(r, c, 1)
			}
		}
	}
	return img
}
