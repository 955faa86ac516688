package core

import (
	"errors"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/floats"
)

const defaultEpsilon = 1e-12

// flatTolerance is the relative range below which a slice is treated as flat.
const flatTolerance = 1e-9

// ErrDegenerateRange reports that a normalization input had no usable range.
var ErrDegenerateRange = errors.New("core: degenerate range (min == max)")

// Clamp limits value to the inclusive range [min, max].
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// FlushDenormals converts tiny denormal-like values to exact zero.
func FlushDenormals(x float64) float64 {
	const epsilon = 1e-30
	if x > -epsilon && x < epsilon {
		return 0
	}

	return x
}

// Distance returns the Euclidean norm of (dx, dy).
func Distance(dx, dy float64) float64 {
	return math.Hypot(dx, dy)
}

// InCircle reports whether (x, y) lies strictly inside the circle of radius r
// centered on (cx, cy). Points on the boundary are outside.
func InCircle(cx, cy, r, x, y float64) bool {
	return Distance(x-cx, y-cy) < r
}

// LogMagnitude returns 20*ln(|c|+1). The +1 keeps zero bins finite.
func LogMagnitude(c complex128) float64 {
	return 20 * math.Log(cmplx.Abs(c)+1)
}

// MinMax returns the smallest and largest value of x.
// Returns (0, 0) for an empty slice.
func MinMax(x []float64) (lo, hi float64) {
	if len(x) == 0 {
		return 0, 0
	}
	return floats.Min(x), floats.Max(x)
}

// IsDegenerate reports whether x has no usable range for normalization:
// it is empty, contains NaN extremes, or max-min is negligible relative
// to the magnitude of its values.
func IsDegenerate(x []float64) bool {
	if len(x) == 0 {
		return true
	}
	lo, hi := MinMax(x)
	scale := math.Max(1, math.Max(math.Abs(lo), math.Abs(hi)))
	return !(hi-lo > flatTolerance*scale)
}

// Normalize returns a new slice with [min(x), max(x)] mapped affinely onto
// [0, 1]. A degenerate input (see IsDegenerate) yields all zeros.
func Normalize(x []float64) []float64 {
	out := make([]float64, len(x))
	if IsDegenerate(x) {
		return out
	}

	lo, hi := MinMax(x)
	scale := 1 / (hi - lo)
	for i, v := range x {
		out[i] = (v - lo) * scale
	}
	// Pin the extremes so rounding cannot leave them off 0 and 1.
	for i, v := range x {
		switch v {
		case lo:
			out[i] = 0
		case hi:
			out[i] = 1
		}
	}
	return out
}
