package window

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Type identifies a window function.
type Type int

const (
	TypeRectangular Type = iota
	TypeHann
	TypeGauss
)

var typeNames = map[Type]string{
	TypeRectangular: "Rectangular",
	TypeHann:        "Hann",
	TypeGauss:       "Gauss",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// Option configures window generation.
type Option func(*config)

type config struct {
	sigma     float64
	normalize bool
}

func defaultConfig() config {
	return config{sigma: 1}
}

// WithSigma sets the Gaussian standard deviation in samples.
// Non-positive values are ignored.
func WithSigma(v float64) Option {
	return func(c *config) {
		if v > 0 {
			c.sigma = v
		}
	}
}

// WithUnitSum scales the coefficients so they add up to one.
func WithUnitSum() Option {
	return func(c *config) {
		c.normalize = true
	}
}

// Generate returns window coefficients of the given length, sampled
// symmetrically around the center tap (length-1)/2.
func Generate(t Type, length int, opts ...Option) []float64 {
	if length <= 0 {
		return nil
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	out := make([]float64, length)
	center := float64(length-1) / 2
	for n := range out {
		out[n] = evalWindow(t, float64(n)-center, length, cfg)
	}

	if cfg.normalize {
		if sum := vecmath.Sum(out); sum != 0 {
			vecmath.ScaleBlockInPlace(out, 1/sum)
		}
	}
	return out
}

// Apply multiplies buf in place by a window of len(buf).
func Apply(t Type, buf []float64, opts ...Option) {
	if len(buf) == 0 {
		return
	}
	vecmath.MulBlockInPlace(buf, Generate(t, len(buf), opts...))
}

// Gaussian returns a unit-sum Gaussian smoothing kernel of odd length size.
//
// A non-positive sigma is derived from the size as
// 0.3*((size-1)/2 - 1) + 0.8, the usual default for blur kernels.
func Gaussian(size int, sigma float64) ([]float64, error) {
	if err := validateKernelSize(size); err != nil {
		return nil, err
	}
	if err := validateSigma(sigma); err != nil {
		return nil, err
	}
	if sigma <= 0 {
		sigma = AutoSigma(size)
	}

	return Generate(TypeGauss, size, WithSigma(sigma), WithUnitSum()), nil
}

// Box returns a unit-sum rectangular kernel of odd length size.
func Box(size int) ([]float64, error) {
	if err := validateKernelSize(size); err != nil {
		return nil, err
	}
	return Generate(TypeRectangular, size, WithUnitSum()), nil
}

// AutoSigma returns the default Gaussian sigma for a kernel of length size.
func AutoSigma(size int) float64 {
	return 0.3*(float64(size-1)*0.5-1) + 0.8
}

// ApplyCoefficients multiplies samples with coefficients and returns a new slice.
func ApplyCoefficients(samples, coeffs []float64) ([]float64, error) {
	if len(samples) != len(coeffs) {
		return nil, errMismatchedLength
	}

	out := make([]float64, len(samples))
	vecmath.MulBlock(out, samples, coeffs)

	return out, nil
}

// Sum returns the sum of coefficients, failing on an empty or zero-sum set.
func Sum(coeffs []float64) (float64, error) {
	s := vecmath.Sum(coeffs)
	if len(coeffs) == 0 || s == 0 {
		return 0, errZeroSum
	}
	return s, nil
}

func evalWindow(t Type, x float64, length int, cfg config) float64 {
	switch t {
	case TypeHann:
		if length <= 1 {
			return 1
		}
		return 0.5 + 0.5*math.Cos(2*math.Pi*x/float64(length-1))
	case TypeGauss:
		return math.Exp(-(x * x) / (2 * cfg.sigma * cfg.sigma))
	default:
		return 1
	}
}
