package dither

import (
	"fmt"
	"math"
	"math/rand/v2"
)

const (
	defaultBitDepth        = 8
	defaultDitherType      = DitherNone
	defaultDitherAmplitude = 0.5
	defaultDiffusion       = DiffusionFloydSteinberg
	minBitDepth            = 1
	maxBitDepth            = 16
)

type config struct {
	bitDepth        int
	ditherType      DitherType
	ditherAmplitude float64
	diffusion       Diffusion
	rng             *rand.Rand
}

func defaultConfig() config {
	return config{
		bitDepth:        defaultBitDepth,
		ditherType:      defaultDitherType,
		ditherAmplitude: defaultDitherAmplitude,
		diffusion:       defaultDiffusion,
	}
}

// Option configures a [Quantizer].
type Option func(*config) error

// WithBitDepth sets the output bit depth (1-16, default 8).
func WithBitDepth(bits int) Option {
	return func(cfg *config) error {
		if bits < minBitDepth || bits > maxBitDepth {
			return fmt.Errorf("dither: bit depth must be in [%d, %d]: %d", minBitDepth, maxBitDepth, bits)
		}

		cfg.bitDepth = bits

		return nil
	}
}

// WithDitherType sets the dither noise PDF (default [DitherNone]).
func WithDitherType(dt DitherType) Option {
	return func(cfg *config) error {
		if !dt.Valid() {
			return fmt.Errorf("dither: invalid dither type: %d", dt)
		}

		cfg.ditherType = dt

		return nil
	}
}

// WithDitherAmplitude sets the noise amplitude in output levels
// (default 0.5, must be >= 0).
func WithDitherAmplitude(amp float64) Option {
	return func(cfg *config) error {
		if amp < 0 || math.IsNaN(amp) || math.IsInf(amp, 0) {
			return fmt.Errorf("dither: amplitude must be >= 0 and finite: %f", amp)
		}

		cfg.ditherAmplitude = amp

		return nil
	}
}

// WithDiffusion sets the error-diffusion kernel (default Floyd-Steinberg).
func WithDiffusion(d Diffusion) Option {
	return func(cfg *config) error {
		if !d.Valid() {
			return fmt.Errorf("dither: invalid diffusion: %d", d)
		}

		cfg.diffusion = d

		return nil
	}
}

// WithRNG sets a deterministic random number generator for reproducible output.
func WithRNG(rng *rand.Rand) Option {
	return func(cfg *config) error {
		cfg.rng = rng
		return nil
	}
}

// WithSeed is WithRNG with a PCG source seeded from seed.
func WithSeed(seed uint64) Option {
	return WithRNG(rand.New(rand.NewPCG(seed, 0)))
}
