package dither

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/cwbudde/algo-highlight/dsp/grid"
)

// Quantizer maps [0, 1] samples to integer levels 0..2^bits-1 with
// optional dither noise and error diffusion. A Quantizer is not safe for
// concurrent use; its noise source is stateful.
type Quantizer struct {
	bitDepth        int
	ditherType      DitherType
	ditherAmplitude float64
	diffusion       Diffusion
	rng             *rand.Rand

	maxLevel float64
}

// NewQuantizer creates a Quantizer. The default configuration is 8-bit,
// no dither noise, Floyd-Steinberg diffusion.
func NewQuantizer(opts ...Option) (*Quantizer, error) {
	cfg := defaultConfig()

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		err := opt(&cfg)
		if err != nil {
			return nil, err
		}
	}

	quant := &Quantizer{
		bitDepth:        cfg.bitDepth,
		ditherType:      cfg.ditherType,
		ditherAmplitude: cfg.ditherAmplitude,
		diffusion:       cfg.diffusion,
		rng:             cfg.rng,
		maxLevel:        math.Exp2(float64(cfg.bitDepth)) - 1,
	}

	if quant.rng == nil {
		quant.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return quant, nil
}

// Quantize returns the level of every pixel of img in row-major order.
// Non-finite samples quantize as 0 and values outside [0, 1] are clamped.
func (q *Quantizer) Quantize(img grid.Image) ([]uint16, error) {
	dst := make([]uint16, img.Len())
	if err := q.QuantizeTo(dst, img); err != nil {
		return nil, err
	}
	return dst, nil
}

// QuantizeTo is Quantize into a caller-provided slice of img.Len() levels.
func (q *Quantizer) QuantizeTo(dst []uint16, img grid.Image) error {
	if err := img.Validate(); err != nil {
		return err
	}
	if len(dst) != img.Len() {
		return fmt.Errorf("dither: destination length %d, want %d", len(dst), img.Len())
	}

	taps := diffusionTaps[q.diffusion]
	errs := newErrorRows(img.Cols)

	for r := range img.Rows {
		row := img.Row(r)
		out := dst[r*img.Cols : (r+1)*img.Cols]
		for c, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				v = 0
			}
			target := min(max(v, 0), 1)*q.maxLevel + errs.at(c)

			level := q.level(target + q.noise())
			out[c] = uint16(level)

			if taps != nil {
				errs.spread(taps, c, target-level)
			}
		}
		errs.advance()
	}
	return nil
}

// level rounds x half up and clamps it to the output range.
func (q *Quantizer) level(x float64) float64 {
	return min(max(math.Floor(x+0.5), 0), q.maxLevel)
}

// noise draws one dither sample in output levels.
func (q *Quantizer) noise() float64 {
	switch q.ditherType {
	case DitherRectangular:
		return q.ditherAmplitude * (q.rng.Float64()*2 - 1)
	case DitherTriangular:
		return q.ditherAmplitude * (q.rng.Float64() - q.rng.Float64())
	case DitherGaussian:
		return q.ditherAmplitude * q.rng.NormFloat64()
	default:
		return 0
	}
}

// Scale converts a level back to [0, 1].
func (q *Quantizer) Scale(level uint16) float64 {
	return float64(level) / q.maxLevel
}

// Getters.

// BitDepth returns the output bit depth.
func (q *Quantizer) BitDepth() int { return q.bitDepth }

// MaxLevel returns the largest output level, 2^bits-1.
func (q *Quantizer) MaxLevel() uint16 { return uint16(q.maxLevel) }

// DitherType returns the dither noise type.
func (q *Quantizer) DitherType() DitherType { return q.ditherType }

// DitherAmplitude returns the dither noise amplitude in levels.
func (q *Quantizer) DitherAmplitude() float64 { return q.ditherAmplitude }

// Diffusion returns the error-diffusion kernel.
func (q *Quantizer) Diffusion() Diffusion { return q.diffusion }
