package highlight

import (
	"fmt"

	"github.com/cwbudde/algo-highlight/dsp/conv"
	"github.com/cwbudde/algo-highlight/dsp/core"
	"github.com/cwbudde/algo-highlight/dsp/grid"
	"github.com/cwbudde/algo-highlight/dsp/pad"
	"github.com/cwbudde/algo-highlight/dsp/spectral"
	"github.com/cwbudde/algo-highlight/dsp/window"
)

// Report is the outcome of a highlight pass.
type Report struct {
	Overlay Overlay
	// Padded is the normalized, zero-padded input the mask was computed
	// against. It has the overlay's shape.
	Padded grid.Image
	// Filtered is the smoothed version of Padded.
	Filtered grid.Image
	// Spectrum is the filtered centered spectrum, kept only in spectral
	// mode with Config.KeepSpectrum.
	Spectrum grid.Complex
	// Warnings collects non-fatal conditions such as core.ErrDegenerateRange
	// and spectral.ErrNumericInstability.
	Warnings []error
}

// Run dispatches to Spectral or Simple according to cfg.Mode.
func Run(gray grid.Image, cfg Config) (Report, error) {
	switch cfg.Mode {
	case ModeSpectral:
		return Spectral(gray, cfg)
	case ModeSimple:
		return Simple(gray, cfg)
	default:
		return Report{}, fmt.Errorf("%w: mode %v", ErrInvalidConfig, cfg.Mode)
	}
}

// Spectral normalizes gray, squares it with zero padding, low-pass filters
// it with cfg.Filter and composites the result.
func Spectral(gray grid.Image, cfg Config) (Report, error) {
	if err := gray.Validate(); err != nil {
		return Report{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Report{}, err
	}
	t, err := cfg.Filter.Build()
	if err != nil {
		return Report{}, err
	}

	var rep Report
	if core.IsDegenerate(gray.Data) {
		rep.Warnings = append(rep.Warnings, fmt.Errorf("%w: input", core.ErrDegenerateRange))
	}
	rep.Padded = pad.ZeroSquare(gray.WithData(core.Normalize(gray.Data)))

	opts := []spectral.Option{
		spectral.WithWorkers(cfg.Workers),
		spectral.WithBackend(cfg.Backend),
	}
	if cfg.KeepSpectrum {
		opts = append(opts, spectral.WithKeepSpectrum())
	}
	res, err := spectral.Apply(rep.Padded, t, opts...)
	if err != nil {
		return Report{}, err
	}
	rep.Filtered = res.Image
	rep.Spectrum = res.Spectrum
	rep.Warnings = append(rep.Warnings, res.Warnings...)

	return rep.finish(cfg.Border, cfg.Tint)
}

// Simple zero-pads gray by half its size on each side, normalizes it,
// blurs it with a separable Gaussian and composites without a border
// offset.
func Simple(gray grid.Image, cfg Config) (Report, error) {
	if err := gray.Validate(); err != nil {
		return Report{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Report{}, err
	}
	kernel, err := window.Gaussian(cfg.BlurSize, cfg.BlurSigma)
	if err != nil {
		return Report{}, err
	}

	var rep Report
	padded := pad.ZeroHalf(gray)
	if core.IsDegenerate(padded.Data) {
		rep.Warnings = append(rep.Warnings, fmt.Errorf("%w: input", core.ErrDegenerateRange))
	}
	rep.Padded = padded.WithData(core.Normalize(padded.Data))

	rep.Filtered, err = conv.Separable(rep.Padded, kernel, kernel, conv.BorderReflect101)
	if err != nil {
		return Report{}, err
	}

	diff, err := Difference(rep.Padded, rep.Filtered, 0)
	if err != nil {
		return Report{}, err
	}
	return rep.withMask(diff, cfg.Tint)
}

func (rep Report) finish(border BorderMode, tint Tint) (Report, error) {
	diff, err := Difference(rep.Padded, rep.Filtered, BorderOffset(rep.Filtered, border))
	if err != nil {
		return Report{}, err
	}
	return rep.withMask(diff, tint)
}

func (rep Report) withMask(diff grid.Image, tint Tint) (Report, error) {
	if core.IsDegenerate(diff.Data) {
		rep.Warnings = append(rep.Warnings, fmt.Errorf("%w: alpha mask", core.ErrDegenerateRange))
	}
	overlay, err := NewOverlay(diff.WithData(core.Normalize(diff.Data)), tint)
	if err != nil {
		return Report{}, err
	}
	rep.Overlay = overlay
	return rep, nil
}
