package spectral

import (
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-highlight/dsp/core"
	"github.com/cwbudde/algo-highlight/dsp/fft2d"
	"github.com/cwbudde/algo-highlight/dsp/filter/transfer"
	"github.com/cwbudde/algo-highlight/dsp/grid"
	"github.com/cwbudde/algo-highlight/dsp/pad"
)

// ErrNumericInstability marks NaN or Inf values found during a pass.
// It is reported as a warning, never returned as the pass error.
var ErrNumericInstability = errors.New("spectral: non-finite values")

// Result is the outcome of a filtering pass.
type Result struct {
	// Image is the filtered image normalized to [0, 1], shaped like the input.
	Image grid.Image
	// Spectrum is the filtered centered spectrum; set only with WithKeepSpectrum.
	Spectrum grid.Complex
	// Warnings holds non-fatal conditions (ErrNumericInstability,
	// core.ErrDegenerateRange) wrapped with detail.
	Warnings []error
}

// Apply filters img with t and returns the normalized real result.
//
// Shape and filter problems fail before any transform work. Non-finite
// values and a flat result are reported in Result.Warnings.
func Apply(img grid.Image, t transfer.Transfer, opts ...Option) (Result, error) {
	if err := img.Validate(); err != nil {
		return Result{}, err
	}
	if t == nil {
		return Result{}, fmt.Errorf("%w: nil transfer function", transfer.ErrUnsupportedFilter)
	}
	cfg := ApplyOptions(opts...)

	spec, err := fft2d.ForwardShifted(pad.Symmetric(img), cfg.Backend)
	if err != nil {
		return Result{}, err
	}

	filtered, err := FilterSpectrum(spec, t, cfg.Workers)
	if err != nil {
		return Result{}, err
	}

	var res Result
	if n := filtered.CountNonFinite(); n > 0 {
		res.Warnings = append(res.Warnings, fmt.Errorf("%w: %d spectrum bins", ErrNumericInstability, n))
	}

	back, err := fft2d.InverseShifted(filtered, cfg.Backend)
	if err != nil {
		return Result{}, err
	}

	cropped := back.Real().Crop(0, 0, img.Rows, img.Cols)
	if n := cropped.CountNonFinite(); n > 0 {
		res.Warnings = append(res.Warnings, fmt.Errorf("%w: %d output samples", ErrNumericInstability, n))
	}
	if core.IsDegenerate(cropped.Data) {
		res.Warnings = append(res.Warnings, fmt.Errorf("%w: filtered %s output", core.ErrDegenerateRange, t.Kind()))
	}

	res.Image = cropped.WithData(core.Normalize(cropped.Data))
	if cfg.KeepSpectrum {
		res.Spectrum = filtered
	}
	return res, nil
}

// FilterSpectrum evaluates t at every coordinate of a centered spectrum and
// returns the filtered spectrum. workers > 1 splits rows into contiguous
// ranges evaluated concurrently.
func FilterSpectrum(spec grid.Complex, t transfer.Transfer, workers int) (grid.Complex, error) {
	if err := spec.Validate(); err != nil {
		return grid.Complex{}, err
	}
	if t == nil {
		return grid.Complex{}, fmt.Errorf("%w: nil transfer function", transfer.ErrUnsupportedFilter)
	}

	cy, cx := transfer.Center(spec.Rows, spec.Cols)
	fn := func(r, c int, v complex128) complex128 {
		return transfer.Apply(t, v, core.Distance(float64(r)-cy, float64(c)-cx))
	}

	out := grid.NewComplex(spec.Rows, spec.Cols)
	if workers <= 1 || spec.Rows < 2 {
		spec.MapRowsInto(out, 0, spec.Rows, fn)
		return out, nil
	}

	workers = min(workers, spec.Rows)
	chunk := (spec.Rows + workers - 1) / workers

	var g errgroup.Group
	for start := 0; start < spec.Rows; start += chunk {
		end := min(start+chunk, spec.Rows)
		g.Go(func() error {
			spec.MapRowsInto(out, start, end, fn)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return grid.Complex{}, err
	}
	return out, nil
}
