package highlight

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-highlight/dsp/core"
	"github.com/cwbudde/algo-highlight/dsp/grid"
)

// BorderOffset returns the largest value found on the sampled border lines
// of filtered. Padding brightens the filtered image near its edges; the
// offset removes that rise from the difference.
func BorderOffset(filtered grid.Image, mode BorderMode) float64 {
	if filtered.Validate() != nil {
		return 0
	}

	last := filtered.Rows - 1
	lines := [][]float64{
		filtered.Row(0),
		filtered.Col(0),
		filtered.Row(last),
	}
	switch mode {
	case BorderAllEdges:
		lines = append(lines, filtered.Col(filtered.Cols-1))
	default:
		lines = append(lines, filtered.Row(last))
	}

	offset := floats.Max(lines[0])
	for _, line := range lines[1:] {
		offset = max(offset, floats.Max(line))
	}
	return offset
}

// Difference returns clip(filtered - original - offset, 0, 1).
func Difference(original, filtered grid.Image, offset float64) (grid.Image, error) {
	if err := original.Validate(); err != nil {
		return grid.Image{}, err
	}
	if err := filtered.Validate(); err != nil {
		return grid.Image{}, err
	}
	if !original.SameShape(filtered) {
		return grid.Image{}, fmt.Errorf("%w: original %dx%d, filtered %dx%d",
			grid.ErrInputShape, original.Rows, original.Cols, filtered.Rows, filtered.Cols)
	}

	diff := make([]float64, filtered.Len())
	vecmath.ScaleBlock(diff, original.Data, -1)
	vecmath.AddBlockInPlace(diff, filtered.Data)
	for i, v := range diff {
		diff[i] = core.Clamp(v-offset, 0, 1)
	}
	return filtered.WithData(diff), nil
}

// AlphaMask computes the normalized highlight mask of filtered against
// original. The returned flag is set when the clipped difference is flat,
// in which case the mask is all zeros.
func AlphaMask(original, filtered grid.Image, border BorderMode) (grid.Image, bool, error) {
	diff, err := Difference(original, filtered, BorderOffset(filtered, border))
	if err != nil {
		return grid.Image{}, false, err
	}
	flat := core.IsDegenerate(diff.Data)
	return diff.WithData(core.Normalize(diff.Data)), flat, nil
}

// Composite builds the overlay for a filtered image: border offset,
// difference, clip, normalize, then tint.
func Composite(original, filtered grid.Image, cfg Config) (Overlay, error) {
	if err := cfg.Tint.Validate(); err != nil {
		return Overlay{}, err
	}
	alpha, _, err := AlphaMask(original, filtered, cfg.Border)
	if err != nil {
		return Overlay{}, err
	}
	return NewOverlay(alpha, cfg.Tint)
}
