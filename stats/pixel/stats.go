// Package pixel computes summary statistics of images and alpha masks.
package pixel

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-highlight/dsp/grid"
)

// Stats holds image statistics. Positions are (row, col).
type Stats struct {
	Rows, Cols int

	Mean     float64
	StdDev   float64 // population
	Median   float64
	Min      float64
	MinPos   [2]int
	Max      float64
	MaxPos   [2]int
	Range    float64 // max - min
	Energy   float64 // sum of squares
	Skewness float64
	Kurtosis float64 // excess

	// Coverage is the fraction of samples above zero.
	Coverage float64
	// TotalVariation is the anisotropic total variation, see TotalVariation.
	TotalVariation float64
	// NonFinite counts NaN and Inf samples; they are excluded from every
	// other field.
	NonFinite int
}

// Calculate returns statistics of img. An empty or entirely non-finite
// image yields zero values apart from Rows, Cols and NonFinite.
func Calculate(img grid.Image) Stats {
	s := Stats{Rows: img.Rows, Cols: img.Cols}
	if len(img.Data) == 0 {
		return s
	}

	finite := make([]float64, 0, len(img.Data))
	for _, v := range img.Data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			s.NonFinite++
			continue
		}
		finite = append(finite, v)
	}
	if len(finite) == 0 {
		return s
	}

	s.Mean, s.StdDev = stat.PopMeanStdDev(finite, nil)
	if s.StdDev > 0 {
		s.Skewness = stat.Skew(finite, nil)
		s.Kurtosis = stat.ExKurtosis(finite, nil)
	}
	s.Energy = vecmath.DotProduct(finite, finite)

	s.Min, s.Max = math.Inf(1), math.Inf(-1)
	for i, v := range img.Data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if v < s.Min {
			s.Min, s.MinPos = v, [2]int{i / img.Cols, i % img.Cols}
		}
		if v > s.Max {
			s.Max, s.MaxPos = v, [2]int{i / img.Cols, i % img.Cols}
		}
	}
	s.Range = s.Max - s.Min

	sorted := slices.Clone(finite)
	slices.Sort(sorted)
	s.Median = stat.Quantile(0.5, stat.Empirical, sorted, nil)

	s.Coverage = Coverage(img, 0)
	s.TotalVariation = TotalVariation(img)
	return s
}

// Coverage returns the fraction of samples strictly above threshold.
func Coverage(img grid.Image, threshold float64) float64 {
	if len(img.Data) == 0 {
		return 0
	}
	n := 0
	for _, v := range img.Data {
		if v > threshold {
			n++
		}
	}
	return float64(n) / float64(len(img.Data))
}

// TotalVariation returns the sum of absolute differences between
// horizontally and vertically adjacent samples. Smoothing lowers it.
func TotalVariation(img grid.Image) float64 {
	if img.Validate() != nil {
		return 0
	}

	diff := make([]float64, img.Cols)
	tv := 0.0
	for r := range img.Rows {
		row := img.Data[r*img.Cols : (r+1)*img.Cols]
		if img.Cols > 1 {
			d := diff[:img.Cols-1]
			floats.SubTo(d, row[1:], row[:len(row)-1])
			tv += floats.Norm(d, 1)
		}
		if r+1 < img.Rows {
			next := img.Data[(r+1)*img.Cols : (r+2)*img.Cols]
			d := diff[:img.Cols]
			floats.SubTo(d, next, row)
			tv += floats.Norm(d, 1)
		}
	}
	return tv
}
