package spectrum

import (
	"math"
	"math/cmplx"
	"sync"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-highlight/dsp/core"
	"github.com/cwbudde/algo-highlight/dsp/grid"
)

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

func split(in []complex128, re, im []float64) {
	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}
}

// Magnitude returns |X[k]| for each complex bin.
//
// Scratch buffers are pooled internally, so in steady state this allocates
// only the output slice.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))
	split(in, re, im)
	vecmath.Magnitude(out, re, im)
	putScratch(buf)
	return out
}

// Power returns |X[k]|^2 for each complex bin.
func Power(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))
	split(in, re, im)
	vecmath.Power(out, re, im)
	putScratch(buf)
	return out
}

// Phase returns arg(X[k]) for each complex bin in radians.
func Phase(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}
	out := make([]float64, len(in))
	for i, c := range in {
		out[i] = cmplx.Phase(c)
	}
	return out
}

// LogMagnitude returns 20*ln(|X[k]|+1) for each complex bin.
// The result agrees with core.LogMagnitude bin by bin.
func LogMagnitude(in []complex128) []float64 {
	out := Magnitude(in)
	for i, m := range out {
		out[i] = 20 * math.Log1p(m)
	}
	return out
}

// MagnitudeImage returns |S| as an image shaped like spec.
func MagnitudeImage(spec grid.Complex) grid.Image {
	return grid.Image{Rows: spec.Rows, Cols: spec.Cols, Data: Magnitude(spec.Data)}
}

// PhaseImage returns arg(S) as an image shaped like spec.
func PhaseImage(spec grid.Complex) grid.Image {
	return grid.Image{Rows: spec.Rows, Cols: spec.Cols, Data: Phase(spec.Data)}
}

// LogMagnitudeImage returns the log-magnitude of spec, which is the usual
// way to look at a centered spectrum. With normalize set the result is
// remapped to [0, 1] for direct encoding.
func LogMagnitudeImage(spec grid.Complex, normalize bool) grid.Image {
	data := LogMagnitude(spec.Data)
	if normalize {
		data = core.Normalize(data)
	}
	return grid.Image{Rows: spec.Rows, Cols: spec.Cols, Data: data}
}
