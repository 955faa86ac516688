package fft2d

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-highlight/dsp/grid"
	"github.com/cwbudde/algo-highlight/internal/testutil"
)

var allBackends = []Backend{BackendAuto, BackendGonum, BackendGoDSP}

// naiveDFT2 is the O(N^2 M^2) reference transform.
func naiveDFT2(g grid.Complex) grid.Complex {
	out := grid.NewComplex(g.Rows, g.Cols)
	for u := 0; u < g.Rows; u++ {
		for v := 0; v < g.Cols; v++ {
			var sum complex128
			for r := 0; r < g.Rows; r++ {
				for c := 0; c < g.Cols; c++ {
					phase := -2 * math.Pi * (float64(u*r)/float64(g.Rows) + float64(v*c)/float64(g.Cols))
					sum += g.At(r, c) * cmplx.Exp(complex(0, phase))
				}
			}
			out.Set(u, v, sum)
		}
	}
	return out
}

func noiseGrid(rows, cols int, seed int64) grid.Complex {
	noise := testutil.DeterministicNoise(seed, 1, rows*cols)
	img := grid.New(rows, cols)
	copy(img.Data, noise)
	return grid.FromReal(img)
}

func maxComplexDiff(t *testing.T, a, b grid.Complex) float64 {
	t.Helper()
	if a.Rows != b.Rows || a.Cols != b.Cols {
		t.Fatalf("shape mismatch: %dx%d vs %dx%d", a.Rows, a.Cols, b.Rows, b.Cols)
	}
	worst := 0.0
	for i := range a.Data {
		worst = math.Max(worst, cmplx.Abs(a.Data[i]-b.Data[i]))
	}
	return worst
}

func TestForwardMatchesNaiveDFT(t *testing.T) {
	sizes := []struct{ rows, cols int }{{4, 4}, {8, 4}, {3, 5}, {6, 10}}

	for _, size := range sizes {
		in := noiseGrid(size.rows, size.cols, 7)
		want := naiveDFT2(in)
		for _, b := range allBackends {
			got, err := Forward(in, b)
			if err != nil {
				t.Fatalf("%v %dx%d: Forward error: %v", b, size.rows, size.cols, err)
			}
			if d := maxComplexDiff(t, got, want); d > 1e-9 {
				t.Fatalf("%v %dx%d: max diff %g vs naive DFT", b, size.rows, size.cols, d)
			}
		}
	}
}

func TestRoundTrip(t *testing.T) {
	sizes := []struct{ rows, cols int }{{8, 8}, {16, 4}, {9, 7}, {24, 24}}

	for _, size := range sizes {
		in := noiseGrid(size.rows, size.cols, 42)
		for _, b := range allBackends {
			spec, err := Forward(in, b)
			if err != nil {
				t.Fatalf("%v: Forward error: %v", b, err)
			}
			back, err := Inverse(spec, b)
			if err != nil {
				t.Fatalf("%v: Inverse error: %v", b, err)
			}
			if d := maxComplexDiff(t, back, in); d > 1e-10 {
				t.Fatalf("%v %dx%d: round-trip diff %g", b, size.rows, size.cols, d)
			}
		}
	}
}

func TestForwardShiftedDCAtCenter(t *testing.T) {
	img := grid.Filled(6, 4, 0.5)

	spec, err := ForwardShifted(img, BackendAuto)
	if err != nil {
		t.Fatalf("ForwardShifted error: %v", err)
	}

	dc := spec.At(3, 2)
	if math.Abs(real(dc)-12) > 1e-12 || math.Abs(imag(dc)) > 1e-12 {
		t.Fatalf("DC = %v, want 12", dc)
	}
	for i, v := range spec.Data {
		if i == 3*4+2 {
			continue
		}
		if cmplx.Abs(v) > 1e-12 {
			t.Fatalf("bin %d = %v, want 0 for a flat image", i, v)
		}
	}
}

func TestInverseShiftedUndoesForwardShifted(t *testing.T) {
	in := noiseGrid(5, 6, 3).Real()

	spec, err := ForwardShifted(in, BackendGonum)
	if err != nil {
		t.Fatalf("ForwardShifted error: %v", err)
	}
	back, err := InverseShifted(spec, BackendGonum)
	if err != nil {
		t.Fatalf("InverseShifted error: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, back.Real().Data, in.Data, 1e-12)
}

func TestShiftUnshift(t *testing.T) {
	for _, size := range []struct{ rows, cols int }{{4, 4}, {5, 3}, {1, 6}} {
		g := grid.NewComplex(size.rows, size.cols)
		for i := range g.Data {
			g.Data[i] = complex(float64(i), 0)
		}

		shifted := Shift(g)
		if shifted.At(size.rows/2, size.cols/2) != g.At(0, 0) {
			t.Fatalf("%dx%d: origin not moved to center", size.rows, size.cols)
		}

		back := Unshift(shifted)
		for i := range g.Data {
			if back.Data[i] != g.Data[i] {
				t.Fatalf("%dx%d: Unshift(Shift(g)) differs at %d", size.rows, size.cols, i)
			}
		}
	}
}

func TestParseBackend(t *testing.T) {
	tests := []struct {
		in   string
		want Backend
	}{
		{"auto", BackendAuto},
		{"Gonum", BackendGonum},
		{" godsp ", BackendGoDSP},
		{"go-dsp", BackendGoDSP},
	}
	for _, tt := range tests {
		got, err := ParseBackend(tt.in)
		if err != nil {
			t.Fatalf("ParseBackend(%q) error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParseBackend(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := ParseBackend("fftw"); !errors.Is(err, ErrUnsupportedBackend) {
		t.Fatalf("err = %v, want ErrUnsupportedBackend", err)
	}
}

func TestTransformErrors(t *testing.T) {
	if _, err := Forward(grid.NewComplex(0, 4), BackendAuto); !errors.Is(err, grid.ErrInputShape) {
		t.Fatalf("err = %v, want ErrInputShape", err)
	}
	if _, err := Forward(grid.NewComplex(2, 2), Backend(99)); !errors.Is(err, ErrUnsupportedBackend) {
		t.Fatalf("err = %v, want ErrUnsupportedBackend", err)
	}
}

func TestBackendString(t *testing.T) {
	if BackendGoDSP.String() != "godsp" {
		t.Fatalf("String() = %q", BackendGoDSP.String())
	}
	if Backend(7).String() != "Backend(7)" {
		t.Fatalf("String() = %q", Backend(7).String())
	}
}

func BenchmarkForward(b *testing.B) {
	sizes := []struct {
		name string
		n    int
	}{
		{"64", 64},
		{"96", 96},
		{"256", 256},
	}

	for _, size := range sizes {
		in := noiseGrid(size.n, size.n, 1)
		b.Run(size.name, func(b *testing.B) {
			b.ResetTimer()
			for range b.N {
				_, _ = Forward(in, BackendAuto)
			}
		})
	}
}
