package transfer

import (
	"errors"
	"math"
	"math/cmplx"
	"strings"
	"testing"

	"github.com/cwbudde/algo-highlight/dsp/core"
	"github.com/cwbudde/algo-highlight/dsp/grid"
)

func spectrumFixture(rows, cols int) grid.Complex {
	spec := grid.NewComplex(rows, cols)
	for i := range spec.Data {
		spec.Data[i] = complex(float64(i%7)-3, float64(i%5)-2)
	}
	return spec
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
	}{
		{"none", KindNone},
		{"IDEAL", KindIdeal},
		{"butterworth-low", KindButterworthLow},
		{"butterworth", KindButterworthLow},
		{"but-hp", KindButterworthHigh},
		{" exponential ", KindExponential},
		{"gaussian", KindExponential},
	}
	for _, tt := range tests {
		got, err := ParseKind(tt.in)
		if err != nil {
			t.Fatalf("ParseKind(%q) error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParseKind(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseKindUnknownNamesSelector(t *testing.T) {
	_, err := ParseKind("chebyshev")
	if !errors.Is(err, ErrUnsupportedFilter) {
		t.Fatalf("err = %v, want ErrUnsupportedFilter", err)
	}
	if !strings.Contains(err.Error(), "chebyshev") {
		t.Fatalf("error %q does not name the selector", err)
	}
}

func TestKindStringRoundTrip(t *testing.T) {
	for _, k := range Kinds() {
		got, err := ParseKind(k.String())
		if err != nil || got != k {
			t.Fatalf("ParseKind(%q) = %v, %v", k.String(), got, err)
		}
	}
	if Kind(42).String() != "Kind(42)" {
		t.Fatalf("String() = %q", Kind(42).String())
	}
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name    string
		kind    Kind
		cutoff  float64
		order   float64
		wantErr error
	}{
		{name: "none ignores params", kind: KindNone, cutoff: 0, order: 0},
		{name: "ideal zero cutoff", kind: KindIdeal, cutoff: 0, wantErr: ErrInvalidParams},
		{name: "exponential negative cutoff", kind: KindExponential, cutoff: -1, wantErr: ErrInvalidParams},
		{name: "butterworth zero order", kind: KindButterworthLow, cutoff: 6, order: 0, wantErr: ErrInvalidParams},
		{name: "butterworth NaN cutoff", kind: KindButterworthHigh, cutoff: math.NaN(), order: 1, wantErr: ErrInvalidParams},
		{name: "butterworth infinite order", kind: KindButterworthHigh, cutoff: 6, order: math.Inf(1), wantErr: ErrInvalidParams},
		{name: "unknown kind", kind: Kind(9), cutoff: 6, order: 1, wantErr: ErrUnsupportedFilter},
		{name: "valid butterworth", kind: KindButterworthLow, cutoff: 6, order: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tf, err := New(tt.kind, tt.cutoff, tt.order)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tf.Kind() != tt.kind {
				t.Fatalf("Kind() = %v, want %v", tf.Kind(), tt.kind)
			}
		})
	}
}

func TestNoneIsIdentity(t *testing.T) {
	spec := spectrumFixture(6, 6)
	for i := 0; i < spec.Rows; i++ {
		for j := 0; j < spec.Cols; j++ {
			if got := Evaluate(None{}, spec, i, j); got != spec.At(i, j) {
				t.Fatalf("(%d,%d): got %v, want %v", i, j, got, spec.At(i, j))
			}
		}
	}
}

func TestIdealPassesInsideAndZeroesOutside(t *testing.T) {
	spec := spectrumFixture(12, 10)
	f := Ideal{Cutoff: 3}
	cy, cx := Center(spec.Rows, spec.Cols)

	for i := 0; i < spec.Rows; i++ {
		for j := 0; j < spec.Cols; j++ {
			got := Evaluate(f, spec, i, j)
			if core.Distance(float64(i)-cy, float64(j)-cx) < f.Cutoff {
				if got != spec.At(i, j) {
					t.Fatalf("(%d,%d) inside: got %v, want %v", i, j, got, spec.At(i, j))
				}
			} else if got != 0 {
				t.Fatalf("(%d,%d) outside: got %v, want exactly 0", i, j, got)
			}
		}
	}

	// (6, 8) is exactly on the boundary of radius 3 around (6, 5).
	if got := Evaluate(f, spec, 6, 8); got != 0 {
		t.Fatalf("boundary pixel passed: %v", got)
	}
}

func TestButterworthComplementary(t *testing.T) {
	spec := spectrumFixture(16, 12)
	params := []struct{ k, n float64 }{{1, 1}, {6, 1}, {2.5, 3}, {10, 0.5}}

	for _, p := range params {
		low := ButterworthLow{Cutoff: p.k, Order: p.n}
		high := ButterworthHigh{Cutoff: p.k, Order: p.n}
		for i := 0; i < spec.Rows; i++ {
			for j := 0; j < spec.Cols; j++ {
				sum := Evaluate(low, spec, i, j) + Evaluate(high, spec, i, j)
				if d := cmplx.Abs(sum - spec.At(i, j)); d > 1e-12 {
					t.Fatalf("k=%v n=%v (%d,%d): low+high differs from S by %g", p.k, p.n, i, j, d)
				}
			}
		}
	}
}

func TestGainShapes(t *testing.T) {
	low := ButterworthLow{Cutoff: 4, Order: 2}
	if got := low.Gain(0); got != 1 {
		t.Fatalf("low.Gain(0) = %v, want 1", got)
	}
	if got := low.Gain(4); math.Abs(got-0.5) > 1e-15 {
		t.Fatalf("low.Gain(k) = %v, want 0.5", got)
	}

	high := ButterworthHigh{Cutoff: 4, Order: 2}
	if got := high.Gain(0); got != 0 {
		t.Fatalf("high.Gain(0) = %v, want 0", got)
	}

	exp := Exponential{Cutoff: 2}
	if got := exp.Gain(2); math.Abs(got-math.Exp(-0.5)) > 1e-15 {
		t.Fatalf("exp.Gain(k) = %v, want e^-0.5", got)
	}

	prev := 2.0
	for d := 0.0; d < 20; d += 0.5 {
		g := exp.Gain(d)
		if g > prev || g < 0 || g > 1 {
			t.Fatalf("exponential gain not monotone in [0,1] at d=%v: %v", d, g)
		}
		prev = g
	}
}

func TestResponse(t *testing.T) {
	resp := Response(Ideal{Cutoff: 1.5}, 8, 8)
	if resp.Rows != 8 || resp.Cols != 8 {
		t.Fatalf("shape = %dx%d", resp.Rows, resp.Cols)
	}

	passed := 0
	for _, v := range resp.Data {
		if v == 1 {
			passed++
		}
	}
	// Center (4,4) plus its 8 neighbours (distances 1 and sqrt(2)).
	if passed != 9 {
		t.Fatalf("passed = %d, want 9", passed)
	}
	if resp.At(4, 4) != 1 || resp.At(0, 0) != 0 {
		t.Fatal("unexpected response layout")
	}
}

func TestApplyZeroGainIsExactZero(t *testing.T) {
	got := Apply(Ideal{Cutoff: 1}, complex(math.NaN(), 1), 5)
	if got != 0 {
		t.Fatalf("Apply = %v, want 0", got)
	}
}

func TestParams(t *testing.T) {
	p := DefaultParams()
	if p.Kind != KindButterworthLow || p.Cutoff != 6 || p.Order != 1 {
		t.Fatalf("DefaultParams() = %+v", p)
	}
	tf, err := p.Build()
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if tf.Kind() != KindButterworthLow {
		t.Fatalf("Kind() = %v", tf.Kind())
	}
	if got := p.String(); got != "butterworth-low(k=6, n=1)" {
		t.Fatalf("String() = %q", got)
	}
	if got := (Params{Kind: KindIdeal, Cutoff: 3}).String(); got != "ideal(k=3)" {
		t.Fatalf("String() = %q", got)
	}
}

func TestCutoffFromDPI(t *testing.T) {
	got, err := CutoffFromDPI(300, 1000, 1.5)
	if err != nil {
		t.Fatalf("CutoffFromDPI error: %v", err)
	}
	want := 1.5 * 1000 * 25.4 / 300
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("CutoffFromDPI = %v, want %v", got, want)
	}

	if _, err := CutoffFromDPI(0, 10, 1); !errors.Is(err, ErrInvalidParams) {
		t.Fatalf("err = %v, want ErrInvalidParams", err)
	}
}
