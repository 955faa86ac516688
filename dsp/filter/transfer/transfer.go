package transfer

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-highlight/dsp/core"
	"github.com/cwbudde/algo-highlight/dsp/grid"
)

// Errors returned by transfer constructors and selectors.
var (
	ErrUnsupportedFilter = errors.New("transfer: unsupported filter")
	ErrInvalidParams     = errors.New("transfer: invalid parameters")
)

// Kind identifies a transfer function family.
type Kind int

const (
	KindNone Kind = iota
	KindIdeal
	KindButterworthLow
	KindButterworthHigh
	KindExponential
)

var kindNames = []string{
	KindNone:            "none",
	KindIdeal:           "ideal",
	KindButterworthLow:  "butterworth-low",
	KindButterworthHigh: "butterworth-high",
	KindExponential:     "exponential",
}

var kindAliases = map[string]Kind{
	"identity":    KindNone,
	"butterworth": KindButterworthLow,
	"but":         KindButterworthLow,
	"but-lp":      KindButterworthLow,
	"but-hp":      KindButterworthHigh,
	"gaussian":    KindExponential,
	"gauss":       KindExponential,
	"exp":         KindExponential,
}

// String returns the canonical selector name.
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Kinds returns every supported kind in declaration order.
func Kinds() []Kind {
	return []Kind{KindNone, KindIdeal, KindButterworthLow, KindButterworthHigh, KindExponential}
}

// ParseKind resolves a selector name or alias, ignoring case and
// surrounding space. Unknown selectors fail with ErrUnsupportedFilter.
func ParseKind(s string) (Kind, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, name := range kindNames {
		if name == key {
			return Kind(i), nil
		}
	}
	if k, ok := kindAliases[key]; ok {
		return k, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedFilter, s)
}

// Transfer is a radially symmetric filter kernel.
type Transfer interface {
	Kind() Kind
	// Gain returns the real scale factor at distance d from the spectrum center.
	Gain(d float64) float64
}

// None passes every frequency unchanged.
type None struct{}

func (None) Kind() Kind { return KindNone }

func (None) Gain(float64) float64 { return 1 }

// Ideal passes frequencies strictly inside the cutoff radius and removes the rest.
type Ideal struct {
	Cutoff float64
}

func (Ideal) Kind() Kind { return KindIdeal }

func (f Ideal) Gain(d float64) float64 {
	if core.InCircle(0, 0, f.Cutoff, d, 0) {
		return 1
	}
	return 0
}

// ButterworthLow is the smooth low-pass 1/(1+(d/k)^n).
type ButterworthLow struct {
	Cutoff float64
	Order  float64
}

func (ButterworthLow) Kind() Kind { return KindButterworthLow }

func (f ButterworthLow) Gain(d float64) float64 {
	return 1 / (1 + math.Pow(d/f.Cutoff, f.Order))
}

// ButterworthHigh is the complement of ButterworthLow.
type ButterworthHigh struct {
	Cutoff float64
	Order  float64
}

func (ButterworthHigh) Kind() Kind { return KindButterworthHigh }

func (f ButterworthHigh) Gain(d float64) float64 {
	return 1 - 1/(1+math.Pow(d/f.Cutoff, f.Order))
}

// Exponential is the Gaussian low-pass exp(-d^2/(2k^2)).
type Exponential struct {
	Cutoff float64
}

func (Exponential) Kind() Kind { return KindExponential }

func (f Exponential) Gain(d float64) float64 {
	return math.Exp(-(d * d) / (2 * f.Cutoff * f.Cutoff))
}

// New builds the transfer function of the given kind. cutoff must be > 0 for
// every kind except none; order must be > 0 for the Butterworth kinds.
func New(kind Kind, cutoff, order float64) (Transfer, error) {
	if kind < 0 || int(kind) >= len(kindNames) {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFilter, kind)
	}
	if kind == KindNone {
		return None{}, nil
	}
	if !(cutoff > 0) || math.IsInf(cutoff, 0) {
		return nil, fmt.Errorf("%w: %s cutoff must be > 0 and finite: %v", ErrInvalidParams, kind, cutoff)
	}

	switch kind {
	case KindIdeal:
		return Ideal{Cutoff: cutoff}, nil
	case KindExponential:
		return Exponential{Cutoff: cutoff}, nil
	}

	if !(order > 0) || math.IsInf(order, 0) {
		return nil, fmt.Errorf("%w: %s order must be > 0 and finite: %v", ErrInvalidParams, kind, order)
	}
	if kind == KindButterworthLow {
		return ButterworthLow{Cutoff: cutoff, Order: order}, nil
	}
	return ButterworthHigh{Cutoff: cutoff, Order: order}, nil
}

// Apply scales the spectrum value s by t's gain at distance d. A zero gain
// yields an exact zero.
func Apply(t Transfer, s complex128, d float64) complex128 {
	g := t.Gain(d)
	if g == 0 {
		return 0
	}
	return s * complex(g, 0)
}

// Center returns the zero-frequency coordinate of a centered rows x cols spectrum.
func Center(rows, cols int) (cy, cx float64) {
	return float64(rows) / 2, float64(cols) / 2
}

// Evaluate returns the filtered value of spectrum coordinate (i, j).
func Evaluate(t Transfer, spec grid.Complex, i, j int) complex128 {
	cy, cx := Center(spec.Rows, spec.Cols)
	return Apply(t, spec.At(i, j), core.Distance(float64(i)-cy, float64(j)-cx))
}

// Response returns the gain of t over a centered rows x cols spectrum,
// useful for inspecting the filter shape.
func Response(t Transfer, rows, cols int) grid.Image {
	cy, cx := Center(rows, cols)
	return grid.New(rows, cols).Map(func(r, c int, _ float64) float64 {
		return t.Gain(core.Distance(float64(r)-cy, float64(c)-cx))
	})
}
