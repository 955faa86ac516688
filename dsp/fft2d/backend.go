package fft2d

import (
	"errors"
	"fmt"
	"strings"

	algofft "github.com/MeKo-Christian/algo-fft"
	"gonum.org/v1/gonum/dsp/fourier"
)

// Errors returned by transform functions.
var (
	ErrBackend            = errors.New("fft2d: backend failure")
	ErrUnsupportedBackend = errors.New("fft2d: unsupported backend")
)

// Backend selects the FFT implementation.
type Backend int

const (
	BackendAuto Backend = iota
	BackendGonum
	BackendGoDSP
)

var backendNames = map[Backend]string{
	BackendAuto:  "auto",
	BackendGonum: "gonum",
	BackendGoDSP: "godsp",
}

// String returns the backend selector name.
func (b Backend) String() string {
	if name, ok := backendNames[b]; ok {
		return name
	}
	return fmt.Sprintf("Backend(%d)", int(b))
}

// ParseBackend resolves a selector name (auto, gonum, godsp).
func ParseBackend(s string) (Backend, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for b, name := range backendNames {
		if name == key {
			return b, nil
		}
	}
	if key == "go-dsp" {
		return BackendGoDSP, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedBackend, s)
}

// plan is a reusable one-dimensional complex transform of fixed length.
// Inverse is normalized by 1/n.
type plan interface {
	Forward(dst, src []complex128) error
	Inverse(dst, src []complex128) error
}

func newPlan(b Backend, n int) (plan, error) {
	switch b {
	case BackendAuto:
		if isPowerOf2(n) {
			p, err := algofft.NewPlan64(n)
			if err == nil {
				return algoPlan{p: p}, nil
			}
		}
		return newGonumPlan(n), nil
	case BackendGonum:
		return newGonumPlan(n), nil
	default:
		return nil, fmt.Errorf("%w: %v has no 1D plans", ErrUnsupportedBackend, b)
	}
}

type algoPlan struct {
	p *algofft.Plan[complex128]
}

func (a algoPlan) Forward(dst, src []complex128) error {
	if err := a.p.Forward(dst, src); err != nil {
		return fmt.Errorf("%w: %w", ErrBackend, err)
	}
	return nil
}

func (a algoPlan) Inverse(dst, src []complex128) error {
	if err := a.p.Inverse(dst, src); err != nil {
		return fmt.Errorf("%w: %w", ErrBackend, err)
	}
	return nil
}

// gonumPlan wraps fourier.CmplxFFT, whose transforms are both unnormalized.
type gonumPlan struct {
	t     *fourier.CmplxFFT
	scale complex128
}

func newGonumPlan(n int) gonumPlan {
	return gonumPlan{t: fourier.NewCmplxFFT(n), scale: complex(1/float64(n), 0)}
}

func (g gonumPlan) Forward(dst, src []complex128) error {
	g.t.Coefficients(dst, src)
	return nil
}

func (g gonumPlan) Inverse(dst, src []complex128) error {
	g.t.Sequence(dst, src)
	for i := range dst {
		dst[i] *= g.scale
	}
	return nil
}

// isPowerOf2 returns true if n is a power of 2.
func isPowerOf2(n int) bool {
	return n > 0 && (n&(n-1)) == 0
}
