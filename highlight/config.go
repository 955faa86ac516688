package highlight

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-highlight/dsp/fft2d"
	"github.com/cwbudde/algo-highlight/dsp/filter/transfer"
)

var (
	// ErrInvalidTint reports a tint component outside [0, 1].
	ErrInvalidTint = errors.New("highlight: invalid tint")
	// ErrInvalidConfig reports an unknown mode or border selection, or
	// unusable blur parameters.
	ErrInvalidConfig = errors.New("highlight: invalid config")
)

// Mode selects the pipeline.
type Mode int

const (
	// ModeSpectral filters in the frequency domain.
	ModeSpectral Mode = iota
	// ModeSimple blurs with a spatial Gaussian kernel.
	ModeSimple
)

func (m Mode) String() string {
	switch m {
	case ModeSpectral:
		return "spectral"
	case ModeSimple:
		return "simple"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode maps "spectral" or "simple" to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "spectral", "fft", "":
		return ModeSpectral, nil
	case "simple", "blur":
		return ModeSimple, nil
	default:
		return 0, fmt.Errorf("%w: mode %q", ErrInvalidConfig, s)
	}
}

// BorderMode selects which border lines feed the offset subtracted before
// clipping.
type BorderMode int

const (
	// BorderReference samples the top row, the left column and the bottom
	// row. The right column is never sampled.
	BorderReference BorderMode = iota
	// BorderAllEdges samples all four border lines.
	BorderAllEdges
)

func (b BorderMode) String() string {
	switch b {
	case BorderReference:
		return "reference"
	case BorderAllEdges:
		return "all"
	default:
		return fmt.Sprintf("BorderMode(%d)", int(b))
	}
}

// ParseBorderMode maps "reference" or "all" to a BorderMode.
func ParseBorderMode(s string) (BorderMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "reference", "ref", "":
		return BorderReference, nil
	case "all", "all-edges", "all_edges":
		return BorderAllEdges, nil
	default:
		return 0, fmt.Errorf("%w: border mode %q", ErrInvalidConfig, s)
	}
}

// Tint is the constant overlay color, each channel in [0, 1].
type Tint struct {
	R, G, B float64
}

// DefaultTint is a light blue.
var DefaultTint = Tint{R: 0.25, G: 0.60, B: 1.00}

// Validate reports ErrInvalidTint for any channel outside [0, 1] or NaN.
func (t Tint) Validate() error {
	for _, v := range []float64{t.R, t.G, t.B} {
		if !(v >= 0 && v <= 1) {
			return fmt.Errorf("%w: (%g, %g, %g)", ErrInvalidTint, t.R, t.G, t.B)
		}
	}
	return nil
}

func (t Tint) String() string {
	return fmt.Sprintf("%.2f,%.2f,%.2f", t.R, t.G, t.B)
}

// ParseTint parses "r,g,b" with components in [0, 1].
func ParseTint(s string) (Tint, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return Tint{}, fmt.Errorf("%w: %q (want r,g,b)", ErrInvalidTint, s)
	}

	var vals [3]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return Tint{}, fmt.Errorf("%w: %q: %v", ErrInvalidTint, s, err)
		}
		vals[i] = v
	}

	t := Tint{R: vals[0], G: vals[1], B: vals[2]}
	return t, t.Validate()
}

// Default simple-mode blur parameters.
const (
	DefaultBlurSize  = 65
	DefaultBlurSigma = 2.0
)

// Config holds every setting of a highlight pass.
type Config struct {
	Mode   Mode
	Filter transfer.Params
	Tint   Tint
	Border BorderMode

	// Workers splits the spectral transfer pass across goroutines.
	Workers int
	Backend fft2d.Backend
	// KeepSpectrum retains the filtered spectrum in the Report.
	KeepSpectrum bool

	// BlurSize is the odd Gaussian kernel length used by ModeSimple;
	// BlurSigma <= 0 derives sigma from the size.
	BlurSize  int
	BlurSigma float64
}

// DefaultConfig returns the spectral pipeline with a first-order
// Butterworth low-pass of cutoff 6 and the default tint.
func DefaultConfig() Config {
	return Config{
		Mode:      ModeSpectral,
		Filter:    transfer.DefaultParams(),
		Tint:      DefaultTint,
		Border:    BorderReference,
		Workers:   1,
		Backend:   fft2d.BackendAuto,
		BlurSize:  DefaultBlurSize,
		BlurSigma: DefaultBlurSigma,
	}
}

// Validate checks every field that a pass would reject later.
func (c Config) Validate() error {
	if err := c.Tint.Validate(); err != nil {
		return err
	}

	switch c.Mode {
	case ModeSpectral:
		if _, err := c.Filter.Build(); err != nil {
			return err
		}
	case ModeSimple:
		if c.BlurSize <= 0 || c.BlurSize%2 == 0 {
			return fmt.Errorf("%w: blur size %d must be odd and > 0", ErrInvalidConfig, c.BlurSize)
		}
		if math.IsNaN(c.BlurSigma) || math.IsInf(c.BlurSigma, 0) {
			return fmt.Errorf("%w: blur sigma %v", ErrInvalidConfig, c.BlurSigma)
		}
	default:
		return fmt.Errorf("%w: mode %v", ErrInvalidConfig, c.Mode)
	}

	if c.Border != BorderReference && c.Border != BorderAllEdges {
		return fmt.Errorf("%w: border mode %v", ErrInvalidConfig, c.Border)
	}
	return nil
}
