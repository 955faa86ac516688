package transfer

import "fmt"

// Default filter parameters: a first-order Butterworth low-pass with a
// cutoff radius of six frequency pixels.
const (
	DefaultKind   = KindButterworthLow
	DefaultCutoff = 6.0
	DefaultOrder  = 1.0
)

// Params bundles a filter selection with its numeric parameters.
type Params struct {
	Kind   Kind
	Cutoff float64
	Order  float64
}

// DefaultParams returns the default filter selection.
func DefaultParams() Params {
	return Params{Kind: DefaultKind, Cutoff: DefaultCutoff, Order: DefaultOrder}
}

// Build constructs the transfer function described by p.
func (p Params) Build() (Transfer, error) {
	return New(p.Kind, p.Cutoff, p.Order)
}

// String formats p for logs.
func (p Params) String() string {
	switch p.Kind {
	case KindNone:
		return p.Kind.String()
	case KindButterworthLow, KindButterworthHigh:
		return fmt.Sprintf("%s(k=%g, n=%g)", p.Kind, p.Cutoff, p.Order)
	default:
		return fmt.Sprintf("%s(k=%g)", p.Kind, p.Cutoff)
	}
}

// CutoffFromDPI converts a physical feature size into a cutoff radius for a
// spectrum of the given size scanned at dpi dots per inch. The sample pitch
// is 25.4/dpi mm and the frequency resolution 1/(size*pitch) cycles per mm,
// so a feature frequency of featureFreq cycles per mm falls featureFreq
// divided by that resolution pixels from the center.
func CutoffFromDPI(dpi float64, size int, featureFreq float64) (float64, error) {
	if !(dpi > 0) || size <= 0 || !(featureFreq > 0) {
		return 0, fmt.Errorf("%w: dpi=%v size=%d freq=%v", ErrInvalidParams, dpi, size, featureFreq)
	}
	pitch := 25.4 / dpi
	resolution := 1 / (float64(size) * pitch)
	return featureFreq / resolution, nil
}
