package highlight

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/cwbudde/algo-highlight/dsp/dither"
	"github.com/cwbudde/algo-highlight/dsp/grid"
)

// ErrBitDepth reports a quantizer that does not produce 8-bit levels.
var ErrBitDepth = errors.New("highlight: quantizer must be 8-bit")

// Overlay is a constant-color RGBA image whose alpha channel carries the
// highlight mask. It implements image.Image with non-premultiplied 16-bit
// colors.
type Overlay struct {
	Tint  Tint
	Alpha grid.Image
}

// NewOverlay pairs an alpha mask with a tint. Alpha values are clamped to
// [0, 1] when converted to colors.
func NewOverlay(alpha grid.Image, tint Tint) (Overlay, error) {
	if err := alpha.Validate(); err != nil {
		return Overlay{}, err
	}
	if err := tint.Validate(); err != nil {
		return Overlay{}, err
	}
	return Overlay{Tint: tint, Alpha: alpha}, nil
}

// Rows returns the overlay height.
func (o Overlay) Rows() int { return o.Alpha.Rows }

// Cols returns the overlay width.
func (o Overlay) Cols() int { return o.Alpha.Cols }

// RGBA returns the float channels at row r, column c.
func (o Overlay) RGBA(r, c int) (red, green, blue, alpha float64) {
	return o.Tint.R, o.Tint.G, o.Tint.B, o.Alpha.At(r, c)
}

// ColorModel implements image.Image.
func (o Overlay) ColorModel() color.Model { return color.NRGBA64Model }

// Bounds implements image.Image.
func (o Overlay) Bounds() image.Rectangle { return image.Rect(0, 0, o.Alpha.Cols, o.Alpha.Rows) }

// At implements image.Image.
func (o Overlay) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}.In(o.Bounds())) {
		return color.NRGBA64{}
	}
	return o.color(o.Alpha.At(y, x))
}

func (o Overlay) color(alpha float64) color.NRGBA64 {
	return color.NRGBA64{
		R: to16(o.Tint.R),
		G: to16(o.Tint.G),
		B: to16(o.Tint.B),
		A: to16(alpha),
	}
}

// ToNRGBA64 renders the overlay into a freshly allocated image.
func (o Overlay) ToNRGBA64() *image.NRGBA64 {
	img := image.NewNRGBA64(o.Bounds())
	for r := range o.Alpha.Rows {
		for c := range o.Alpha.Cols {
			img.SetNRGBA64(c, r, o.color(o.Alpha.At(r, c)))
		}
	}
	return img
}

// ToNRGBA renders the overlay at 8 bits per channel, quantizing the alpha
// mask with q. The tint is rounded; only alpha carries gradients worth
// dithering. A nil q uses dither.NewQuantizer defaults.
func (o Overlay) ToNRGBA(q *dither.Quantizer) (*image.NRGBA, error) {
	if q == nil {
		var err error
		if q, err = dither.NewQuantizer(); err != nil {
			return nil, err
		}
	}
	if q.BitDepth() != 8 {
		return nil, fmt.Errorf("%w: got %d bits", ErrBitDepth, q.BitDepth())
	}
	levels, err := q.Quantize(o.Alpha)
	if err != nil {
		return nil, err
	}

	red, green, blue := to8(o.Tint.R), to8(o.Tint.G), to8(o.Tint.B)
	img := image.NewNRGBA(o.Bounds())
	for i, a := range levels {
		px := img.Pix[4*i : 4*i+4 : 4*i+4]
		px[0], px[1], px[2], px[3] = red, green, blue, uint8(a)
	}
	return img, nil
}

func to8(v float64) uint8 {
	return uint8(to16(v) >> 8)
}

func to16(v float64) uint16 {
	if !(v > 0) {
		return 0
	}
	if v >= 1 {
		return math.MaxUint16
	}
	return uint16(math.Round(v * math.MaxUint16))
}
