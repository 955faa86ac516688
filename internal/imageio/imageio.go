// Package imageio loads images as grayscale grids and writes overlays and
// diagnostic images back to disk.
package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/cwbudde/algo-highlight/dsp/grid"
)

// ErrUnsupportedFormat reports an output extension with no encoder.
var ErrUnsupportedFormat = errors.New("imageio: unsupported format")

// Load decodes the image at path and converts it to grayscale in [0, 1].
// PNG, JPEG, GIF, TIFF, BMP and WebP inputs are recognized by content.
// maxSide > 0 downscales larger inputs first, see Fit.
func Load(path string, maxSide int) (grid.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return grid.Image{}, fmt.Errorf("failed to open image: %w", err)
	}
	defer file.Close()

	return Decode(file, maxSide)
}

// Decode reads an image from r and converts it to grayscale.
func Decode(r io.Reader, maxSide int) (grid.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return grid.Image{}, fmt.Errorf("failed to decode image: %w", err)
	}
	return Gray(Fit(img, maxSide)), nil
}

// Gray converts img to BT.601 luma in [0, 1] through color.Gray16Model,
// whose integer weights keep white at exactly 1. Channels are taken
// alpha-premultiplied, so transparent pixels read as black.
func Gray(img image.Image) grid.Image {
	b := img.Bounds()
	out := grid.New(b.Dy(), b.Dx())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			luma := color.Gray16Model.Convert(img.At(x, y)).(color.Gray16).Y
			out.Set(y-b.Min.Y, x-b.Min.X, float64(luma)/math.MaxUint16)
		}
	}
	return out
}

// GrayImage renders a grid with values in [0, 1] as a 16-bit gray image.
// Values outside the range are clamped.
func GrayImage(g grid.Image) *image.Gray16 {
	img := image.NewGray16(image.Rect(0, 0, g.Cols, g.Rows))
	for r := range g.Rows {
		for c := range g.Cols {
			v := g.At(r, c)
			var y uint16
			switch {
			case !(v > 0):
			case v >= 1:
				y = math.MaxUint16
			default:
				y = uint16(math.Round(v * math.MaxUint16))
			}
			img.SetGray16(c, r, color.Gray16{Y: y})
		}
	}
	return img
}

// Save encodes img to path, choosing the encoder from the extension:
// .png, .tif/.tiff or .bmp.
func Save(path string, img image.Image) error {
	ext := strings.ToLower(filepath.Ext(path))
	if !CanEncode(ext) {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}

	if err := Encode(file, ext, img); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// Encode writes img to w in the format named by ext (with or without the
// leading dot).
func Encode(w io.Writer, ext string, img image.Image) error {
	var err error
	switch normalizeExt(ext) {
	case "png":
		err = png.Encode(w, img)
	case "tif", "tiff":
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	case "bmp":
		err = bmp.Encode(w, eightBit(img))
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", normalizeExt(ext), err)
	}
	return nil
}

// eightBit converts img to a type the BMP encoder writes with alpha.
func eightBit(img image.Image) image.Image {
	switch m := img.(type) {
	case *image.Gray, *image.Paletted, *image.RGBA, *image.NRGBA:
		return m
	case *image.Gray16:
		dst := image.NewGray(m.Bounds())
		xdraw.Draw(dst, dst.Bounds(), m, m.Bounds().Min, xdraw.Src)
		return dst
	default:
		dst := image.NewNRGBA(img.Bounds())
		xdraw.Draw(dst, dst.Bounds(), img, img.Bounds().Min, xdraw.Src)
		return dst
	}
}

// Fit scales img down so neither side exceeds maxSide, keeping the aspect
// ratio. Images already small enough, and maxSide <= 0, are returned as is.
func Fit(img image.Image, maxSide int) image.Image {
	b := img.Bounds()
	if maxSide <= 0 || (b.Dx() <= maxSide && b.Dy() <= maxSide) {
		return img
	}

	scale := float64(maxSide) / float64(max(b.Dx(), b.Dy()))
	w := max(1, int(math.Round(float64(b.Dx())*scale)))
	h := max(1, int(math.Round(float64(b.Dy())*scale)))

	dst := image.NewNRGBA64(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}

// CanEncode reports whether Save supports the extension.
func CanEncode(ext string) bool {
	switch normalizeExt(ext) {
	case "png", "tif", "tiff", "bmp":
		return true
	default:
		return false
	}
}

func normalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
