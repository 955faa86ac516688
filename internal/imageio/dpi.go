package imageio

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrNoResolution reports a file without usable resolution metadata.
var ErrNoResolution = errors.New("imageio: no resolution metadata")

// TIFF tags and field types used for resolution lookup.
const (
	tagXResolution    = 282
	tagYResolution    = 283
	tagResolutionUnit = 296

	typeShort    = 3
	typeRational = 5

	unitCentimeter = 3
)

// DPI reads the horizontal resolution of a TIFF file in dots per inch,
// falling back to the vertical one. Other formats report ErrNoResolution.
func DPI(path string) (float64, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	return TIFFDPI(file)
}

// TIFFDPI reads the resolution tags of the first IFD in r.
func TIFFDPI(r io.ReaderAt) (float64, error) {
	header := make([]byte, 8)
	if _, err := r.ReadAt(header, 0); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrNoResolution, err)
	}

	var order binary.ByteOrder
	switch string(header[:2]) {
	case "II":
		order = binary.LittleEndian
	case "MM":
		order = binary.BigEndian
	default:
		return 0, fmt.Errorf("%w: not a TIFF file", ErrNoResolution)
	}

	ifd := int64(order.Uint32(header[4:8]))
	count := make([]byte, 2)
	if _, err := r.ReadAt(count, ifd); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrNoResolution, err)
	}

	var xRes, yRes float64
	unit := uint16(2)
	entry := make([]byte, 12)
	for i := range int64(order.Uint16(count)) {
		if _, err := r.ReadAt(entry, ifd+2+12*i); err != nil {
			return 0, fmt.Errorf("%w: %v", ErrNoResolution, err)
		}
		tag := order.Uint16(entry[0:2])
		typ := order.Uint16(entry[2:4])

		switch {
		case tag == tagXResolution && typ == typeRational:
			xRes = readRational(r, order, int64(order.Uint32(entry[8:12])))
		case tag == tagYResolution && typ == typeRational:
			yRes = readRational(r, order, int64(order.Uint32(entry[8:12])))
		case tag == tagResolutionUnit && typ == typeShort:
			// SHORT values are left-justified in the value field.
			unit = order.Uint16(entry[8:10])
		}
	}

	dpi := xRes
	if dpi == 0 {
		dpi = yRes
	}
	if !(dpi > 0) {
		return 0, ErrNoResolution
	}
	if unit == unitCentimeter {
		dpi *= 2.54
	}
	return dpi, nil
}

func readRational(r io.ReaderAt, order binary.ByteOrder, off int64) float64 {
	buf := make([]byte, 8)
	if _, err := r.ReadAt(buf, off); err != nil {
		return 0
	}
	num := order.Uint32(buf[0:4])
	den := order.Uint32(buf[4:8])
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den)
}
