package grid

import (
	"errors"
	"fmt"
	"math"
)

// ErrInputShape reports an empty, ragged, or otherwise malformed grid.
var ErrInputShape = errors.New("grid: invalid input shape")

// Image is a single-channel rows x cols grid of float64 samples.
type Image struct {
	Rows int
	Cols int
	Data []float64
}

// New returns a zero-filled Image. Negative dimensions are treated as zero.
func New(rows, cols int) Image {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	return Image{Rows: rows, Cols: cols, Data: make([]float64, rows*cols)}
}

// Filled returns an Image with every sample set to v.
func Filled(rows, cols int, v float64) Image {
	img := New(rows, cols)
	for i := range img.Data {
		img.Data[i] = v
	}
	return img
}

// FromRows copies a slice of equal-length rows into a new Image.
func FromRows(rows [][]float64) (Image, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return Image{}, fmt.Errorf("%w: empty", ErrInputShape)
	}
	cols := len(rows[0])
	img := New(len(rows), cols)
	for r, row := range rows {
		if len(row) != cols {
			return Image{}, fmt.Errorf("%w: row %d has %d columns, want %d", ErrInputShape, r, len(row), cols)
		}
		copy(img.Data[r*cols:], row)
	}
	return img, nil
}

// Validate reports ErrInputShape unless the Image has positive dimensions
// backed by exactly Rows*Cols samples.
func (g Image) Validate() error {
	if g.Rows <= 0 || g.Cols <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInputShape, g.Rows, g.Cols)
	}
	if len(g.Data) != g.Rows*g.Cols {
		return fmt.Errorf("%w: %d samples for %dx%d", ErrInputShape, len(g.Data), g.Rows, g.Cols)
	}
	return nil
}

// Len returns the number of samples.
func (g Image) Len() int { return len(g.Data) }

// SameShape reports whether g and o have identical dimensions.
func (g Image) SameShape(o Image) bool {
	return g.Rows == o.Rows && g.Cols == o.Cols
}

// At returns the sample at row r, column c.
func (g Image) At(r, c int) float64 { return g.Data[r*g.Cols+c] }

// Set stores v at row r, column c.
func (g Image) Set(r, c int, v float64) { g.Data[r*g.Cols+c] = v }

// Clone returns a deep copy.
func (g Image) Clone() Image {
	out := Image{Rows: g.Rows, Cols: g.Cols, Data: make([]float64, len(g.Data))}
	copy(out.Data, g.Data)
	return out
}

// Row returns a copy of row r.
func (g Image) Row(r int) []float64 {
	out := make([]float64, g.Cols)
	copy(out, g.Data[r*g.Cols:(r+1)*g.Cols])
	return out
}

// Col returns a copy of column c.
func (g Image) Col(c int) []float64 {
	out := make([]float64, g.Rows)
	for r := range out {
		out[r] = g.Data[r*g.Cols+c]
	}
	return out
}

// ToRows returns the samples as a freshly allocated slice of rows.
func (g Image) ToRows() [][]float64 {
	out := make([][]float64, g.Rows)
	for r := range out {
		out[r] = g.Row(r)
	}
	return out
}

// Crop returns the rows x cols window whose upper-left corner is (r0, c0).
// The window is clamped to the Image bounds.
func (g Image) Crop(r0, c0, rows, cols int) Image {
	r0 = clampIndex(r0, g.Rows)
	c0 = clampIndex(c0, g.Cols)
	rows = min(rows, g.Rows-r0)
	cols = min(cols, g.Cols-c0)
	out := New(rows, cols)
	for r := 0; r < out.Rows; r++ {
		copy(out.Data[r*out.Cols:(r+1)*out.Cols], g.Data[(r0+r)*g.Cols+c0:])
	}
	return out
}

// Map returns a new Image whose samples are fn applied to each coordinate
// and sample of g.
func (g Image) Map(fn func(r, c int, v float64) float64) Image {
	out := New(g.Rows, g.Cols)
	for r := 0; r < g.Rows; r++ {
		base := r * g.Cols
		for c := 0; c < g.Cols; c++ {
			out.Data[base+c] = fn(r, c, g.Data[base+c])
		}
	}
	return out
}

// WithData returns an Image of g's shape backed by data.
// The caller hands ownership of data to the result.
func (g Image) WithData(data []float64) Image {
	return Image{Rows: g.Rows, Cols: g.Cols, Data: data}
}

// CountNonFinite returns the number of NaN or Inf samples.
func (g Image) CountNonFinite() int {
	n := 0
	for _, v := range g.Data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			n++
		}
	}
	return n
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}
