package grid

import (
	"fmt"
	"math/cmplx"
)

// Complex is a rows x cols grid of complex128 samples, typically a 2D spectrum.
type Complex struct {
	Rows int
	Cols int
	Data []complex128
}

// NewComplex returns a zero-filled Complex grid.
func NewComplex(rows, cols int) Complex {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	return Complex{Rows: rows, Cols: cols, Data: make([]complex128, rows*cols)}
}

// FromReal lifts an Image into a Complex grid with zero imaginary parts.
func FromReal(img Image) Complex {
	out := NewComplex(img.Rows, img.Cols)
	for i, v := range img.Data {
		out.Data[i] = complex(v, 0)
	}
	return out
}

// FromComplexRows copies a slice of equal-length complex rows into a new grid.
func FromComplexRows(rows [][]complex128) (Complex, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return Complex{}, fmt.Errorf("%w: empty", ErrInputShape)
	}
	cols := len(rows[0])
	out := NewComplex(len(rows), cols)
	for r, row := range rows {
		if len(row) != cols {
			return Complex{}, fmt.Errorf("%w: row %d has %d columns, want %d", ErrInputShape, r, len(row), cols)
		}
		copy(out.Data[r*cols:], row)
	}
	return out, nil
}

// Validate reports ErrInputShape unless the grid is non-empty and consistent.
func (g Complex) Validate() error {
	if g.Rows <= 0 || g.Cols <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInputShape, g.Rows, g.Cols)
	}
	if len(g.Data) != g.Rows*g.Cols {
		return fmt.Errorf("%w: %d samples for %dx%d", ErrInputShape, len(g.Data), g.Rows, g.Cols)
	}
	return nil
}

// At returns the sample at row r, column c.
func (g Complex) At(r, c int) complex128 { return g.Data[r*g.Cols+c] }

// Set stores v at row r, column c.
func (g Complex) Set(r, c int, v complex128) { g.Data[r*g.Cols+c] = v }

// Clone returns a deep copy.
func (g Complex) Clone() Complex {
	out := Complex{Rows: g.Rows, Cols: g.Cols, Data: make([]complex128, len(g.Data))}
	copy(out.Data, g.Data)
	return out
}

// ToRows returns the samples as a freshly allocated slice of rows.
func (g Complex) ToRows() [][]complex128 {
	out := make([][]complex128, g.Rows)
	for r := range out {
		out[r] = make([]complex128, g.Cols)
		copy(out[r], g.Data[r*g.Cols:(r+1)*g.Cols])
	}
	return out
}

// Real returns the real parts as an Image.
func (g Complex) Real() Image {
	out := New(g.Rows, g.Cols)
	for i, v := range g.Data {
		out.Data[i] = real(v)
	}
	return out
}

// Map returns a new grid whose samples are fn applied to each coordinate and
// sample of g.
func (g Complex) Map(fn func(r, c int, v complex128) complex128) Complex {
	out := NewComplex(g.Rows, g.Cols)
	g.MapRowsInto(out, 0, g.Rows, fn)
	return out
}

// MapRowsInto writes fn over rows [r0, r1) of g into dst, which must have
// g's shape. Disjoint row ranges may be mapped concurrently.
func (g Complex) MapRowsInto(dst Complex, r0, r1 int, fn func(r, c int, v complex128) complex128) {
	for r := r0; r < r1; r++ {
		base := r * g.Cols
		for c := 0; c < g.Cols; c++ {
			dst.Data[base+c] = fn(r, c, g.Data[base+c])
		}
	}
}

// CountNonFinite returns the number of samples with a NaN or Inf component.
func (g Complex) CountNonFinite() int {
	n := 0
	for _, v := range g.Data {
		if cmplx.IsNaN(v) || cmplx.IsInf(v) {
			n++
		}
	}
	return n
}
