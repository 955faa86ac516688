package fft2d

import (
	"fmt"
	"sync"

	"github.com/cwbudde/algo-highlight/dsp/grid"
	"github.com/mjibson/go-dsp/fft"
)

// columnBuf holds pooled scratch for gathering one column.
type columnBuf struct {
	in  []complex128
	out []complex128
}

var columnPool = sync.Pool{
	New: func() any { return &columnBuf{} },
}

func getColumn(n int) *columnBuf {
	buf := columnPool.Get().(*columnBuf)
	if cap(buf.in) < n {
		buf.in = make([]complex128, n)
		buf.out = make([]complex128, n)
	}
	buf.in = buf.in[:n]
	buf.out = buf.out[:n]
	return buf
}

// Forward returns the unshifted 2D DFT of g.
func Forward(g grid.Complex, b Backend) (grid.Complex, error) {
	return transform(g, b, false)
}

// Inverse returns the unshifted, normalized inverse 2D DFT of g.
func Inverse(g grid.Complex, b Backend) (grid.Complex, error) {
	return transform(g, b, true)
}

// ForwardShifted transforms a real image and centers the zero frequency.
func ForwardShifted(img grid.Image, b Backend) (grid.Complex, error) {
	spec, err := Forward(grid.FromReal(img), b)
	if err != nil {
		return grid.Complex{}, err
	}
	return Shift(spec), nil
}

// InverseShifted undoes the centering of spec and inverse transforms it.
func InverseShifted(spec grid.Complex, b Backend) (grid.Complex, error) {
	return Inverse(Unshift(spec), b)
}

func transform(g grid.Complex, b Backend, inverse bool) (grid.Complex, error) {
	if err := g.Validate(); err != nil {
		return grid.Complex{}, err
	}

	switch b {
	case BackendAuto, BackendGonum:
		return transformRowCol(g, b, inverse)
	case BackendGoDSP:
		if inverse {
			return grid.FromComplexRows(fft.IFFT2(g.ToRows()))
		}
		return grid.FromComplexRows(fft.FFT2(g.ToRows()))
	default:
		return grid.Complex{}, fmt.Errorf("%w: %v", ErrUnsupportedBackend, b)
	}
}

func transformRowCol(g grid.Complex, b Backend, inverse bool) (grid.Complex, error) {
	rowPlan, err := newPlan(b, g.Cols)
	if err != nil {
		return grid.Complex{}, err
	}
	colPlan := rowPlan
	if g.Rows != g.Cols {
		colPlan, err = newPlan(b, g.Rows)
		if err != nil {
			return grid.Complex{}, err
		}
	}

	out := grid.NewComplex(g.Rows, g.Cols)
	for r := 0; r < g.Rows; r++ {
		src := g.Data[r*g.Cols : (r+1)*g.Cols]
		dst := out.Data[r*g.Cols : (r+1)*g.Cols]
		if err := run(rowPlan, dst, src, inverse); err != nil {
			return grid.Complex{}, err
		}
	}

	col := getColumn(g.Rows)
	defer columnPool.Put(col)

	for c := 0; c < g.Cols; c++ {
		for r := 0; r < g.Rows; r++ {
			col.in[r] = out.Data[r*g.Cols+c]
		}
		if err := run(colPlan, col.out, col.in, inverse); err != nil {
			return grid.Complex{}, err
		}
		for r := 0; r < g.Rows; r++ {
			out.Data[r*g.Cols+c] = col.out[r]
		}
	}
	return out, nil
}

func run(p plan, dst, src []complex128, inverse bool) error {
	if inverse {
		return p.Inverse(dst, src)
	}
	return p.Forward(dst, src)
}

// Shift moves the zero-frequency term from (0, 0) to (rows/2, cols/2).
func Shift(g grid.Complex) grid.Complex {
	return roll(g, g.Rows/2, g.Cols/2)
}

// Unshift is the inverse of Shift.
func Unshift(g grid.Complex) grid.Complex {
	return roll(g, g.Rows-g.Rows/2, g.Cols-g.Cols/2)
}

// roll returns g circularly shifted by (dr, dc): out[(r+dr)%R][(c+dc)%C] = g[r][c].
func roll(g grid.Complex, dr, dc int) grid.Complex {
	out := grid.NewComplex(g.Rows, g.Cols)
	for r := 0; r < g.Rows; r++ {
		dstRow := ((r + dr) % g.Rows) * g.Cols
		srcRow := r * g.Cols
		for c := 0; c < g.Cols; c++ {
			out.Data[dstRow+(c+dc)%g.Cols] = g.Data[srcRow+c]
		}
	}
	return out
}
