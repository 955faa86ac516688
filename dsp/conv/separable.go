package conv

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-highlight/dsp/grid"
)

// Border selects how samples outside the image are synthesized.
type Border int

const (
	// BorderReflect101 mirrors without repeating the edge sample: dcb|abcd|cba.
	BorderReflect101 Border = iota
	// BorderReplicate repeats the edge sample: aaa|abcd|ddd.
	BorderReplicate
	// BorderZero treats outside samples as zero.
	BorderZero
)

func (b Border) String() string {
	switch b {
	case BorderReflect101:
		return "reflect101"
	case BorderReplicate:
		return "replicate"
	case BorderZero:
		return "zero"
	default:
		return fmt.Sprintf("Border(%d)", int(b))
	}
}

// borderIndex maps i onto [0, n) or returns -1 for a zero sample.
func borderIndex(i, n int, b Border) int {
	if i >= 0 && i < n {
		return i
	}
	switch b {
	case BorderReplicate:
		return min(max(i, 0), n-1)
	case BorderZero:
		return -1
	default:
		if n == 1 {
			return 0
		}
		for i < 0 || i >= n {
			if i < 0 {
				i = -i
			} else {
				i = 2*n - 2 - i
			}
		}
		return i
	}
}

// Filter1D convolves x with an odd-length kernel centered on each sample
// and returns a slice of len(x). Outside samples follow border.
func Filter1D(x, kernel []float64, border Border) ([]float64, error) {
	if len(x) == 0 {
		return nil, ErrEmptyInput
	}
	if err := validateKernel(kernel); err != nil {
		return nil, err
	}

	out := make([]float64, len(x))
	filter1DTo(out, x, reversed(kernel), border)
	return out, nil
}

// filter1DTo assumes rev is already the reversed kernel.
func filter1DTo(dst, x, rev []float64, border Border) {
	n := len(x)
	half := len(rev) / 2

	ext := getScratch(n + 2*half)
	for i := range ext.data {
		if j := borderIndex(i-half, n, border); j >= 0 {
			ext.data[i] = x[j]
		} else {
			ext.data[i] = 0
		}
	}

	for i := range dst {
		dst[i] = vecmath.DotProduct(ext.data[i:i+len(rev)], rev)
	}
	scratchPool.Put(ext)
}

// Separable convolves img with rowKernel along each row and then with
// colKernel along each column. Both kernels must have odd length. The
// result has the shape of img; img is not modified.
func Separable(img grid.Image, rowKernel, colKernel []float64, border Border) (grid.Image, error) {
	if err := img.Validate(); err != nil {
		return grid.Image{}, err
	}
	if err := validateKernel(rowKernel); err != nil {
		return grid.Image{}, err
	}
	if err := validateKernel(colKernel); err != nil {
		return grid.Image{}, err
	}

	out := grid.New(img.Rows, img.Cols)
	rk := reversed(rowKernel)
	for r := range img.Rows {
		start := r * img.Cols
		filter1DTo(out.Data[start:start+img.Cols], img.Data[start:start+img.Cols], rk, border)
	}

	ck := reversed(colKernel)
	col := make([]float64, img.Rows)
	for c := range img.Cols {
		src := out.Col(c)
		filter1DTo(col, src, ck, border)
		for r, v := range col {
			out.Set(r, c, v)
		}
	}
	return out, nil
}

func validateKernel(kernel []float64) error {
	if len(kernel) == 0 {
		return ErrEmptyKernel
	}
	if len(kernel)%2 == 0 {
		return fmt.Errorf("%w: %d", ErrEvenKernel, len(kernel))
	}
	return nil
}

func reversed(k []float64) []float64 {
	out := make([]float64, len(k))
	for i, v := range k {
		out[len(k)-1-i] = v
	}
	return out
}
