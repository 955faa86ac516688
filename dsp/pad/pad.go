// Package pad extends images before and after spectral work.
//
// Symmetric mirror padding suppresses the wrap-around discontinuity the
// discrete Fourier transform sees at image edges. Zero padding squares and
// enlarges the canvas so filtered structure near the border has room to
// spread without being cut off.
package pad

import "github.com/cwbudde/algo-highlight/dsp/grid"

// Symmetric returns a (2*rows) x (2*cols) image whose bottom and right halves
// mirror img, edge sample included: output row 2*rows-1-i equals row i.
func Symmetric(img grid.Image) grid.Image {
	rows, cols := img.Rows, img.Cols
	out := grid.New(2*rows, 2*cols)
	for r := 0; r < out.Rows; r++ {
		sr := mirror(r, rows)
		for c := 0; c < out.Cols; c++ {
			out.Data[r*out.Cols+c] = img.Data[sr*cols+mirror(c, cols)]
		}
	}
	return out
}

// ZeroSquare embeds img in a zero canvas. Rows gain pad+diffC on both
// sides and columns gain pad+diffR, where pad = max(rows, cols),
// diffR = max(rows-cols, 0)/2 and diffC = max(cols-rows, 0)/2. The extra
// margin therefore lands on the shorter axis, which squares the canvas
// (up to the parity of |rows-cols|) and centers the content.
func ZeroSquare(img grid.Image) grid.Image {
	padRows, padCols := zeroSquareMargins(img.Rows, img.Cols)
	return Zero(img, padRows, padCols)
}

// ZeroSquareSize returns the shape ZeroSquare produces for a rows x cols
// image.
func ZeroSquareSize(rows, cols int) (outRows, outCols int) {
	padRows, padCols := zeroSquareMargins(rows, cols)
	return rows + 2*padRows, cols + 2*padCols
}

func zeroSquareMargins(rows, cols int) (padRows, padCols int) {
	diffR := max(rows-cols, 0) / 2
	diffC := max(cols-rows, 0) / 2
	size := max(rows, cols)
	return size + diffC, size + diffR
}

// ZeroHalf pads rows by rows/2 and columns by cols/2 on both sides.
func ZeroHalf(img grid.Image) grid.Image {
	return Zero(img, img.Rows/2, img.Cols/2)
}

// Zero returns img surrounded by padRows zero rows above and below and
// padCols zero columns left and right. Negative amounts are treated as zero.
func Zero(img grid.Image, padRows, padCols int) grid.Image {
	padRows = max(padRows, 0)
	padCols = max(padCols, 0)
	out := grid.New(img.Rows+2*padRows, img.Cols+2*padCols)
	for r := 0; r < img.Rows; r++ {
		dst := (r+padRows)*out.Cols + padCols
		copy(out.Data[dst:dst+img.Cols], img.Data[r*img.Cols:(r+1)*img.Cols])
	}
	return out
}

// mirror maps index i of a symmetric extension back into [0, n).
func mirror(i, n int) int {
	period := 2 * n
	i %= period
	if i < 0 {
		i += period
	}
	if i >= n {
		return period - 1 - i
	}
	return i
}
