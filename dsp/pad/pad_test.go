package pad

import (
	"testing"

	"github.com/cwbudde/algo-highlight/dsp/grid"
)

func TestSymmetric(t *testing.T) {
	img, _ := grid.FromRows([][]float64{
		{1, 2, 3},
		{4, 5, 6},
	})

	got := Symmetric(img)
	if got.Rows != 4 || got.Cols != 6 {
		t.Fatalf("shape = %dx%d, want 4x6", got.Rows, got.Cols)
	}

	want := [][]float64{
		{1, 2, 3, 3, 2, 1},
		{4, 5, 6, 6, 5, 4},
		{4, 5, 6, 6, 5, 4},
		{1, 2, 3, 3, 2, 1},
	}
	for r := range want {
		for c := range want[r] {
			if got.At(r, c) != want[r][c] {
				t.Fatalf("At(%d,%d) = %v, want %v", r, c, got.At(r, c), want[r][c])
			}
		}
	}
}

func TestSymmetricUpperLeftIsOriginal(t *testing.T) {
	img := grid.New(3, 5)
	for i := range img.Data {
		img.Data[i] = float64(i)
	}

	back := Symmetric(img).Crop(0, 0, 3, 5)
	for i := range img.Data {
		if back.Data[i] != img.Data[i] {
			t.Fatalf("index %d: got %v, want %v", i, back.Data[i], img.Data[i])
		}
	}
}

func TestZeroSquare(t *testing.T) {
	tests := []struct {
		name       string
		rows, cols int
		wantRows   int
		wantCols   int
		offR, offC int
	}{
		{name: "square", rows: 4, cols: 4, wantRows: 12, wantCols: 12, offR: 4, offC: 4},
		{name: "tall", rows: 6, cols: 2, wantRows: 18, wantCols: 18, offR: 6, offC: 8},
		{name: "wide", rows: 2, cols: 6, wantRows: 18, wantCols: 18, offR: 8, offC: 6},
		{name: "odd difference", rows: 5, cols: 2, wantRows: 15, wantCols: 14, offR: 5, offC: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := grid.Filled(tt.rows, tt.cols, 1)
			got := ZeroSquare(img)
			if got.Rows != tt.wantRows || got.Cols != tt.wantCols {
				t.Fatalf("shape = %dx%d, want %dx%d", got.Rows, got.Cols, tt.wantRows, tt.wantCols)
			}
			if r, c := ZeroSquareSize(tt.rows, tt.cols); r != got.Rows || c != got.Cols {
				t.Fatalf("ZeroSquareSize = %dx%d, want %dx%d", r, c, got.Rows, got.Cols)
			}

			sum := 0.0
			for _, v := range got.Data {
				sum += v
			}
			if sum != float64(tt.rows*tt.cols) {
				t.Fatalf("content sum = %v, want %d", sum, tt.rows*tt.cols)
			}
			if got.At(tt.offR, tt.offC) != 1 || got.At(tt.offR-1, tt.offC) != 0 || got.At(tt.offR, tt.offC-1) != 0 {
				t.Fatalf("content not anchored at (%d,%d)", tt.offR, tt.offC)
			}
		})
	}
}

func TestZeroHalf(t *testing.T) {
	img := grid.Filled(4, 6, 0.5)
	got := ZeroHalf(img)
	if got.Rows != 8 || got.Cols != 12 {
		t.Fatalf("shape = %dx%d, want 8x12", got.Rows, got.Cols)
	}
	if got.At(2, 3) != 0.5 || got.At(1, 3) != 0 || got.At(2, 2) != 0 {
		t.Fatal("content not centered")
	}
}

func TestZeroNegativeAmounts(t *testing.T) {
	img := grid.Filled(2, 2, 1)
	got := Zero(img, -3, -1)
	if got.Rows != 2 || got.Cols != 2 {
		t.Fatalf("shape = %dx%d, want 2x2", got.Rows, got.Cols)
	}
}

func TestMirror(t *testing.T) {
	tests := []struct{ i, n, want int }{
		{0, 3, 0}, {2, 3, 2}, {3, 3, 2}, {5, 3, 0}, {6, 3, 0}, {-1, 3, 0},
	}
	for _, tt := range tests {
		if got := mirror(tt.i, tt.n); got != tt.want {
			t.Fatalf("mirror(%d,%d) = %d, want %d", tt.i, tt.n, got, tt.want)
		}
	}
}
