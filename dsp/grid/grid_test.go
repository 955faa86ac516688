package grid

import (
	"errors"
	"math"
	"testing"
)

func TestFromRows(t *testing.T) {
	img, err := FromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	if err != nil {
		t.Fatalf("FromRows error: %v", err)
	}
	if img.Rows != 2 || img.Cols != 3 {
		t.Fatalf("shape = %dx%d, want 2x3", img.Rows, img.Cols)
	}
	if img.At(1, 2) != 6 {
		t.Fatalf("At(1,2) = %v, want 6", img.At(1, 2))
	}
}

func TestFromRowsErrors(t *testing.T) {
	tests := []struct {
		name string
		rows [][]float64
	}{
		{name: "nil", rows: nil},
		{name: "empty row", rows: [][]float64{{}}},
		{name: "ragged", rows: [][]float64{{1, 2}, {3}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromRows(tt.rows)
			if !errors.Is(err, ErrInputShape) {
				t.Fatalf("err = %v, want ErrInputShape", err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	if err := New(2, 2).Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
	if err := New(0, 3).Validate(); !errors.Is(err, ErrInputShape) {
		t.Fatalf("zero rows: err = %v, want ErrInputShape", err)
	}
	bad := Image{Rows: 2, Cols: 2, Data: make([]float64, 3)}
	if err := bad.Validate(); !errors.Is(err, ErrInputShape) {
		t.Fatalf("short data: err = %v, want ErrInputShape", err)
	}
	if err := NewComplex(1, 0).Validate(); !errors.Is(err, ErrInputShape) {
		t.Fatalf("complex zero cols: err = %v, want ErrInputShape", err)
	}
}

func TestRowColCopies(t *testing.T) {
	img, _ := FromRows([][]float64{{1, 2}, {3, 4}})

	row := img.Row(1)
	col := img.Col(1)
	if row[0] != 3 || row[1] != 4 {
		t.Fatalf("Row(1) = %v", row)
	}
	if col[0] != 2 || col[1] != 4 {
		t.Fatalf("Col(1) = %v", col)
	}

	row[0] = 99
	if img.At(1, 0) != 3 {
		t.Fatal("Row returned an aliased slice")
	}
}

func TestCrop(t *testing.T) {
	img, _ := FromRows([][]float64{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
	})

	got := img.Crop(1, 1, 2, 2)
	want := []float64{6, 7, 10, 11}
	if got.Rows != 2 || got.Cols != 2 {
		t.Fatalf("shape = %dx%d, want 2x2", got.Rows, got.Cols)
	}
	for i := range want {
		if got.Data[i] != want[i] {
			t.Fatalf("Crop data = %v, want %v", got.Data, want)
		}
	}

	clamped := img.Crop(2, 3, 5, 5)
	if clamped.Rows != 1 || clamped.Cols != 1 || clamped.Data[0] != 12 {
		t.Fatalf("clamped crop = %+v", clamped)
	}
}

func TestMapDoesNotAlias(t *testing.T) {
	img := Filled(2, 3, 1)
	out := img.Map(func(r, c int, v float64) float64 { return v + float64(r*10+c) })

	if out.At(1, 2) != 13 {
		t.Fatalf("At(1,2) = %v, want 13", out.At(1, 2))
	}
	for _, v := range img.Data {
		if v != 1 {
			t.Fatal("Map mutated its receiver")
		}
	}
}

func TestComplexRoundTrip(t *testing.T) {
	img, _ := FromRows([][]float64{{1, -2}, {3, 0.5}})
	c := FromReal(img)
	back := c.Real()
	for i := range img.Data {
		if back.Data[i] != img.Data[i] {
			t.Fatalf("Real() = %v, want %v", back.Data, img.Data)
		}
	}

	rows := c.ToRows()
	again, err := FromComplexRows(rows)
	if err != nil {
		t.Fatalf("FromComplexRows error: %v", err)
	}
	if again.At(1, 0) != 3 {
		t.Fatalf("At(1,0) = %v, want 3", again.At(1, 0))
	}
}

func TestComplexMapRowsInto(t *testing.T) {
	src := NewComplex(4, 2)
	for i := range src.Data {
		src.Data[i] = complex(float64(i), 0)
	}

	dst := NewComplex(4, 2)
	double := func(_, _ int, v complex128) complex128 { return 2 * v }
	src.MapRowsInto(dst, 0, 2, double)
	src.MapRowsInto(dst, 2, 4, double)

	want := src.Map(double)
	for i := range want.Data {
		if dst.Data[i] != want.Data[i] {
			t.Fatalf("index %d: got %v, want %v", i, dst.Data[i], want.Data[i])
		}
	}
}

func TestCountNonFinite(t *testing.T) {
	img := New(1, 4)
	img.Data[1] = math.NaN()
	img.Data[3] = math.Inf(-1)
	if got := img.CountNonFinite(); got != 2 {
		t.Fatalf("CountNonFinite = %d, want 2", got)
	}

	c := NewComplex(1, 3)
	c.Data[0] = complex(math.NaN(), 0)
	c.Data[2] = complex(0, math.Inf(1))
	if got := c.CountNonFinite(); got != 2 {
		t.Fatalf("complex CountNonFinite = %d, want 2", got)
	}
}
