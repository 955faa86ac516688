package dither

// Diffusion selects the error-diffusion kernel that pushes each pixel's
// quantization error onto its unvisited neighbors.
type Diffusion int

const (
	// DiffusionNone rounds every pixel independently.
	DiffusionNone Diffusion = iota
	// DiffusionFloydSteinberg uses the 7/16, 3/16, 5/16, 1/16 kernel.
	DiffusionFloydSteinberg
	// DiffusionSierraLite uses the two-row 2/4, 1/4, 1/4 kernel.
	DiffusionSierraLite

	diffusionCount
)

// tap is one kernel weight at a row and column offset from the current pixel.
type tap struct {
	dr, dc int
	w      float64
}

var diffusionTaps = [diffusionCount][]tap{
	DiffusionNone: nil,
	DiffusionFloydSteinberg: {
		{0, 1, 7.0 / 16},
		{1, -1, 3.0 / 16},
		{1, 0, 5.0 / 16},
		{1, 1, 1.0 / 16},
	},
	DiffusionSierraLite: {
		{0, 1, 2.0 / 4},
		{1, -1, 1.0 / 4},
		{1, 0, 1.0 / 4},
	},
}

var diffusionNames = [diffusionCount]string{"none", "floyd-steinberg", "sierra-lite"}

// String returns the kernel name.
func (d Diffusion) String() string {
	if d.Valid() {
		return diffusionNames[d]
	}
	return "Diffusion(?)"
}

// Valid reports whether d is a known kernel.
func (d Diffusion) Valid() bool {
	return d >= 0 && d < diffusionCount
}

// errorRows holds the diffused error for the current and the next row,
// padded by one column on each side so kernel taps never bounds-check.
type errorRows struct {
	cur, next []float64
}

func newErrorRows(cols int) *errorRows {
	return &errorRows{
		cur:  make([]float64, cols+2),
		next: make([]float64, cols+2),
	}
}

// at returns the error accumulated for column c of the current row.
func (e *errorRows) at(c int) float64 { return e.cur[c+1] }

// spread distributes err from column c through taps.
func (e *errorRows) spread(taps []tap, c int, err float64) {
	for _, t := range taps {
		row := e.cur
		if t.dr == 1 {
			row = e.next
		}
		row[c+1+t.dc] += t.w * err
	}
}

// advance moves to the next row.
func (e *errorRows) advance() {
	e.cur, e.next = e.next, e.cur
	clear(e.next)
}
