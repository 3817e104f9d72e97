package render

// IntensityBuffer is a fixed-size row-major grid of per-cell light intensity
// Size is set at construction and never changes
type IntensityBuffer struct {
	cells  []float64
	width  int
	height int
}

// NewIntensityBuffer creates a zeroed buffer with the specified dimensions
func NewIntensityBuffer(width, height int) *IntensityBuffer {
	return &IntensityBuffer{
		cells:  make([]float64, width*height),
		width:  width,
		height: height,
	}
}

func (b *IntensityBuffer) Width() int  { return b.width }
func (b *IntensityBuffer) Height() int { return b.height }

// InBounds reports whether (col, row) addresses a cell
func (b *IntensityBuffer) InBounds(col, row int) bool {
	return col >= 0 && col < b.width && row >= 0 && row < b.height
}

// At returns the intensity at (col, row), 0 when out of bounds
func (b *IntensityBuffer) At(col, row int) float64 {
	if !b.InBounds(col, row) {
		return 0
	}
	return b.cells[row*b.width+col]
}

// Set writes the intensity at (col, row), ignored when out of bounds
func (b *IntensityBuffer) Set(col, row int, v float64) {
	if !b.InBounds(col, row) {
		return
	}
	b.cells[row*b.width+col] = v
}

// Reset zeroes every cell
func (b *IntensityBuffer) Reset() {
	clear(b.cells)
}

// Cells exposes the backing row-major slice, read-only by convention
func (b *IntensityBuffer) Cells() []float64 {
	return b.cells
}
