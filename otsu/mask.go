package otsu

// NoThreshold marks mask cells of a region where selection found no valid
// split (every candidate level was skipped). Callers should treat such a
// region as a single class instead of comparing pixels against the sentinel.
const NoThreshold = -1

// Mask holds one threshold level per pixel, same shape as the source image.
// Cells are int rather than uint8 so NoThreshold cannot wrap into a valid
// intensity.
type Mask struct {
	levels []int
	width  int
	height int
}

func newMask(height, width int) *Mask {
	return &Mask{
		levels: make([]int, height*width),
		width:  width,
		height: height,
	}
}

// Width returns the mask width in pixels.
func (m *Mask) Width() int { return m.width }

// Height returns the mask height in pixels.
func (m *Mask) Height() int { return m.height }

// At returns the threshold level for the pixel at row y, column x.
func (m *Mask) At(y, x int) int { return m.levels[y*m.width+x] }

func (m *Mask) setRegion(r rect, level int) {
	for y := r.y0; y < r.y1; y++ {
		row := m.levels[y*m.width+r.x0 : y*m.width+r.x1]
		for i := range row {
			row[i] = level
		}
	}
}

// FloatMask holds one averaged threshold value per pixel. Cells that no
// window ever covered are NaN.
type FloatMask struct {
	values []float64
	width  int
	height int
}

func newFloatMask(height, width int) *FloatMask {
	return &FloatMask{
		values: make([]float64, height*width),
		width:  width,
		height: height,
	}
}

// Width returns the mask width in pixels.
func (m *FloatMask) Width() int { return m.width }

// Height returns the mask height in pixels.
func (m *FloatMask) Height() int { return m.height }

// At returns the averaged threshold value for the pixel at row y, column x.
func (m *FloatMask) At(y, x int) float64 { return m.values[y*m.width+x] }
