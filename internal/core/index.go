package core

// Pixel geometry of the 2D grid: every cell occupies cellSize pixels plus a
// one pixel gridline, and the whole surface carries one extra trailing line.

// LinearIndex returns the buffer index of (row, col) in a grid of the given width.
func LinearIndex(width, row, col int) int { return row*width + col }

// RowColFromIndex inverts LinearIndex.
func RowColFromIndex(width, idx int) (row, col int) {
	if width <= 0 {
		return 0, 0
	}
	return idx / width, idx % width
}

// RowColFromPixel maps a surface pixel to the cell under it. Results are not
// bounds-checked; callers compare them against the current Size.
func RowColFromPixel(px, py, cellSize int) (row, col int) {
	pitch := cellSize + 1
	return floorDiv(py, pitch), floorDiv(px, pitch)
}

// CellOrigin returns the top-left pixel of the filled square for (row, col).
func CellOrigin(row, col, cellSize int) (x, y int) {
	pitch := cellSize + 1
	return col*pitch + 2, row*pitch + 2
}

// GridLine returns the pixel offset of the i-th gridline along either axis.
func GridLine(i, cellSize int) int { return i*(cellSize+1) + 1 }

// SurfaceSize returns the raster extents required to draw a grid.
func SurfaceSize(size Size, cellSize int) (w, h int) {
	pitch := cellSize + 1
	return pitch*size.W + 1, pitch*size.H + 1
}

func floorDiv(a, b int) int {
	if b <= 0 {
		return 0
	}
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}
