// Package cellbuf provides a read-only view over a universe's cell buffer.
package cellbuf

import (
	"errors"
	"fmt"

	"lifeviz/internal/core"
)

// ErrStaleBuffer reports a buffer that cannot cover the current dimensions,
// typically one fetched before a resize.
var ErrStaleBuffer = errors.New("stale cell buffer")

// Snapshot is a view of width*height cell tags. It aliases the engine's
// memory and is only valid until the next engine mutation.
type Snapshot struct {
	size  core.Size
	cells []uint8
}

// Refresh wraps cells as a Snapshot of the given size without copying. The
// buffer must be fetched from the engine immediately before the call.
func Refresh(cells []uint8, size core.Size) (Snapshot, error) {
	if !size.Valid() {
		return Snapshot{}, fmt.Errorf("%w: invalid size %dx%d", ErrStaleBuffer, size.W, size.H)
	}
	n := size.Cells()
	if len(cells) < n {
		return Snapshot{}, fmt.Errorf("%w: have %d cells, need %d", ErrStaleBuffer, len(cells), n)
	}
	return Snapshot{size: size, cells: cells[:n:n]}, nil
}

// Size returns the grid dimensions of the snapshot.
func (s Snapshot) Size() core.Size { return s.size }

// Len returns the number of cells in the snapshot.
func (s Snapshot) Len() int { return len(s.cells) }

// At returns the state of the cell at linear index i.
func (s Snapshot) At(i int) core.CellState {
	if s.cells[i] != 0 {
		return core.Alive
	}
	return core.Dead
}

// AtRowCol returns the state of the cell at (row, col).
func (s Snapshot) AtRowCol(row, col int) core.CellState {
	return s.At(core.LinearIndex(s.size.W, row, col))
}

// Alive counts live cells.
func (s Snapshot) Alive() int {
	n := 0
	for _, c := range s.cells {
		if c != 0 {
			n++
		}
	}
	return n
}
