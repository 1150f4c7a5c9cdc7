// Package life is a Conway's Game of Life engine on a toroidal grid.
package life

import (
	"math/rand/v2"
	"time"

	"lifeviz/internal/core"
)

// Life implements core.Universe. It remembers the board produced by the last
// Random, Empty or edit so Reset can return to it.
type Life struct {
	w, h    int
	cur     []uint8
	nxt     []uint8
	initial []uint8
	rng     *rand.Rand
}

// New returns an empty Life grid with the provided dimensions.
func New(rows, cols int) *Life {
	l := &Life{w: max(cols, 0), h: max(rows, 0), rng: newRand(time.Now().UnixNano())}
	l.alloc()
	return l
}

// Seed makes later Random calls reproducible.
func (l *Life) Seed(seed int64) { l.rng = newRand(seed) }

func (l *Life) alloc() {
	n := l.w * l.h
	l.cur = make([]uint8, n)
	l.nxt = make([]uint8, n)
	l.initial = make([]uint8, n)
}

// stale reports whether the buffers predate a dimension change that has not
// been followed by Empty.
func (l *Life) stale() bool { return len(l.cur) != l.w*l.h }

// Width returns the number of columns.
func (l *Life) Width() int { return l.w }

// Height returns the number of rows.
func (l *Life) Height() int { return l.h }

// SetWidth changes the column count. The buffer is reallocated by the next
// Empty.
func (l *Life) SetWidth(w int) { l.w = max(w, 0) }

// SetHeight changes the row count. The buffer is reallocated by the next
// Empty.
func (l *Life) SetHeight(h int) { l.h = max(h, 0) }

// Cells exposes the current grid values in row-major order.
func (l *Life) Cells() []uint8 { return l.cur }

// Empty kills every cell, reallocating if the dimensions changed.
func (l *Life) Empty() {
	if l.stale() {
		l.alloc()
		return
	}
	clear(l.cur)
	clear(l.initial)
}

// Random fills the board with a uniform random pattern.
func (l *Life) Random() {
	if l.stale() {
		l.alloc()
	}
	fillBinary(l.rng, l.cur)
	copy(l.initial, l.cur)
}

// Reset restores the board recorded by the last Random, Empty or edit.
func (l *Life) Reset() {
	if l.stale() {
		return
	}
	copy(l.cur, l.initial)
}

// ToggleCell flips the cell at (row, col). Out of range requests are ignored.
func (l *Life) ToggleCell(row, col int) {
	if l.stale() || !(core.Size{W: l.w, H: l.h}).Contains(row, col) {
		return
	}
	idx := core.LinearIndex(l.w, row, col)
	l.cur[idx] ^= 1
	l.initial[idx] = l.cur[idx]
}

// SetCell forces the cell at (row, col) alive or dead.
func (l *Life) SetCell(row, col int, alive bool) {
	if l.stale() || !(core.Size{W: l.w, H: l.h}).Contains(row, col) {
		return
	}
	idx := core.LinearIndex(l.w, row, col)
	l.cur[idx] = 0
	if alive {
		l.cur[idx] = 1
	}
	l.initial[idx] = l.cur[idx]
}

// Tick advances the simulation by one generation.
func (l *Life) Tick() {
	if l.stale() {
		return
	}
	w, h := l.w, l.h
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			neighbors := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx := (x + dx + w) % w
					ny := (y + dy + h) % h
					neighbors += int(l.cur[ny*w+nx])
				}
			}
			idx := y*w + x
			alive := l.cur[idx] == 1
			l.nxt[idx] = 0
			if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
				l.nxt[idx] = 1
			}
		}
	}
	l.cur, l.nxt = l.nxt, l.cur
}

func init() {
	core.Register("life", func(rows, cols int) core.Universe {
		return New(rows, cols)
	})
}
