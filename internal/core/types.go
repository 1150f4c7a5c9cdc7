package core

import (
	"errors"
	"fmt"
)

// Size describes the dimensions of a universe in cells.
type Size struct {
	W int
	H int
}

// Cells returns the number of cells covered by the size.
func (s Size) Cells() int { return s.W * s.H }

// Valid reports whether both dimensions are positive.
func (s Size) Valid() bool { return s.W > 0 && s.H > 0 }

// Contains reports whether (row, col) addresses a cell inside the grid.
func (s Size) Contains(row, col int) bool {
	return row >= 0 && col >= 0 && row < s.H && col < s.W
}

// CellState is the per-cell tag stored in a universe buffer.
type CellState uint8

const (
	// Dead marks an empty cell.
	Dead CellState = 0
	// Alive marks a populated cell.
	Alive CellState = 1
)

// Universe is the capability set the visualizer consumes from an automaton
// engine. Cells exposes the engine's live buffer in row-major order; the
// returned slice may be replaced by Empty after a dimension change, so callers
// must fetch it again before every read.
type Universe interface {
	Tick()
	Random()
	Empty()
	Reset()
	ToggleCell(row, col int)
	SetWidth(w int)
	SetHeight(h int)
	Width() int
	Height() int
	Cells() []uint8
}

// Seeder is implemented by engines whose Random can be made reproducible.
type Seeder interface {
	Seed(seed int64)
}

// Factory constructs a Universe with the given number of rows and columns.
type Factory func(rows, cols int) Universe

// ErrUnknownEngine is returned when no factory is registered under a name.
var ErrUnknownEngine = errors.New("unknown engine")

var engines = map[string]Factory{}

// Register adds an engine factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	engines[name] = f
}

// Engines exposes the registry of available engine factories.
func Engines() map[string]Factory {
	return engines
}

// NewUniverse builds a universe using the factory registered under name.
func NewUniverse(name string, rows, cols int) (Universe, error) {
	f, ok := engines[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownEngine, name)
	}
	return f(rows, cols), nil
}
