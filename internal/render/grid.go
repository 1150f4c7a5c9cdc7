package render

import (
	"image/color"

	"lifeviz/internal/cellbuf"
	"lifeviz/internal/core"
)

// GridRenderer paints a universe as a grid of squares separated by one pixel
// gridlines. Every draw is a full repaint.
type GridRenderer struct {
	surface  Surface
	size     core.Size
	cellSize int
}

// NewGridRenderer constructs a renderer drawing on s.
func NewGridRenderer(s Surface) *GridRenderer {
	return &GridRenderer{surface: s}
}

// Surface returns the render target.
func (r *GridRenderer) Surface() Surface { return r.surface }

// Resize sets the surface extents for the given grid and cell size.
func (r *GridRenderer) Resize(size core.Size, cellSize int) {
	w, h := core.SurfaceSize(size, cellSize)
	r.surface.Resize(w, h)
	r.size = size
	r.cellSize = cellSize
}

// DrawGrid strokes every row and column boundary.
func (r *GridRenderer) DrawGrid(size core.Size, cfg core.RenderConfig) {
	w, h := core.SurfaceSize(size, cfg.CellSize)
	for i := 0; i <= size.W; i++ {
		x := float32(core.GridLine(i, cfg.CellSize))
		r.surface.StrokeLine(x, 0, x, float32(h-1), cfg.GridColor)
	}
	for i := 0; i <= size.H; i++ {
		y := float32(core.GridLine(i, cfg.CellSize))
		r.surface.StrokeLine(0, y, float32(w-1), y, cfg.GridColor)
	}
}

// DrawCells fills every cell, live cells first and then dead ones.
func (r *GridRenderer) DrawCells(snap cellbuf.Snapshot, cfg core.RenderConfig) {
	size := snap.Size()
	side := float32(cfg.CellSize - 1)
	if side <= 0 {
		return
	}
	passes := []struct {
		state core.CellState
		clr   color.Color
	}{
		{state: core.Alive, clr: cfg.AliveColor},
		{state: core.Dead, clr: cfg.DeadColor},
	}
	for _, pass := range passes {
		for row := 0; row < size.H; row++ {
			for col := 0; col < size.W; col++ {
				if snap.AtRowCol(row, col) != pass.state {
					continue
				}
				x, y := core.CellOrigin(row, col, cfg.CellSize)
				r.surface.FillRect(float32(x), float32(y), side, side, pass.clr)
			}
		}
	}
}

// Draw repaints gridlines and cells. It resizes the surface first when the
// snapshot or cell size no longer matches the last Resize.
func (r *GridRenderer) Draw(snap cellbuf.Snapshot, cfg core.RenderConfig) {
	if snap.Size() != r.size || cfg.CellSize != r.cellSize {
		r.Resize(snap.Size(), cfg.CellSize)
	}
	r.surface.Clear()
	r.DrawGrid(snap.Size(), cfg)
	r.DrawCells(snap, cfg)
}
