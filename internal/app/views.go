package app

import (
	"time"

	"lifeviz/internal/cellbuf"
	"lifeviz/internal/core"
	"lifeviz/internal/render"
	"lifeviz/internal/scene"
)

// Renderer is the presentation driven by the controller.
type Renderer interface {
	// Resize is called after the grid dimensions or the cell size change.
	Resize(size core.Size, cfg core.RenderConfig)
	// Draw repaints from a freshly refreshed snapshot.
	Draw(snap cellbuf.Snapshot, cfg core.RenderConfig)
}

// GridView draws the flat 2D grid.
type GridView struct {
	grid *render.GridRenderer
}

// NewGridView draws onto s.
func NewGridView(s render.Surface) *GridView {
	return &GridView{grid: render.NewGridRenderer(s)}
}

// Surface returns the surface drawn to.
func (v *GridView) Surface() render.Surface { return v.grid.Surface() }

func (v *GridView) Resize(size core.Size, cfg core.RenderConfig) {
	v.grid.Resize(size, cfg.CellSize)
}

func (v *GridView) Draw(snap cellbuf.Snapshot, cfg core.RenderConfig) {
	v.grid.Draw(snap, cfg)
}

// SceneView keeps one 3D proxy per cell and recolors them on every draw.
type SceneView struct {
	engine     *scene.Engine
	transition time.Duration
	cellSize   int
}

// NewSceneView wraps engine. Layout changes animate over transition.
func NewSceneView(engine *scene.Engine, transition time.Duration) *SceneView {
	return &SceneView{engine: engine, transition: transition}
}

// Engine returns the wrapped scene engine.
func (v *SceneView) Engine() *scene.Engine { return v.engine }

// SetActivateHandler routes proxy clicks to fn.
func (v *SceneView) SetActivateHandler(fn func(id int)) { v.engine.SetActivateHandler(fn) }

// Resize rebuilds every proxy when the cell count or width changed, and
// re-spaces the table when only the cell size changed.
func (v *SceneView) Resize(size core.Size, cfg core.RenderConfig) {
	spacing := scene.TableSpacing(cfg.CellSize)
	opts := v.engine.TableOptions()
	switch {
	case v.engine.Len() != size.Cells() || opts.Columns != size.W:
		v.cellSize = cfg.CellSize
		opts.Spacing = spacing
		v.engine.SetTable(opts)
		v.engine.Rebuild(size.Cells(), size.W, v.transition, nil)
	case v.cellSize != cfg.CellSize:
		v.cellSize = cfg.CellSize
		v.engine.SetSpacing(spacing, v.transition)
	}
}

func (v *SceneView) Draw(snap cellbuf.Snapshot, cfg core.RenderConfig) {
	v.engine.Paint(snap, cfg)
}
