// Package app wires a universe, the simulation clock and a renderer into the
// interactive viewer.
package app

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/charmbracelet/log"

	"lifeviz/internal/cellbuf"
	"lifeviz/internal/core"
)

// ErrInvalidDimension is returned by Resize for a non-positive width or height.
var ErrInvalidDimension = errors.New("invalid dimension")

// RenderUpdate carries a partial change to the render configuration. Zero
// and nil fields are left unchanged.
type RenderUpdate struct {
	CellSize   int
	AliveColor color.Color
	DeadColor  color.Color
	GridColor  color.Color
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the controller's logger.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) { c.log = l }
}

// WithRenderConfig sets the initial render configuration.
func WithRenderConfig(cfg core.RenderConfig) Option {
	return func(c *Controller) { c.render = cfg }
}

// WithPlaybackConfig sets the initial playback configuration.
func WithPlaybackConfig(cfg core.PlaybackConfig) Option {
	return func(c *Controller) { c.playback = cfg }
}

// Controller owns playback of a universe and keeps the active renderer in
// sync with it. It is not safe for concurrent use; every method runs on the
// window loop goroutine.
type Controller struct {
	log      *log.Logger
	universe core.Universe
	view     Renderer
	clock    *core.SimulationClock

	render     core.RenderConfig
	playback   core.PlaybackConfig
	generation uint64
}

// NewController sizes view for u and draws the initial state. Playback is
// paused until Play.
func NewController(u core.Universe, view Renderer, sched core.FrameScheduler, opts ...Option) *Controller {
	c := &Controller{
		log:      log.Default(),
		universe: u,
		view:     view,
		render:   core.DefaultRenderConfig(),
		playback: core.DefaultPlaybackConfig(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.playback.TicksPerAdvance < 1 {
		c.playback.TicksPerAdvance = 1
	}
	c.clock = core.NewSimulationClock(sched, c.playback.FrameInterval, c.advance)
	c.playback.FrameInterval = c.clock.Interval()
	c.view.Resize(c.Size(), c.render)
	c.redraw()
	return c
}

// Size returns the universe dimensions.
func (c *Controller) Size() core.Size {
	return core.Size{W: c.universe.Width(), H: c.universe.Height()}
}

// RenderConfig returns the current render configuration.
func (c *Controller) RenderConfig() core.RenderConfig { return c.render }

// PlaybackConfig returns the current playback configuration.
func (c *Controller) PlaybackConfig() core.PlaybackConfig { return c.playback }

// IsPlaying reports whether the clock is scheduled.
func (c *Controller) IsPlaying() bool { return c.clock.Running() }

// Generation counts ticks since the board was last randomized, cleared,
// reset or resized.
func (c *Controller) Generation() uint64 { return c.generation }

// Frame returns the outstanding frame request, zero when paused.
func (c *Controller) Frame() core.FrameID { return c.clock.Frame() }

// Play starts the clock. It is a no-op while playing.
func (c *Controller) Play() {
	if c.clock.Start() {
		c.log.Debug("play", "interval", c.playback.FrameInterval, "skip", c.playback.TicksPerAdvance)
	}
}

// Pause stops the clock. It is a no-op while paused.
func (c *Controller) Pause() {
	if c.clock.Stop() {
		c.log.Debug("pause", "generation", c.generation)
	}
}

// Toggle flips between playing and paused.
func (c *Controller) Toggle() {
	if c.IsPlaying() {
		c.Pause()
		return
	}
	c.Play()
}

// Step pauses and advances exactly n generations.
func (c *Controller) Step(n int) {
	c.Pause()
	c.tick(n)
	c.redraw()
}

// Next pauses and advances by the current generation skip.
func (c *Controller) Next() { c.Step(c.playback.TicksPerAdvance) }

// Randomize pauses and fills the board randomly.
func (c *Controller) Randomize() {
	c.Pause()
	c.universe.Random()
	c.generation = 0
	c.redraw()
}

// Clear pauses and kills every cell.
func (c *Controller) Clear() {
	c.Pause()
	c.universe.Empty()
	c.generation = 0
	c.redraw()
}

// Reset pauses and restores the universe's initial state.
func (c *Controller) Reset() {
	c.Pause()
	c.universe.Reset()
	c.generation = 0
	c.redraw()
}

// Resize pauses, changes the grid to w columns by h rows of dead cells and
// resizes the renderer. Non-positive dimensions are rejected without any
// state change.
func (c *Controller) Resize(w, h int) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimension, w, h)
	}
	c.Pause()
	c.universe.SetWidth(w)
	c.universe.SetHeight(h)
	c.universe.Empty()
	c.generation = 0
	c.view.Resize(c.Size(), c.render)
	c.redraw()
	c.log.Info("resized", "cols", w, "rows", h)
	return nil
}

// ToggleCellAt pauses and flips one cell. Out of range cells are ignored.
func (c *Controller) ToggleCellAt(row, col int) {
	c.Pause()
	if !c.Size().Contains(row, col) {
		return
	}
	c.universe.ToggleCell(row, col)
	c.redraw()
}

// ToggleCellAtPixel flips the cell under a 2D surface pixel.
func (c *Controller) ToggleCellAtPixel(px, py int) {
	row, col := core.RowColFromPixel(px, py, c.render.CellSize)
	c.ToggleCellAt(row, col)
}

// ActivateProxy flips the cell a 3D proxy stands for.
func (c *Controller) ActivateProxy(id int) {
	size := c.Size()
	if id < 0 || id >= size.Cells() {
		return
	}
	row, col := core.RowColFromIndex(size.W, id)
	c.ToggleCellAt(row, col)
}

// SetTicksPerAdvance sets the generation skip. Values below one are raised
// to one.
func (c *Controller) SetTicksPerAdvance(n int) {
	c.playback.TicksPerAdvance = max(n, 1)
}

// SetFrameInterval sets the minimum time between advances. It applies on the
// next frame.
func (c *Controller) SetFrameInterval(d time.Duration) {
	if d <= 0 {
		return
	}
	c.playback.FrameInterval = d
	c.clock.SetInterval(d)
}

// SetAnimationSpeed sets the advance rate in advances per second.
func (c *Controller) SetAnimationSpeed(perSecond int) {
	c.SetFrameInterval(core.FrameIntervalForSpeed(perSecond))
}

// SetRenderConfig applies a partial render change and redraws. A new cell
// size also resizes the renderer.
func (c *Controller) SetRenderConfig(u RenderUpdate) {
	resized := false
	if u.CellSize > 0 && u.CellSize != c.render.CellSize {
		c.render.CellSize = u.CellSize
		resized = true
	}
	if u.AliveColor != nil {
		c.render.AliveColor = u.AliveColor
	}
	if u.DeadColor != nil {
		c.render.DeadColor = u.DeadColor
	}
	if u.GridColor != nil {
		c.render.GridColor = u.GridColor
	}
	if resized {
		c.view.Resize(c.Size(), c.render)
	}
	c.redraw()
}

func (c *Controller) advance() {
	c.tick(c.playback.TicksPerAdvance)
	c.redraw()
}

func (c *Controller) tick(n int) {
	for i := 0; i < n; i++ {
		c.universe.Tick()
		c.generation++
	}
}

func (c *Controller) redraw() {
	snap, err := cellbuf.Refresh(c.universe.Cells(), c.Size())
	if err != nil {
		c.log.Warn("skipping draw", "err", err)
		return
	}
	c.view.Draw(snap, c.render)
}
