package app

import (
	"bytes"
	"errors"
	"image/color"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"lifeviz/internal/cellbuf"
	"lifeviz/internal/core"
	"lifeviz/internal/render"
	"lifeviz/internal/scene"
)

// fakeUniverse records every call in order. SetWidth and SetHeight only
// change the reported dimensions; Empty reallocates.
type fakeUniverse struct {
	w, h  int
	cells []uint8
	calls []string
	ticks int
}

func newFakeUniverse(rows, cols int) *fakeUniverse {
	return &fakeUniverse{w: cols, h: rows, cells: make([]uint8, rows*cols)}
}

func (u *fakeUniverse) record(call string) { u.calls = append(u.calls, call) }

func (u *fakeUniverse) Tick()   { u.ticks++; u.record("tick") }
func (u *fakeUniverse) Random() { u.record("random") }
func (u *fakeUniverse) Reset()  { u.record("reset") }
func (u *fakeUniverse) Empty() {
	u.record("empty")
	u.cells = make([]uint8, u.w*u.h)
}
func (u *fakeUniverse) ToggleCell(row, col int) {
	u.record("toggle")
	u.cells[row*u.w+col] ^= 1
}
func (u *fakeUniverse) SetWidth(w int)  { u.record("setWidth"); u.w = w }
func (u *fakeUniverse) SetHeight(h int) { u.record("setHeight"); u.h = h }
func (u *fakeUniverse) Width() int      { return u.w }
func (u *fakeUniverse) Height() int     { return u.h }
func (u *fakeUniverse) Cells() []uint8  { return u.cells }

func (u *fakeUniverse) count(call string) int {
	n := 0
	for _, c := range u.calls {
		if c == call {
			n++
		}
	}
	return n
}

// fakeRenderer logs draws into the universe's call log so ordering can be
// asserted.
type fakeRenderer struct {
	u       *fakeUniverse
	resizes []core.Size
	draws   int
	last    cellbuf.Snapshot
}

func (r *fakeRenderer) Resize(size core.Size, cfg core.RenderConfig) {
	r.resizes = append(r.resizes, size)
}

func (r *fakeRenderer) Draw(snap cellbuf.Snapshot, cfg core.RenderConfig) {
	r.draws++
	r.last = snap
	if r.u != nil {
		r.u.record("draw")
	}
}

func quietLogger() *log.Logger {
	return log.NewWithOptions(&bytes.Buffer{}, log.Options{Level: log.DebugLevel})
}

func newTestController(rows, cols int) (*Controller, *fakeUniverse, *fakeRenderer, *core.FrameQueue) {
	u := newFakeUniverse(rows, cols)
	r := &fakeRenderer{u: u}
	q := core.NewFrameQueue()
	c := NewController(u, r, q, WithLogger(quietLogger()))
	return c, u, r, q
}

func TestNewControllerSizesAndDraws(t *testing.T) {
	_, _, r, q := newTestController(3, 5)
	if len(r.resizes) != 1 || r.resizes[0] != (core.Size{W: 5, H: 3}) {
		t.Fatalf("resizes = %v, want one 5x3", r.resizes)
	}
	if r.draws != 1 {
		t.Fatalf("draws = %d, want 1", r.draws)
	}
	if q.Pending() != 0 {
		t.Fatalf("new controller should be paused, pending = %d", q.Pending())
	}
}

func TestPlayPauseIdempotent(t *testing.T) {
	c, _, _, q := newTestController(4, 4)

	c.Pause()
	c.Pause()
	if q.Pending() != 0 || c.Frame() != 0 {
		t.Fatalf("after two pauses pending=%d frame=%d, want 0", q.Pending(), c.Frame())
	}

	c.Play()
	c.Play()
	if q.Pending() != 1 || c.Frame() == 0 {
		t.Fatalf("after two plays pending=%d frame=%d, want one request", q.Pending(), c.Frame())
	}

	c.Toggle()
	if c.IsPlaying() || q.Pending() != 0 {
		t.Fatal("toggle while playing should pause")
	}
	c.Toggle()
	if !c.IsPlaying() {
		t.Fatal("toggle while paused should play")
	}
}

func TestPlaybackAdvancesPerInterval(t *testing.T) {
	c, u, r, q := newTestController(4, 4)
	c.SetTicksPerAdvance(2)
	c.SetFrameInterval(100 * time.Millisecond)
	c.Play()

	for _, now := range []time.Duration{0, 50 * time.Millisecond, 100 * time.Millisecond, 150 * time.Millisecond, 200 * time.Millisecond} {
		q.Run(now)
	}
	if u.ticks != 6 {
		t.Fatalf("ticks = %d, want 6 (three advances of two)", u.ticks)
	}
	if c.Generation() != 6 {
		t.Fatalf("generation = %d, want 6", c.Generation())
	}
	if r.draws != 4 {
		t.Fatalf("draws = %d, want initial + 3", r.draws)
	}
}

func TestStepWhilePlaying(t *testing.T) {
	c, u, _, q := newTestController(4, 4)
	c.Play()
	c.Step(3)

	if c.IsPlaying() || q.Pending() != 0 {
		t.Fatal("step should pause")
	}
	if u.ticks != 3 {
		t.Fatalf("ticks = %d, want 3", u.ticks)
	}
	q.Run(time.Second)
	if u.ticks != 3 {
		t.Fatal("cancelled frame must not advance")
	}
}

func TestStepNonPositiveOnlyPauses(t *testing.T) {
	c, u, _, _ := newTestController(2, 2)
	c.Play()
	c.Step(0)
	c.Step(-2)
	if c.IsPlaying() || u.ticks != 0 {
		t.Fatalf("playing=%v ticks=%d, want paused with no ticks", c.IsPlaying(), u.ticks)
	}
}

func TestNextUsesGenerationSkip(t *testing.T) {
	c, u, _, _ := newTestController(2, 2)
	c.SetTicksPerAdvance(4)
	c.Next()
	if u.ticks != 4 {
		t.Fatalf("ticks = %d, want 4", u.ticks)
	}
	c.SetTicksPerAdvance(0)
	if c.PlaybackConfig().TicksPerAdvance != 1 {
		t.Fatalf("skip = %d, want clamped to 1", c.PlaybackConfig().TicksPerAdvance)
	}
}

func TestToggleThenStepOnThreeByThree(t *testing.T) {
	c, u, _, _ := newTestController(3, 3)
	u.calls = nil

	c.ToggleCellAt(1, 1)
	c.Step(1)

	if c.IsPlaying() {
		t.Fatal("controller should stay paused")
	}
	if u.count("tick") != 1 {
		t.Fatalf("ticks = %d, want 1", u.count("tick"))
	}
	want := []string{"toggle", "draw", "tick", "draw"}
	if strings.Join(u.calls, ",") != strings.Join(want, ",") {
		t.Fatalf("calls = %v, want %v", u.calls, want)
	}
}

func TestToggleOutOfRangeIgnored(t *testing.T) {
	c, u, _, _ := newTestController(3, 3)
	c.Play()
	c.ToggleCellAt(3, 0)
	c.ToggleCellAt(0, -1)
	c.ActivateProxy(9)
	if u.count("toggle") != 0 {
		t.Fatal("out of range toggles should be ignored")
	}
	if c.IsPlaying() {
		t.Fatal("toggle requests pause even when ignored")
	}
}

func TestToggleByPixelAndProxy(t *testing.T) {
	c, u, _, _ := newTestController(3, 4)
	cs := c.RenderConfig().CellSize

	x, y := core.CellOrigin(2, 3, cs)
	c.ToggleCellAtPixel(x, y)
	if u.cells[core.LinearIndex(4, 2, 3)] != 1 {
		t.Fatal("pixel toggle should flip (2,3)")
	}

	c.ActivateProxy(core.LinearIndex(4, 1, 2))
	if u.cells[6] != 1 {
		t.Fatal("proxy 6 should flip (1,2)")
	}
}

func TestResizeEmptiesAfterSetters(t *testing.T) {
	c, u, r, _ := newTestController(8, 8)
	u.calls = nil
	c.Play()

	if err := c.Resize(4, 4); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	if c.IsPlaying() {
		t.Fatal("resize should pause")
	}
	if u.count("empty") != 1 {
		t.Fatalf("empty called %d times, want 1", u.count("empty"))
	}
	want := []string{"setWidth", "setHeight", "empty", "draw"}
	if strings.Join(u.calls, ",") != strings.Join(want, ",") {
		t.Fatalf("calls = %v, want %v", u.calls, want)
	}
	if got := r.resizes[len(r.resizes)-1]; got != (core.Size{W: 4, H: 4}) {
		t.Fatalf("renderer resized to %v, want 4x4", got)
	}
	if r.last.Len() != 16 || r.last.Alive() != 0 {
		t.Fatalf("snapshot len=%d alive=%d, want 16 dead cells", r.last.Len(), r.last.Alive())
	}
}

func TestResizeRejectsNonPositive(t *testing.T) {
	c, u, r, _ := newTestController(8, 8)
	c.Play()
	u.calls = nil
	draws := r.draws

	for _, dims := range [][2]int{{0, 4}, {4, 0}, {-1, -1}} {
		err := c.Resize(dims[0], dims[1])
		if !errors.Is(err, ErrInvalidDimension) {
			t.Fatalf("Resize(%d, %d) err = %v, want ErrInvalidDimension", dims[0], dims[1], err)
		}
	}
	if len(u.calls) != 0 || r.draws != draws {
		t.Fatalf("rejected resize touched state: calls=%v draws=%d", u.calls, r.draws-draws)
	}
	if !c.IsPlaying() {
		t.Fatal("rejected resize should not pause")
	}
}

func TestStaleBufferSkipsDraw(t *testing.T) {
	c, u, r, _ := newTestController(2, 2)
	draws := r.draws
	u.w = 5
	c.Step(1)
	if r.draws != draws {
		t.Fatal("draw with a short buffer should be skipped")
	}
}

func TestBoardCommandsPauseAndResetGeneration(t *testing.T) {
	tests := []struct {
		name string
		call string
		do   func(*Controller)
	}{
		{"randomize", "random", (*Controller).Randomize},
		{"clear", "empty", (*Controller).Clear},
		{"reset", "reset", (*Controller).Reset},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, u, _, _ := newTestController(2, 2)
			c.Step(2)
			c.Play()
			tt.do(c)
			if c.IsPlaying() {
				t.Fatal("should pause")
			}
			if u.count(tt.call) != 1 {
				t.Fatalf("%s called %d times", tt.call, u.count(tt.call))
			}
			if c.Generation() != 0 {
				t.Fatalf("generation = %d, want 0", c.Generation())
			}
		})
	}
}

func TestConfigSettersDoNotPause(t *testing.T) {
	c, _, r, q := newTestController(2, 2)
	c.Play()
	resizes := len(r.resizes)

	c.SetAnimationSpeed(10)
	c.SetTicksPerAdvance(3)
	c.SetRenderConfig(RenderUpdate{AliveColor: color.RGBA{R: 255, A: 255}})
	if !c.IsPlaying() || q.Pending() != 1 {
		t.Fatal("config setters should not pause")
	}
	if c.PlaybackConfig().FrameInterval != 100*time.Millisecond {
		t.Fatalf("interval = %v, want 100ms", c.PlaybackConfig().FrameInterval)
	}
	if len(r.resizes) != resizes {
		t.Fatal("color change should not resize")
	}

	c.SetRenderConfig(RenderUpdate{CellSize: 12})
	if len(r.resizes) != resizes+1 || c.RenderConfig().CellSize != 12 {
		t.Fatal("cell size change should resize the renderer")
	}
}

func TestResizeRebuildsSceneProxies(t *testing.T) {
	u := newFakeUniverse(8, 8)
	eng := scene.NewEngine(rand.New(rand.NewPCG(1, 1)))
	view := NewSceneView(eng, 0)
	c := NewController(u, view, core.NewFrameQueue(), WithLogger(quietLogger()))
	view.SetActivateHandler(c.ActivateProxy)

	if eng.Len() != 64 || eng.TableOptions().Columns != 8 {
		t.Fatalf("proxies=%d columns=%d, want 64 and 8", eng.Len(), eng.TableOptions().Columns)
	}
	if err := c.Resize(4, 4); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	if eng.Len() != 16 || len(eng.Table()) != 16 {
		t.Fatalf("proxies=%d table=%d, want 16", eng.Len(), len(eng.Table()))
	}
	if eng.TableOptions().Columns != 4 {
		t.Fatalf("columns = %d, want 4", eng.TableOptions().Columns)
	}

	eng.Proxy(5).Element.Activate()
	if u.cells[5] != 1 {
		t.Fatal("activating proxy 5 should toggle cell 5")
	}
	if eng.Proxy(5).Element.Fill != c.RenderConfig().AliveColor {
		t.Fatal("toggled proxy should be repainted alive")
	}
}

func TestCellSizeRespacesScene(t *testing.T) {
	u := newFakeUniverse(2, 2)
	eng := scene.NewEngine(rand.New(rand.NewPCG(1, 1)))
	c := NewController(u, NewSceneView(eng, 0), core.NewFrameQueue(), WithLogger(quietLogger()))

	c.SetRenderConfig(RenderUpdate{CellSize: 10})
	if eng.TableOptions().Spacing != scene.TableSpacing(10) {
		t.Fatalf("spacing = %v, want %v", eng.TableOptions().Spacing, scene.TableSpacing(10))
	}
	if eng.Proxy(0).Element.Size != scene.TileSize(10) {
		t.Fatalf("tile size = %v, want %v", eng.Proxy(0).Element.Size, scene.TileSize(10))
	}
}

func TestGridViewDrawsToSurface(t *testing.T) {
	u := newFakeUniverse(2, 3)
	u.cells[0] = 1
	s := render.NewRGBASurface()
	c := NewController(u, NewGridView(s), core.NewFrameQueue(), WithLogger(quietLogger()))

	w, h := s.Bounds()
	ww, wh := core.SurfaceSize(c.Size(), c.RenderConfig().CellSize)
	if w != ww || h != wh {
		t.Fatalf("surface %dx%d, want %dx%d", w, h, ww, wh)
	}
	x, y := core.CellOrigin(0, 0, c.RenderConfig().CellSize)
	if got := s.At(x, y); got != (color.RGBA{A: 255}) {
		t.Fatalf("live cell pixel = %v, want black", got)
	}
}

func TestGenerationSkipChangeAppliesNextAdvance(t *testing.T) {
	c, u, _, q := newTestController(4, 4)
	c.SetFrameInterval(100 * time.Millisecond)
	c.Play()

	q.Run(0)
	if u.ticks != 1 {
		t.Fatalf("ticks = %d after first frame, want 1", u.ticks)
	}
	c.SetTicksPerAdvance(5)
	q.Run(50 * time.Millisecond)
	if u.ticks != 1 {
		t.Fatalf("ticks = %d before the interval elapsed, want 1", u.ticks)
	}
	q.Run(100 * time.Millisecond)
	if u.ticks != 6 {
		t.Fatalf("ticks = %d after next advance, want 6", u.ticks)
	}
	if !c.IsPlaying() {
		t.Fatal("changing the skip should not pause")
	}
}
