// Package scene manages the 3D view: one square tile per cell, placed in
// either a random cloud or a flat table, with eased transitions between them.
package scene

import (
	"image/color"
	"math/rand/v2"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"lifeviz/internal/cellbuf"
	"lifeviz/internal/core"
)

// Element is the drawable owned by exactly one proxy.
type Element struct {
	Fill   color.Color
	Border color.Color
	Size   float64

	id         int
	onActivate func(id int)
}

// ID returns the cell index this element stands for.
func (e *Element) ID() int { return e.id }

// Activate reports a click on the element.
func (e *Element) Activate() {
	if e.onActivate != nil {
		e.onActivate(e.id)
	}
}

// motion eases one vector from a start to an end value.
type motion struct {
	from, to Vec3
	tween    *gween.Tween
	done     bool
}

func newMotion(from, to Vec3, seconds float32) *motion {
	return &motion{from: from, to: to, tween: gween.New(0, 1, seconds, ease.InOutExpo)}
}

func (m *motion) update(dt float32) Vec3 {
	t, finished := m.tween.Update(dt)
	m.done = finished
	if finished {
		return m.to
	}
	return m.from.Add(m.to.Sub(m.from).Scale(float64(t)))
}

// Proxy is the 3D stand-in for one cell.
type Proxy struct {
	ID      int
	Pose    Pose
	Element *Element

	position *motion
	rotation *motion
}

// Moving reports whether the proxy has an unfinished tween.
func (p *Proxy) Moving() bool {
	return (p.position != nil && !p.position.done) || (p.rotation != nil && !p.rotation.done)
}

func (p *Proxy) update(dt float32) {
	if p.position != nil && !p.position.done {
		p.Pose.Position = p.position.update(dt)
	}
	if p.rotation != nil && !p.rotation.done {
		p.Pose.Rotation = p.rotation.update(dt)
	}
}

// tracker fires done once after its tween completes.
type tracker struct {
	tween *gween.Tween
	done  func()
}

// Engine owns the proxies and both layouts.
type Engine struct {
	rng     *rand.Rand
	proxies []*Proxy

	cloud Layout
	table Layout
	opts  TableOptions
	kind  LayoutKind

	onActivate func(id int)
	tracker    *tracker
}

// NewEngine returns an empty engine drawing randomness from rng. A nil rng
// uses a time-seeded source.
func NewEngine(rng *rand.Rand) *Engine {
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>1))
	}
	return &Engine{
		rng:  rng,
		opts: TableOptions{Columns: 1, Spacing: TableSpacing(core.DefaultRenderConfig().CellSize), Offset: DefaultTableOffset},
	}
}

// BuildProxies discards every proxy and creates n fresh ones placed at a new
// cloud layout. Activating proxy i calls onActivate(i).
func (e *Engine) BuildProxies(n int, onActivate func(id int)) {
	if n < 0 {
		n = 0
	}
	e.tracker = nil
	e.onActivate = onActivate
	e.cloud = CloudLayout(n, e.rng)
	e.proxies = make([]*Proxy, n)
	for i := range e.proxies {
		e.proxies[i] = &Proxy{
			ID:   i,
			Pose: e.cloud[i],
			Element: &Element{
				Size:       TileSize(core.DefaultRenderConfig().CellSize),
				id:         i,
				onActivate: onActivate,
			},
		}
	}
	e.kind = LayoutCloud
	e.table = TableLayout(n, e.opts.Columns, e.opts.Spacing, e.opts.Offset)
}

// SetActivateHandler replaces the handler invoked by Element.Activate on
// every current and future proxy.
func (e *Engine) SetActivateHandler(fn func(id int)) {
	e.onActivate = fn
	for _, p := range e.proxies {
		p.Element.onActivate = fn
	}
}

// Proxies returns the proxies in cell-index order.
func (e *Engine) Proxies() []*Proxy { return e.proxies }

// Len returns the proxy count.
func (e *Engine) Len() int { return len(e.proxies) }

// Proxy returns proxy i, or nil when out of range.
func (e *Engine) Proxy(i int) *Proxy {
	if i < 0 || i >= len(e.proxies) {
		return nil
	}
	return e.proxies[i]
}

// Cloud returns the current cloud layout.
func (e *Engine) Cloud() Layout { return e.cloud }

// Table returns the current table layout.
func (e *Engine) Table() Layout { return e.table }

// TableOptions returns the options the table layout was computed with.
func (e *Engine) TableOptions() TableOptions { return e.opts }

// Kind returns the layout the proxies were last sent to.
func (e *Engine) Kind() LayoutKind { return e.kind }

// SetTable recomputes the table layout. It does not move any proxy.
func (e *Engine) SetTable(opts TableOptions) {
	if opts.Columns <= 0 {
		opts.Columns = 1
	}
	e.opts = opts
	e.table = TableLayout(len(e.proxies), opts.Columns, opts.Spacing, opts.Offset)
}

// TransitionTo tweens every proxy from its current pose to target over a
// random duration in [d, 2d) per position and rotation. In-flight tweens are
// replaced. done, if non-nil, runs once after 2d. Proxies without a target
// pose are left alone. A non-positive d snaps immediately.
func (e *Engine) TransitionTo(target Layout, d time.Duration, done func()) {
	e.tracker = nil
	if d <= 0 {
		for i, p := range e.proxies {
			p.position, p.rotation = nil, nil
			if i < len(target) {
				p.Pose = target[i]
			}
		}
		if done != nil {
			done()
		}
		return
	}
	secs := float32(d.Seconds())
	for i, p := range e.proxies {
		if i >= len(target) {
			continue
		}
		p.position = newMotion(p.Pose.Position, target[i].Position, secs+e.rng.Float32()*secs)
		p.rotation = newMotion(p.Pose.Rotation, target[i].Rotation, secs+e.rng.Float32()*secs)
	}
	e.tracker = &tracker{tween: gween.New(0, 1, 2*secs, ease.Linear), done: done}
}

// Show transitions to the named layout.
func (e *Engine) Show(kind LayoutKind, d time.Duration, done func()) {
	e.kind = kind
	if kind == LayoutTable {
		e.TransitionTo(e.table, d, done)
		return
	}
	e.TransitionTo(e.cloud, d, done)
}

// Update advances every tween by dt.
func (e *Engine) Update(dt time.Duration) {
	step := float32(dt.Seconds())
	for _, p := range e.proxies {
		p.update(step)
	}
	if e.tracker == nil {
		return
	}
	if _, finished := e.tracker.tween.Update(step); finished {
		done := e.tracker.done
		e.tracker = nil
		if done != nil {
			done()
		}
	}
}

// Animating reports whether any tween or the tracker is still running.
func (e *Engine) Animating() bool {
	if e.tracker != nil {
		return true
	}
	for _, p := range e.proxies {
		if p.Moving() {
			return true
		}
	}
	return false
}

// Rebuild replaces all proxies for a new cell count, recomputes the table
// with the given column count and animates into it. The activation handler
// of the previous build is kept.
func (e *Engine) Rebuild(n, columns int, d time.Duration, done func()) {
	e.BuildProxies(n, e.onActivate)
	opts := e.opts
	opts.Columns = columns
	e.SetTable(opts)
	e.Show(LayoutTable, d, done)
}

// SetSpacing recomputes the table with a new spacing and moves into it.
func (e *Engine) SetSpacing(spacing float64, d time.Duration) {
	opts := e.opts
	opts.Spacing = spacing
	e.SetTable(opts)
	e.Show(LayoutTable, d, nil)
}

// Paint colors every element from the snapshot and sizes it to the cell size.
func (e *Engine) Paint(snap cellbuf.Snapshot, cfg core.RenderConfig) {
	size := TileSize(cfg.CellSize)
	n := min(snap.Len(), len(e.proxies))
	for i := 0; i < n; i++ {
		el := e.proxies[i].Element
		el.Size = size
		el.Border = cfg.GridColor
		if snap.At(i) == core.Alive {
			el.Fill = cfg.AliveColor
		} else {
			el.Fill = cfg.DeadColor
		}
	}
}
