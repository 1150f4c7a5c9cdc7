//go:build ebiten

package app

import (
	"context"
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"lifeviz/internal/core"
	"lifeviz/internal/render"
	"lifeviz/internal/scene"
	"lifeviz/internal/ui"
)

const (
	hudWidth      = 240
	orbitPerPixel = 0.005
	zoomPerNotch  = 0.9

	// Default3DWidth and Default3DHeight size the 3D window.
	Default3DWidth  = 1280
	Default3DHeight = 800
)

// Game adapts a Controller to the ebiten.Game interface. It drives the frame
// queue once per tick so the simulation clock sees the loop time.
type Game struct {
	ctx   context.Context
	log   *log.Logger
	ctrl  *Controller
	queue *core.FrameQueue

	surface *render.EbitenSurface
	scene   *SceneView
	camera  *scene.Camera
	fog     scene.Fog

	hud     *ui.HUD
	overlay *ui.Overlay

	start   time.Time
	lastNow time.Duration

	dragging     bool
	dragX, dragY int
	winW, winH   int
}

// NewGame builds a window for ctrl. view must be the renderer ctrl was
// constructed with: a GridView over an EbitenSurface or a SceneView.
func NewGame(ctx context.Context, ctrl *Controller, queue *core.FrameQueue, view Renderer, title string) *Game {
	g := &Game{
		ctx:   ctx,
		log:   ctrl.log,
		ctrl:  ctrl,
		queue: queue,
		hud:   ui.NewHUD(ctrl, title, hudWidth),
		start: time.Now(),
	}
	switch v := view.(type) {
	case *GridView:
		g.surface, _ = v.Surface().(*render.EbitenSurface)
	case *SceneView:
		g.scene = v
		g.camera = scene.NewCamera(Default3DWidth-hudWidth, Default3DHeight)
		g.fog = scene.DefaultFog()
		g.fog.Background = ctrl.RenderConfig().DeadColor
	}
	g.overlay = ui.NewOverlay(g.scene != nil)
	return g
}

// WindowSize returns the initial window size.
func (g *Game) WindowSize() (int, int) {
	if g.scene != nil {
		return Default3DWidth, Default3DHeight
	}
	w, h := core.SurfaceSize(g.ctrl.Size(), g.ctrl.RenderConfig().CellSize)
	return w + hudWidth, max(h, g.hud.Height())
}

// Update handles input and runs the frame callbacks.
func (g *Game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.handleKeys()
	g.overlay.Update()

	if !g.hud.Update(g.viewWidth()) {
		g.handleMouse()
	}

	now := time.Since(g.start)
	dt := now - g.lastNow
	g.lastNow = now
	g.queue.Run(now)
	if g.scene != nil {
		g.scene.Engine().Update(dt)
	}
	if g.scene == nil {
		g.fitWindow()
	}
	return nil
}

func (g *Game) handleKeys() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.ctrl.Toggle()
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		g.ctrl.Next()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.ctrl.Randomize()
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		g.ctrl.Clear()
	case inpututil.IsKeyJustPressed(ebiten.KeyX):
		g.ctrl.Reset()
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual), inpututil.IsKeyJustPressed(ebiten.KeyKPAdd):
		g.ctrl.SetIntParameter(keyCellSize, g.ctrl.RenderConfig().CellSize+1)
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus), inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract):
		g.ctrl.SetIntParameter(keyCellSize, g.ctrl.RenderConfig().CellSize-1)
	case g.scene != nil && inpututil.IsKeyJustPressed(ebiten.KeyT):
		eng := g.scene.Engine()
		next := scene.LayoutTable
		if eng.Kind() == scene.LayoutTable {
			next = scene.LayoutCloud
		}
		eng.Show(next, g.scene.transition, nil)
		g.log.Debug("layout", "kind", next)
	}
}

func (g *Game) handleMouse() {
	mx, my := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && mx < g.viewWidth() {
		if g.scene == nil {
			g.ctrl.ToggleCellAtPixel(mx, my)
		} else if p, ok := g.camera.Pick(g.scene.Engine().Proxies(), float64(mx), float64(my)); ok {
			p.Element.Activate()
		}
	}
	if g.scene == nil {
		return
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.dragging, g.dragX, g.dragY = true, mx, my
	}
	if g.dragging {
		if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
			g.dragging = false
		} else {
			g.camera.Orbit(float64(mx-g.dragX)*orbitPerPixel, float64(my-g.dragY)*orbitPerPixel)
			g.dragX, g.dragY = mx, my
		}
	}
	if _, wy := ebiten.Wheel(); wy != 0 {
		g.camera.Zoom(math.Pow(zoomPerNotch, wy))
	}
}

// fitWindow follows the 2D surface when the grid or cell size changes.
func (g *Game) fitWindow() {
	w, h := g.WindowSize()
	if w != g.winW || h != g.winH {
		g.winW, g.winH = w, h
		ebiten.SetWindowSize(w, h)
	}
}

func (g *Game) viewWidth() int {
	if g.scene != nil {
		return g.camera.Width
	}
	w, _ := core.SurfaceSize(g.ctrl.Size(), g.ctrl.RenderConfig().CellSize)
	return w
}

// Draw renders the active view, the panel and the help overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	cfg := g.ctrl.RenderConfig()
	screen.Fill(cfg.DeadColor)
	switch {
	case g.scene != nil:
		g.fog.Background = cfg.DeadColor
		scene.Draw(screen, g.camera, g.scene.Engine().Proxies(), g.fog)
	case g.surface != nil && g.surface.Image() != nil:
		screen.DrawImage(g.surface.Image(), nil)
	}
	g.hud.Draw(screen, screen.Bounds().Dy())
	g.overlay.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.scene != nil {
		g.camera.SetViewport(max(outsideWidth-hudWidth, 1), max(outsideHeight, 1))
		return outsideWidth, outsideHeight
	}
	return g.WindowSize()
}
