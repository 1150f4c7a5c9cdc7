//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var (
	panelBackground = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	titleColor      = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor      = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	mutedColor      = color.RGBA{R: 160, G: 160, B: 170, A: 255}
)

// HUD renders a Panel to the right of the viewer.
type HUD struct {
	*Panel
	offsetX int
	image   *ebiten.Image
}

// NewHUD constructs a HUD for src with the given panel width.
func NewHUD(src Source, title string, width int) *HUD {
	return &HUD{Panel: NewPanel(src, title, width)}
}

// Update refreshes values and reports whether a click landed on the panel.
func (h *HUD) Update(offsetX int) bool {
	if h == nil {
		return false
	}
	h.offsetX = offsetX
	h.Refresh()
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	mx, my := ebiten.CursorPosition()
	if mx < offsetX {
		return false
	}
	h.Click(mx-offsetX, my)
	return true
}

// Draw paints the panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	var cur image.Rectangle
	if h.image != nil {
		cur = h.image.Bounds()
	}
	if needsRealloc(cur, h.width, height) {
		if h.image != nil {
			h.image.Dispose()
		}
		h.image = ebiten.NewImage(h.width, height)
	}
	h.image.Fill(panelBackground)
	h.drawControls()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(h.offsetX), 0)
	screen.DrawImage(h.image, op)
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	text.Draw(h.image, h.title, face, panelPadding, panelPadding+headerBaseline, titleColor)
	for i := range h.controls {
		st := &h.controls[i]
		y := st.top + labelBaseline
		text.Draw(h.image, st.control.Label, face, panelPadding, y, labelColor)

		valueColor := labelColor
		if !st.hasValue {
			valueColor = mutedColor
		}
		w := text.BoundString(face, st.value).Dx()
		text.Draw(h.image, st.value, face, st.minusRect.Min.X-buttonGap-w, y, valueColor)

		h.drawButton(st.minusRect, "-", h.canAdjust(st, -1))
		h.drawButton(st.plusRect, "+", h.canAdjust(st, 1))
	}
	y := controlsTop + len(h.controls)*lineHeight + statusSpacing
	for _, line := range h.status {
		text.Draw(h.image, line, face, panelPadding, y, mutedColor)
		y += statusSpacing
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	vector.DrawFilledRect(h.image, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), bg, false)

	face := basicfont.Face7x13
	b := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-b.Dx())/2
	y := rect.Min.Y + (rect.Dy()-b.Dy())/2 + b.Dy()
	text.Draw(h.image, label, face, x, y, fg)
}
