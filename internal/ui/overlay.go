//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws the key binding help on top of the viewer.
type Overlay struct {
	lines   []string
	visible bool
}

// NewOverlay constructs a hidden overlay.
func NewOverlay(threeD bool) *Overlay {
	return &Overlay{lines: HelpLines(threeD)}
}

// Update toggles visibility on H.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.visible = !o.visible
	}
}

// Draw paints the help box in the top-left corner when visible.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.visible {
		return
	}
	face := basicfont.Face7x13
	w := 0
	for _, l := range o.lines {
		w = max(w, text.BoundString(face, l).Dx())
	}
	h := len(o.lines)*statusSpacing + panelPadding
	vector.DrawFilledRect(screen, 8, 8, float32(w+2*panelPadding), float32(h), color.RGBA{A: 200}, false)
	y := 8 + statusSpacing
	for _, l := range o.lines {
		text.Draw(screen, l, face, 8+panelPadding, y, labelColor)
		y += statusSpacing
	}
}
