//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// EbitenSurface is a Surface backed by an offscreen ebiten image.
type EbitenSurface struct {
	img *ebiten.Image
}

// NewEbitenSurface returns a surface without a backing image; the first
// Resize allocates it.
func NewEbitenSurface() *EbitenSurface {
	return &EbitenSurface{}
}

// Resize implements Surface.
func (s *EbitenSurface) Resize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	if s.img != nil {
		b := s.img.Bounds()
		if b.Dx() == w && b.Dy() == h {
			return
		}
		s.img.Dispose()
	}
	s.img = ebiten.NewImage(w, h)
}

// Bounds implements Surface.
func (s *EbitenSurface) Bounds() (int, int) {
	if s.img == nil {
		return 0, 0
	}
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

// Clear implements Surface.
func (s *EbitenSurface) Clear() {
	if s.img != nil {
		s.img.Clear()
	}
}

// StrokeLine implements Surface. Coordinates address pixel corners, so the
// stroke is shifted half a pixel to cover whole pixels.
func (s *EbitenSurface) StrokeLine(x0, y0, x1, y1 float32, clr color.Color) {
	if s.img == nil {
		return
	}
	vector.StrokeLine(s.img, x0+0.5, y0+0.5, x1+0.5, y1+0.5, 1, clr, false)
}

// FillRect implements Surface.
func (s *EbitenSurface) FillRect(x, y, w, h float32, clr color.Color) {
	if s.img == nil {
		return
	}
	vector.DrawFilledRect(s.img, x, y, w, h, clr, false)
}

// Image exposes the offscreen image for compositing.
func (s *EbitenSurface) Image() *ebiten.Image { return s.img }
