package render

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/draw"
)

// Surface is a raster target the grid renderer paints on.
type Surface interface {
	// Resize sets the surface extents in pixels. Resizing to the current
	// extents keeps the existing contents.
	Resize(w, h int)
	Bounds() (w, h int)
	Clear()
	StrokeLine(x0, y0, x1, y1 float32, clr color.Color)
	FillRect(x, y, w, h float32, clr color.Color)
}

// RGBASurface is an in-memory Surface backed by an image.RGBA. It is used for
// headless snapshots and tests.
type RGBASurface struct {
	img *image.RGBA
}

// NewRGBASurface returns an empty surface.
func NewRGBASurface() *RGBASurface {
	return &RGBASurface{img: image.NewRGBA(image.Rectangle{})}
}

// Resize implements Surface.
func (s *RGBASurface) Resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	if s.img.Rect.Dx() == w && s.img.Rect.Dy() == h {
		return
	}
	s.img = image.NewRGBA(image.Rect(0, 0, w, h))
}

// Bounds implements Surface.
func (s *RGBASurface) Bounds() (int, int) { return s.img.Rect.Dx(), s.img.Rect.Dy() }

// Clear implements Surface.
func (s *RGBASurface) Clear() {
	draw.Draw(s.img, s.img.Rect, image.Transparent, image.Point{}, draw.Src)
}

// StrokeLine implements Surface with a one pixel wide, non-antialiased line.
// Only horizontal and vertical lines are drawn; the grid needs nothing else.
func (s *RGBASurface) StrokeLine(x0, y0, x1, y1 float32, clr color.Color) {
	ax, ay, bx, by := floor(x0), floor(y0), floor(x1), floor(y1)
	if ax != bx && ay != by {
		return
	}
	if ax > bx {
		ax, bx = bx, ax
	}
	if ay > by {
		ay, by = by, ay
	}
	r := image.Rect(ax, ay, bx+1, by+1).Intersect(s.img.Rect)
	if r.Empty() {
		return
	}
	draw.Draw(s.img, r, image.NewUniform(rgba8(clr)), image.Point{}, draw.Src)
}

// FillRect implements Surface.
func (s *RGBASurface) FillRect(x, y, w, h float32, clr color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	r := image.Rect(floor(x), floor(y), floor(x+w), floor(y+h)).Intersect(s.img.Rect)
	if r.Empty() {
		return
	}
	draw.Draw(s.img, r, image.NewUniform(rgba8(clr)), image.Point{}, draw.Src)
}

// Image exposes the backing image.
func (s *RGBASurface) Image() *image.RGBA { return s.img }

// At returns the pixel at (x, y).
func (s *RGBASurface) At(x, y int) color.RGBA { return s.img.RGBAAt(x, y) }

// WritePNG encodes the surface as PNG.
func (s *RGBASurface) WritePNG(w io.Writer) error {
	return png.Encode(w, s.img)
}

func floor(v float32) int { return int(math.Floor(float64(v))) }
