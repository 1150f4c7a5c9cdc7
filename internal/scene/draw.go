//go:build ebiten

package scene

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Draw paints every proxy tile back to front with depth fog and a one pixel
// border.
func Draw(dst *ebiten.Image, cam *Camera, proxies []*Proxy, fog Fog) {
	vs := make([]ebiten.Vertex, 4)
	is := []uint16{0, 1, 2, 0, 2, 3}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	for _, i := range cam.DrawOrder(proxies) {
		p := proxies[i]
		q, ok := cam.ProjectQuad(p)
		if !ok || p.Element.Fill == nil {
			continue
		}
		depth := cam.Depth(p)
		fill := fog.Apply(p.Element.Fill, depth)
		r, g, b, a := float32(fill.R)/255, float32(fill.G)/255, float32(fill.B)/255, float32(fill.A)/255
		for k, sp := range q {
			vs[k] = ebiten.Vertex{
				DstX: float32(sp.X), DstY: float32(sp.Y),
				SrcX: 1, SrcY: 1,
				ColorR: r, ColorG: g, ColorB: b, ColorA: a,
			}
		}
		dst.DrawTriangles(vs, is, whiteSubImage, op)

		if p.Element.Border == nil {
			continue
		}
		border := fog.Apply(p.Element.Border, depth)
		for k := range q {
			p0, p1 := q[k], q[(k+1)%4]
			vector.StrokeLine(dst, float32(p0.X), float32(p0.Y), float32(p1.X), float32(p1.Y), 1, border, true)
		}
	}
}
