package scene

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Fog fades tiles toward the background with distance so the cloud reads as
// having depth.
type Fog struct {
	Background color.Color
	Near, Far  float64
	// Max is the strongest blend applied at Far, in [0, 1].
	Max float64
}

// DefaultFog fades to white between the default camera distance and the far
// edge of the cloud.
func DefaultFog() Fog {
	return Fog{
		Background: color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Near:       DefaultDistance,
		Far:        DefaultDistance + 3000,
		Max:        0.6,
	}
}

// Apply returns c blended toward the background for the given depth.
func (f Fog) Apply(c color.Color, depth float64) color.RGBA {
	base, _ := colorful.MakeColor(c)
	t := 0.0
	if f.Far > f.Near {
		t = clamp((depth-f.Near)/(f.Far-f.Near), 0, 1) * f.Max
	}
	if t > 0 && f.Background != nil {
		bg, _ := colorful.MakeColor(f.Background)
		base = base.BlendRgb(bg, t)
	}
	r, g, b := base.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
