package scene

import (
	"math"
	"sort"
)

const (
	DefaultDistance = 2000.0
	MinDistance     = 500.0
	MaxDistance     = 7000.0
	DefaultFOV      = 40.0

	nearPlane = 1.0
	maxPitch  = math.Pi/2 - 0.01
)

// ScreenPoint is a projected point in viewport pixels.
type ScreenPoint struct {
	X, Y  float64
	Depth float64
}

// Camera is a perspective camera orbiting the origin.
type Camera struct {
	Distance float64
	Yaw      float64
	Pitch    float64
	FOV      float64 // vertical, degrees

	Width, Height int
}

// NewCamera returns a camera at the default distance facing the table.
func NewCamera(w, h int) *Camera {
	return &Camera{Distance: DefaultDistance, FOV: DefaultFOV, Width: w, Height: h}
}

// SetViewport updates the aspect ratio.
func (c *Camera) SetViewport(w, h int) {
	c.Width, c.Height = w, h
}

// Zoom scales the distance by factor, clamped to [MinDistance, MaxDistance].
func (c *Camera) Zoom(factor float64) {
	if factor <= 0 {
		return
	}
	c.Distance = clamp(c.Distance*factor, MinDistance, MaxDistance)
}

// Orbit rotates the camera around the origin by the given angles in radians.
func (c *Camera) Orbit(dyaw, dpitch float64) {
	c.Yaw += dyaw
	c.Pitch = clamp(c.Pitch+dpitch, -maxPitch, maxPitch)
}

func (c *Camera) focal() float64 {
	fov := c.FOV
	if fov <= 0 {
		fov = DefaultFOV
	}
	return float64(c.Height) / 2 / math.Tan(fov*math.Pi/360)
}

// view transforms a world point into camera space, camera looking down -Z.
func (c *Camera) view(v Vec3) Vec3 {
	v = Rotate(v, Vec3{Y: -c.Yaw})
	v = Rotate(v, Vec3{X: -c.Pitch})
	v.Z -= c.Distance
	return v
}

// Project maps a world point to the viewport. ok is false behind the camera.
func (c *Camera) Project(v Vec3) (ScreenPoint, bool) {
	cv := c.view(v)
	depth := -cv.Z
	if depth < nearPlane {
		return ScreenPoint{Depth: depth}, false
	}
	f := c.focal() / depth
	return ScreenPoint{
		X:     float64(c.Width)/2 + cv.X*f,
		Y:     float64(c.Height)/2 - cv.Y*f,
		Depth: depth,
	}, true
}

// Quad returns the world-space corners of a proxy's tile in winding order.
func Quad(p *Proxy) [4]Vec3 {
	h := p.Element.Size / 2
	local := [4]Vec3{{-h, h, 0}, {h, h, 0}, {h, -h, 0}, {-h, -h, 0}}
	var out [4]Vec3
	for i, v := range local {
		out[i] = Rotate(v, p.Pose.Rotation).Add(p.Pose.Position)
	}
	return out
}

// ProjectQuad projects a proxy's tile. ok is false when any corner is behind
// the camera.
func (c *Camera) ProjectQuad(p *Proxy) ([4]ScreenPoint, bool) {
	var out [4]ScreenPoint
	for i, v := range Quad(p) {
		sp, ok := c.Project(v)
		if !ok {
			return out, false
		}
		out[i] = sp
	}
	return out, true
}

// Depth returns the camera-space distance of a proxy's center.
func (c *Camera) Depth(p *Proxy) float64 {
	return -c.view(p.Pose.Position).Z
}

// Pick returns the front-most proxy whose projected tile contains (x, y).
func (c *Camera) Pick(proxies []*Proxy, x, y float64) (*Proxy, bool) {
	var best *Proxy
	bestDepth := math.Inf(1)
	for _, p := range proxies {
		q, ok := c.ProjectQuad(p)
		if !ok || !insideQuad(q, x, y) {
			continue
		}
		if d := c.Depth(p); d < bestDepth {
			best, bestDepth = p, d
		}
	}
	return best, best != nil
}

// DrawOrder returns proxy indices sorted back to front.
func (c *Camera) DrawOrder(proxies []*Proxy) []int {
	depth := make([]float64, len(proxies))
	order := make([]int, len(proxies))
	for i, p := range proxies {
		order[i] = i
		depth[i] = c.Depth(p)
	}
	sort.SliceStable(order, func(a, b int) bool { return depth[order[a]] > depth[order[b]] })
	return order
}

// insideQuad tests a point against a convex quad of either winding.
func insideQuad(q [4]ScreenPoint, x, y float64) bool {
	var pos, neg bool
	for i := range q {
		a, b := q[i], q[(i+1)%4]
		cross := (b.X-a.X)*(y-a.Y) - (b.Y-a.Y)*(x-a.X)
		if cross > 0 {
			pos = true
		} else if cross < 0 {
			neg = true
		}
		if pos && neg {
			return false
		}
	}
	return true
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
