package scene

import "math"

// Vec3 is a float64 3D vector used for positions and Euler rotations.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns a+b.
func (a Vec3) Add(b Vec3) Vec3 { return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }

// Sub returns a-b.
func (a Vec3) Sub(b Vec3) Vec3 { return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }

// Scale returns a*s.
func (a Vec3) Scale(s float64) Vec3 { return Vec3{a.X * s, a.Y * s, a.Z * s} }

// Len returns the Euclidean length of a.
func (a Vec3) Len() float64 { return math.Sqrt(a.X*a.X + a.Y*a.Y + a.Z*a.Z) }

// axis returns component i (0=X, 1=Y, 2=Z).
func (a Vec3) axis(i int) float64 {
	switch i {
	case 0:
		return a.X
	case 1:
		return a.Y
	default:
		return a.Z
	}
}

// Rotate applies the Euler rotation e (radians, XYZ order) to v: Z first,
// then Y, then X.
func Rotate(v, e Vec3) Vec3 {
	if e.Z != 0 {
		s, c := math.Sincos(e.Z)
		v = Vec3{v.X*c - v.Y*s, v.X*s + v.Y*c, v.Z}
	}
	if e.Y != 0 {
		s, c := math.Sincos(e.Y)
		v = Vec3{v.X*c + v.Z*s, v.Y, -v.X*s + v.Z*c}
	}
	if e.X != 0 {
		s, c := math.Sincos(e.X)
		v = Vec3{v.X, v.Y*c - v.Z*s, v.Y*s + v.Z*c}
	}
	return v
}
