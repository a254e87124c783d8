package gridmap

import "math"

// Vec3 is a world-space position. Y is elevation; the grid lies in the XZ plane.
type Vec3 struct {
	X, Y, Z float64
}

func V3(x, y, z float64) Vec3 { return Vec3{x, y, z} }

func (v Vec3) Add(o Vec3) Vec3      { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3      { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) Len() float64         { return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z) }

// Flat drops the elevation component.
func (v Vec3) Flat() Vec3 { return Vec3{v.X, 0, v.Z} }

func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l < 1e-10 {
		return Vec3{}
	}
	return Vec3{v.X / l, v.Y / l, v.Z / l}
}

// DistXZ is the distance between two points ignoring elevation.
func (v Vec3) DistXZ(o Vec3) float64 {
	return math.Hypot(v.X-o.X, v.Z-o.Z)
}
