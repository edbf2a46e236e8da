package lod

import "math"

// Vec3 is a 3-component float vector in volume-local space.
type Vec3 struct {
	X, Y, Z float32
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

func (v Vec3) Len() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y + v.Z*v.Z)))
}

// Transform places the volume in world space. It is a pure translation: the
// volume's local origin sits at Position in world space.
type Transform struct {
	Position Vec3
}

// Apply maps a volume-local point to world space.
func (t Transform) Apply(v Vec3) Vec3 { return v.Add(t.Position) }

// ApplyInverse maps a world-space point into volume-local space.
func (t Transform) ApplyInverse(v Vec3) Vec3 { return v.Sub(t.Position) }
