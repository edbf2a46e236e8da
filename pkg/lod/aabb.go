package lod

import "fmt"

// Point3 is an integer position inside the volume, in voxel units.
type Point3 struct {
	X, Y, Z uint32
}

func (p Point3) Vec3() Vec3 {
	return Vec3{float32(p.X), float32(p.Y), float32(p.Z)}
}

// Aabb is an axis-aligned cube identified by its minimum corner and side
// length. It doubles as an octree node address, a job key and a cache key:
// two Aabbs are the same node exactly when they compare equal.
type Aabb struct {
	Min  Point3
	Size uint32
}

// AabbFromSize returns the root Aabb covering the whole volume.
func AabbFromSize(size uint32) Aabb {
	return Aabb{Size: size}
}

func (a Aabb) Max() Point3 {
	return Point3{a.Min.X + a.Size, a.Min.Y + a.Size, a.Min.Z + a.Size}
}

func (a Aabb) Center() Vec3 {
	half := float32(a.Size) / 2
	return a.Min.Vec3().Add(Vec3{half, half, half})
}

// Subdivide yields the 8 child cubes of half size, in a fixed order: the X
// bit varies fastest, then Y, then Z.
func (a Aabb) Subdivide() [8]Aabb {
	half := a.Size / 2
	var children [8]Aabb
	for i := uint32(0); i < 8; i++ {
		min := a.Min
		if i&1 != 0 {
			min.X += half
		}
		if i&2 != 0 {
			min.Y += half
		}
		if i&4 != 0 {
			min.Z += half
		}
		children[i] = Aabb{Min: min, Size: half}
	}
	return children
}

// DistanceFrom returns the distance from a point to the cube's surface, or 0
// if the point is inside.
func (a Aabb) DistanceFrom(p Vec3) float32 {
	max := a.Max()
	dx := axisDistance(p.X, float32(a.Min.X), float32(max.X))
	dy := axisDistance(p.Y, float32(a.Min.Y), float32(max.Y))
	dz := axisDistance(p.Z, float32(a.Min.Z), float32(max.Z))
	return Vec3{dx, dy, dz}.Len()
}

// Contains reports whether p lies inside the half-open cube [min, max).
func (a Aabb) Contains(p Point3) bool {
	max := a.Max()
	return p.X >= a.Min.X && p.X < max.X &&
		p.Y >= a.Min.Y && p.Y < max.Y &&
		p.Z >= a.Min.Z && p.Z < max.Z
}

func (a Aabb) String() string {
	return fmt.Sprintf("aabb(%d,%d,%d;%d)", a.Min.X, a.Min.Y, a.Min.Z, a.Size)
}

func axisDistance(v, lo, hi float32) float32 {
	switch {
	case v < lo:
		return lo - v
	case v > hi:
		return v - hi
	default:
		return 0
	}
}
