package lod

import (
	"testing"

	"github.com/vnykmshr/voxelflow/internal/testutil"
)

func TestAabbSubdivide(t *testing.T) {
	a := Aabb{Min: Point3{8, 8, 8}, Size: 4}
	children := a.Subdivide()

	// X varies fastest, then Y, then Z.
	want := [8]Point3{
		{8, 8, 8}, {10, 8, 8}, {8, 10, 8}, {10, 10, 8},
		{8, 8, 10}, {10, 8, 10}, {8, 10, 10}, {10, 10, 10},
	}
	for i, child := range children {
		testutil.AssertEqual(t, child.Size, uint32(2))
		testutil.AssertEqual(t, child.Min, want[i])
	}
}

func TestAabbSubdivideCoversParent(t *testing.T) {
	a := Aabb{Min: Point3{0, 0, 0}, Size: 8}
	points := []Point3{
		{0, 0, 0}, {7, 7, 7}, {3, 4, 5}, {4, 0, 0}, {0, 4, 7},
	}
	for _, p := range points {
		owners := 0
		for _, child := range a.Subdivide() {
			if child.Contains(p) {
				owners++
			}
		}
		testutil.AssertEqual(t, owners, 1)
	}
}

func TestAabbContainsIsHalfOpen(t *testing.T) {
	a := Aabb{Min: Point3{0, 0, 0}, Size: 4}
	testutil.AssertEqual(t, a.Contains(Point3{0, 0, 0}), true)
	testutil.AssertEqual(t, a.Contains(Point3{3, 3, 3}), true)
	testutil.AssertEqual(t, a.Contains(Point3{4, 0, 0}), false)
	testutil.AssertEqual(t, a.Contains(Point3{0, 4, 0}), false)
}

func TestAabbDistanceFrom(t *testing.T) {
	a := Aabb{Min: Point3{0, 0, 0}, Size: 4}

	// Inside and on the surface.
	testutil.AssertEqual(t, a.DistanceFrom(Vec3{2, 2, 2}), 0)
	testutil.AssertEqual(t, a.DistanceFrom(Vec3{4, 4, 4}), 0)

	// Along one axis.
	testutil.AssertEqual(t, a.DistanceFrom(Vec3{10, 2, 2}), 6)
	testutil.AssertEqual(t, a.DistanceFrom(Vec3{-3, 2, 2}), 3)

	// Diagonal from a corner: sqrt(3^2 + 4^2) in the XY plane.
	testutil.AssertEqual(t, a.DistanceFrom(Vec3{7, 8, 2}), 5)
}

func TestAabbString(t *testing.T) {
	a := Aabb{Min: Point3{1, 2, 3}, Size: 16}
	testutil.AssertEqual(t, a.String(), "aabb(1,2,3;16)")
}

func TestTransformRoundTrip(t *testing.T) {
	tr := Transform{Position: Vec3{10, -5, 3}}
	p := Vec3{1, 2, 3}
	testutil.AssertEqual(t, tr.Apply(p), Vec3{11, -3, 6})
	testutil.AssertEqual(t, tr.ApplyInverse(tr.Apply(p)), p)
}
