package lod

import (
	"testing"

	"github.com/vnykmshr/voxelflow/internal/testutil"
)

func TestSphereSample(t *testing.T) {
	s := Sphere{Radius: 64}

	// The density peaks at the center of the volume and falls off outward.
	center := s.Sample(Point3{32, 32, 32})
	testutil.AssertEqual(t, center, 0.5)

	surface := s.Sample(Point3{64, 32, 32})
	testutil.AssertEqual(t, surface, 0)

	if corner := s.Sample(Point3{0, 0, 0}); corner >= 0 {
		t.Fatalf("corner sample is %v, want negative (outside)", corner)
	}
}

func TestPlusSumsVolumes(t *testing.T) {
	v := Plus{A: Sphere{Radius: 64}, B: Sphere{Radius: 64}}
	testutil.AssertEqual(t, v.Sample(Point3{32, 32, 32}), 1.0)
}
