package lod

// Volume is a density field over the volume's voxel grid. Implementations
// must be safe for concurrent sampling: extraction jobs sample them from
// multiple worker goroutines at once.
//
// The sign convention follows surface extraction: positive values are inside
// the surface, negative values outside, zero exactly on it.
type Volume interface {
	Sample(position Point3) float32
}

// Sphere is a sphere of the given diameter centered in the volume.
type Sphere struct {
	Radius float32
}

// Sample implements Volume.
func (s Sphere) Sample(position Point3) float32 {
	// Shift position from 0..n to -radius/2..radius/2.
	half := s.Radius / 2
	p := position.Vec3().Sub(Vec3{half, half, half})
	return 0.5 - p.Len()/s.Radius
}

// Plus sums two volumes, for composing fields.
type Plus struct {
	A, B Volume
}

// Sample implements Volume.
func (p Plus) Sample(position Point3) float32 {
	return p.A.Sample(position) + p.B.Sample(position)
}
