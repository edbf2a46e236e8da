package lod

// Vertex is a single mesh vertex in volume-local space.
type Vertex struct {
	Position Vec3
}

// Chunk is the output of an extraction job. It is immutable once completed:
// the octmap, the LRU cache and any in-flight renderer share the same
// pointer.
//
// A Chunk produced for a mesh job carries Vertices and Indices; one produced
// for a raw-sample dependency job (border stitching) carries only Samples.
// The extractor defines which is which; the scheduler and octmap never
// inspect the contents.
type Chunk struct {
	Vertices []Vertex
	Indices  []uint32
	Samples  []float32
}

// IsEmpty reports whether the chunk holds no geometry and no samples.
func (c *Chunk) IsEmpty() bool {
	return len(c.Vertices) == 0 && len(c.Indices) == 0 && len(c.Samples) == 0
}
