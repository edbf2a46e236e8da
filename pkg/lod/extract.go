package lod

import (
	"github.com/vnykmshr/voxelflow/pkg/jobqueue"
)

// DependencyKind labels why one extraction job depends on another: the
// depender needs the dependee's raw samples to stitch a seam on that side.
type DependencyKind uint8

const (
	KindRegular DependencyKind = iota
	KindPositiveX
	KindPositiveY
	KindPositiveZ
)

// Job is an extraction job as submitted to the queue: keyed by Aabb, edges
// labeled with DependencyKind, inputs opaque to everything but the extractor.
type Job = jobqueue.Job[Aabb, DependencyKind, any]

// Extractor turns volume samples into chunk meshes. It is the collaborator
// that owns the meshing algorithm (marching cubes, surface nets, transvoxel);
// the octmap only sees the job boundary.
type Extractor interface {
	// MakeJob builds the extraction job for aabb, including dependency jobs
	// for any neighboring samples needed to stitch seams. Called on the
	// simulation goroutine.
	MakeJob(totalSize uint32, aabb Aabb, volume Volume) Job

	// RunJob computes a job's chunk from its input and the resolved
	// dependency outputs. Called concurrently on worker goroutines; it must
	// be pure apart from reading the volume. A missing or mismatched
	// dependency is a programmer error and should panic.
	RunJob(key Aabb, input any, deps []jobqueue.DependencyOutput[DependencyKind, *Chunk]) *Chunk
}
