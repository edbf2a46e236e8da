/*
Package voxelflow provides an asynchronous, dependency-aware job queue and a
spatial level-of-detail (LOD) chunk cache for real-time volume meshing.

Job Queue (pkg/jobqueue):
  - Incremental dependency DAG with at-most-one in-flight job per key
  - Backpressure through a bounded in-flight window
  - Cancellation with transitive orphan cleanup
  - A single manager goroutine owns all graph state; workers only compute

LOD Octree (pkg/lod):
  - Octree traversal selecting finer detail near the viewer
  - Gap-free active set: parents render until all children are resident
  - LRU cache for meshes that scrolled out of view

Example usage:

	import (
		"github.com/vnykmshr/voxelflow/pkg/jobqueue"
		"github.com/vnykmshr/voxelflow/pkg/lod"
	)

	octmap, _ := lod.NewOctmap(lod.DefaultSettings(), lod.Transform{}, volume, extractor)
	defer octmap.Close()

	// Once per simulation frame:
	transform, chunks := octmap.Update(viewerPosition)
	for _, c := range chunks {
		render(transform, c.Aabb, c.Chunk)
	}
*/
package voxelflow
