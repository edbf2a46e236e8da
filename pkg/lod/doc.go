// Package lod maintains a level-of-detail octree over a cubical voxel
// volume. An Octmap walks the tree each frame from the viewer's position,
// subdividing regions near the viewer and coarsening distant ones, and
// returns the set of chunk meshes to render.
//
// Mesh extraction is asynchronous: missing chunks are submitted to a
// jobqueue.Queue and the octmap renders the nearest resident ancestor until
// they stream in, so Update never blocks and the volume is always covered
// without gaps. Meshes that scroll out of the working set are demoted to an
// LRU cache and promoted back for free when the viewer returns.
//
// The meshing algorithm itself is pluggable through the Extractor interface;
// the package ships sampling volumes (Sphere, Plus) and the spatial types
// (Aabb, Vec3, Transform) the traversal is built on.
package lod
