// Package metrics provides Prometheus instrumentation for voxelflow components.
//
// This package enables monitoring and observability for voxelflow's job queue
// and LOD octree components through Prometheus metrics.
//
// # Quick Start
//
// Enable metrics through the component configuration:
//
//	queue, err := jobqueue.New[lod.Aabb, lod.DependencyKind, any, *lod.Chunk](
//		jobqueue.Config{
//			Name:    "meshing",
//			Metrics: metrics.DefaultConfig(),
//		},
//		handler,
//	)
//
// Then expose metrics via HTTP:
//
//	http.Handle("/metrics", promhttp.Handler())
//	log.Fatal(http.ListenAndServe(":8080", nil))
//
// # Custom Registry
//
// Use a custom Prometheus registry for isolation:
//
//	registry := prometheus.NewRegistry()
//	config := metrics.Config{
//		Enabled:  true,
//		Registry: registry,
//	}
//
// # Available Metrics
//
// ## Job Queue Metrics
//
//   - voxelflow_jobqueue_jobs_pending: Number of jobs waiting on dependencies
//   - voxelflow_jobqueue_jobs_running: Number of jobs dispatched to workers
//   - voxelflow_jobqueue_jobs_parked: Number of submitted jobs parked by backpressure
//   - voxelflow_jobqueue_jobs_completed_total: Total number of jobs completed
//   - voxelflow_jobqueue_stale_results_total: Total results discarded because the job was removed
//   - voxelflow_jobqueue_jobs_removed_total: Total jobs removed, including orphaned dependencies
//
// ## LOD Octree Metrics
//
//   - voxelflow_lod_chunk_requests_total: Total chunk mesh extraction jobs issued
//   - voxelflow_lod_cache_hits_total: Total meshes promoted from the LRU cache
//   - voxelflow_lod_cache_evictions_total: Total meshes dropped from the LRU cache by capacity
//   - voxelflow_lod_meshes_resident: Number of chunk meshes currently resident
//   - voxelflow_lod_meshes_cached: Number of chunk meshes held in the LRU cache
//
// # Labels
//
//   - queue_name: User-provided name for the job queue instance
//   - octmap_name: User-provided name for the octmap instance
//
// # Performance
//
// Metrics collection is designed for minimal overhead: label values are
// resolved once at component construction, instruments are updated only when
// operations occur, and there are no background goroutines or timers.
package metrics
