// Package metrics provides Prometheus instrumentation for voxelflow components.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds all metric instances for voxelflow components.
type Registry struct {
	// Job Queue Metrics
	JobsPending   *prometheus.GaugeVec
	JobsRunning   *prometheus.GaugeVec
	JobsParked    *prometheus.GaugeVec
	JobsCompleted *prometheus.CounterVec
	StaleResults  *prometheus.CounterVec
	JobsRemoved   *prometheus.CounterVec

	// LOD Octree Metrics
	ChunkRequests  *prometheus.CounterVec
	CacheHits      *prometheus.CounterVec
	CacheEvictions *prometheus.CounterVec
	MeshesResident *prometheus.GaugeVec
	MeshesCached   *prometheus.GaugeVec
}

// DefaultRegistry is the default metrics registry used by voxelflow components.
var DefaultRegistry *Registry

func init() {
	DefaultRegistry = NewRegistry(prometheus.DefaultRegisterer)
}

// NewRegistry creates a new metrics registry with the given Prometheus registerer.
func NewRegistry(reg prometheus.Registerer) *Registry {
	factory := promauto.With(reg)

	return &Registry{
		// Job Queue Metrics
		JobsPending: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "voxelflow",
				Subsystem: "jobqueue",
				Name:      "jobs_pending",
				Help:      "Number of jobs waiting on dependencies",
			},
			[]string{"queue_name"},
		),

		JobsRunning: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "voxelflow",
				Subsystem: "jobqueue",
				Name:      "jobs_running",
				Help:      "Number of jobs dispatched to workers",
			},
			[]string{"queue_name"},
		),

		JobsParked: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "voxelflow",
				Subsystem: "jobqueue",
				Name:      "jobs_parked",
				Help:      "Number of submitted jobs parked by backpressure",
			},
			[]string{"queue_name"},
		),

		JobsCompleted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "voxelflow",
				Subsystem: "jobqueue",
				Name:      "jobs_completed_total",
				Help:      "Total number of jobs completed",
			},
			[]string{"queue_name"},
		),

		StaleResults: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "voxelflow",
				Subsystem: "jobqueue",
				Name:      "stale_results_total",
				Help:      "Total number of worker results discarded because the job was removed",
			},
			[]string{"queue_name"},
		),

		JobsRemoved: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "voxelflow",
				Subsystem: "jobqueue",
				Name:      "jobs_removed_total",
				Help:      "Total number of jobs removed, including orphaned dependencies",
			},
			[]string{"queue_name"},
		),

		// LOD Octree Metrics
		ChunkRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "voxelflow",
				Subsystem: "lod",
				Name:      "chunk_requests_total",
				Help:      "Total number of chunk mesh extraction jobs issued",
			},
			[]string{"octmap_name"},
		),

		CacheHits: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "voxelflow",
				Subsystem: "lod",
				Name:      "cache_hits_total",
				Help:      "Total number of meshes promoted from the LRU cache instead of re-extracted",
			},
			[]string{"octmap_name"},
		),

		CacheEvictions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "voxelflow",
				Subsystem: "lod",
				Name:      "cache_evictions_total",
				Help:      "Total number of meshes dropped from the LRU cache by capacity",
			},
			[]string{"octmap_name"},
		),

		MeshesResident: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "voxelflow",
				Subsystem: "lod",
				Name:      "meshes_resident",
				Help:      "Number of chunk meshes currently resident",
			},
			[]string{"octmap_name"},
		),

		MeshesCached: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "voxelflow",
				Subsystem: "lod",
				Name:      "meshes_cached",
				Help:      "Number of chunk meshes held in the LRU cache",
			},
			[]string{"octmap_name"},
		),
	}
}
