package lod

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/vnykmshr/voxelflow/pkg/metrics"
)

// octmapMetrics resolves the registry's labeled instruments once so Update
// never touches a label map.
type octmapMetrics struct {
	requests  prometheus.Counter
	hits      prometheus.Counter
	evictions prometheus.Counter
	resident  prometheus.Gauge
	cached    prometheus.Gauge
}

func newOctmapMetrics(r *metrics.Registry, name string) *octmapMetrics {
	return &octmapMetrics{
		requests:  r.ChunkRequests.WithLabelValues(name),
		hits:      r.CacheHits.WithLabelValues(name),
		evictions: r.CacheEvictions.WithLabelValues(name),
		resident:  r.MeshesResident.WithLabelValues(name),
		cached:    r.MeshesCached.WithLabelValues(name),
	}
}

func resolveRegistry(cfg metrics.Config) *metrics.Registry {
	if cfg.Registry != nil {
		return metrics.NewRegistry(cfg.Registry)
	}
	return metrics.DefaultRegistry
}

func (o *Octmap) countRequest() {
	if o.om != nil {
		o.om.requests.Inc()
	}
}

func (o *Octmap) countCacheHit() {
	if o.om != nil {
		o.om.hits.Inc()
	}
}

func (o *Octmap) countEviction() {
	if o.om != nil {
		o.om.evictions.Inc()
	}
}

func (o *Octmap) observeGauges() {
	if o.om == nil {
		return
	}
	o.om.resident.Set(float64(len(o.meshes)))
	o.om.cached.Set(float64(o.cache.Len()))
}
