package jobqueue

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/vnykmshr/voxelflow/pkg/metrics"
)

// queueMetrics resolves the registry's labeled instruments once, at queue
// construction, so the manager's hot path never touches a label map.
type queueMetrics struct {
	pending   prometheus.Gauge
	running   prometheus.Gauge
	parked    prometheus.Gauge
	completed prometheus.Counter
	stale     prometheus.Counter
	removed   prometheus.Counter
}

func newQueueMetrics(r *metrics.Registry, name string) *queueMetrics {
	return &queueMetrics{
		pending:   r.JobsPending.WithLabelValues(name),
		running:   r.JobsRunning.WithLabelValues(name),
		parked:    r.JobsParked.WithLabelValues(name),
		completed: r.JobsCompleted.WithLabelValues(name),
		stale:     r.StaleResults.WithLabelValues(name),
		removed:   r.JobsRemoved.WithLabelValues(name),
	}
}
