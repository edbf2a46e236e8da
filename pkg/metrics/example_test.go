package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Example_basicUsage demonstrates basic metrics configuration.
func Example_basicUsage() {
	// Create a separate registry for this test
	testRegistry := prometheus.NewRegistry()
	registry := NewRegistry(testRegistry)

	// Example of accessing metrics
	registry.JobsPending.WithLabelValues("meshing").Set(12)
	registry.JobsRunning.WithLabelValues("meshing").Set(4)
	registry.JobsCompleted.WithLabelValues("meshing").Add(128)

	fmt.Println("Metrics updated successfully")

	// Output:
	// Metrics updated successfully
}

// Example_customRegistry demonstrates using a custom Prometheus registry.
func Example_customRegistry() {
	// Create a custom registry
	customRegistry := prometheus.NewRegistry()

	config := Config{
		Enabled:  true,
		Registry: customRegistry,
	}

	// Create metrics registry with custom config
	registry := NewRegistry(config.Registry)

	// Test the registry
	registry.ChunkRequests.WithLabelValues("terrain").Add(64)
	registry.CacheHits.WithLabelValues("terrain").Add(48)
	registry.CacheEvictions.WithLabelValues("terrain").Add(16)

	fmt.Printf("Custom registry enabled: %v\n", config.Enabled)
	fmt.Println("Custom registry configured with voxelflow metrics")

	// Output:
	// Custom registry enabled: true
	// Custom registry configured with voxelflow metrics
}

// Example_metricsServer demonstrates setting up a metrics HTTP server.
func Example_metricsServer() {
	// In a real application, you would start a metrics server:
	//
	// http.Handle("/metrics", promhttp.Handler())
	// log.Fatal(http.ListenAndServe(":8080", nil))
	//
	// Available metrics would include:
	// - voxelflow_jobqueue_jobs_pending{queue_name="meshing"}
	// - voxelflow_jobqueue_jobs_running{queue_name="meshing"}
	// - voxelflow_lod_chunk_requests_total{octmap_name="terrain"}
	// - voxelflow_lod_cache_hits_total{octmap_name="terrain"}
	// And more...

	fmt.Println("Metrics available at /metrics endpoint")

	// Output:
	// Metrics available at /metrics endpoint
}
