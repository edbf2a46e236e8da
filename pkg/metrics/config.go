package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Config holds configuration for metrics collection.
type Config struct {
	// Enabled controls whether metrics collection is active.
	Enabled bool

	// Registry is a custom Prometheus registerer to register instruments
	// with. If nil, components share DefaultRegistry, which registers on
	// prometheus.DefaultRegisterer once at package init.
	Registry prometheus.Registerer
}

// DefaultConfig returns a default metrics configuration.
func DefaultConfig() Config {
	return Config{Enabled: true}
}
