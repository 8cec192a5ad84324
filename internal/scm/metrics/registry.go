// Package metrics exposes the propagation and sensitivity engines'
// runtime behavior as Prometheus instrumentation.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds every metric the SCM engine records.
type Registry struct {
	PropagationDuration  prometheus.Histogram
	PropagationsTotal    *prometheus.CounterVec
	CircuitBreakerTrips  *prometheus.CounterVec
	VarianceClampTrips   *prometheus.CounterVec
	SensitivityDuration  prometheus.Histogram
	SensitivityRunsTotal prometheus.Counter

	registry *prometheus.Registry
}

var (
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the process-wide metrics registry.
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry builds an isolated registry, useful for tests that don't
// want to share DefaultRegistry's global state.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()
	r := &Registry{registry: reg}

	r.PropagationDuration = promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
		Name:    "scm_propagation_duration_seconds",
		Help:    "Wall-clock duration of a single propagate() call",
		Buckets: prometheus.DefBuckets,
	})
	r.PropagationsTotal = promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
		Name: "scm_propagations_total",
		Help: "Total propagate() calls by outcome",
	}, []string{"status"})
	r.CircuitBreakerTrips = promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
		Name: "scm_circuit_breaker_trips_total",
		Help: "Times a node's circuit breaker clamped or mean-reverted a sample vector",
	}, []string{"node"})
	r.VarianceClampTrips = promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
		Name: "scm_variance_clamp_trips_total",
		Help: "Times a node's empirical stddev exceeded its cap and was compressed",
	}, []string{"node"})
	r.SensitivityDuration = promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
		Name:    "scm_sensitivity_duration_seconds",
		Help:    "Wall-clock duration of a single analyze() call",
		Buckets: prometheus.DefBuckets,
	})
	r.SensitivityRunsTotal = promauto.With(reg).NewCounter(prometheus.CounterOpts{
		Name: "scm_sensitivity_runs_total",
		Help: "Total analyze() calls",
	})

	return r
}

// GetPrometheusRegistry returns the underlying registry for exposition
// via promhttp.HandlerFor.
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}
