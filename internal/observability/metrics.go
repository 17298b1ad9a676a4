package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Metrics bundles the process-wide collectors on a dedicated registry so
// tests can construct isolated instances.
type Metrics struct {
	Registry *prometheus.Registry

	RouteListRequests prometheus.Counter
	ReadingsSubmitted prometheus.Counter
	StoreDuration     *prometheus.HistogramVec
}

func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	m := &Metrics{
		Registry: reg,
		RouteListRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fieldgrid_route_list_requests_total",
			Help: "Route list requests served.",
		}),
		ReadingsSubmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fieldgrid_readings_submitted_total",
			Help: "Meter readings persisted.",
		}),
		StoreDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "fieldgrid_store_duration_seconds",
			Help:    "Latency of store round-trips by operation.",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
	}

	reg.MustRegister(m.RouteListRequests, m.ReadingsSubmitted, m.StoreDuration)
	return m
}
