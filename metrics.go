package frontierzdd

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides Prometheus-compatible instrumentation for ZDD
// construction, grounded on the "langgraph_"-namespaced collector in
// langgraph-go's graph/metrics.go (promauto.With, Gauge/Histogram pairs).
//
// Metrics exposed, all namespaced "frontierzdd_":
//
//   - construct_duration_ms (histogram): wall-clock time of a Construct
//     call, labeled by run_id.
//   - node_count (gauge): NodeCount() of the most recently constructed ZDD.
//   - frontier_width (gauge): max_i |F_i| for the most recently constructed
//     ZDD, the dominant driver of memory cost.
type Metrics struct {
	constructDuration *prometheus.HistogramVec
	nodeCount         prometheus.Gauge
	frontierWidth     prometheus.Gauge
}

// NewMetrics creates and registers the frontierzdd metrics with registry.
// Pass prometheus.DefaultRegisterer for the global registry, or a fresh
// prometheus.NewRegistry() for test isolation.
func NewMetrics(registry prometheus.Registerer) *Metrics {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registry)

	return &Metrics{
		constructDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "frontierzdd",
			Name:      "construct_duration_ms",
			Help:      "Wall-clock duration of a Construct call, in milliseconds",
			Buckets:   prometheus.ExponentialBuckets(0.1, 4, 12),
		}, []string{"run_id"}),
		nodeCount: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "frontierzdd",
			Name:      "node_count",
			Help:      "Node count of the most recently constructed ZDD",
		}),
		frontierWidth: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "frontierzdd",
			Name:      "frontier_width",
			Help:      "Maximum frontier width of the most recently constructed ZDD",
		}),
	}
}

// observeConstruct records a completed Construct call.
func (m *Metrics) observeConstruct(runID string, durationMs float64, nodeCount, frontierWidth int) {
	if m == nil {
		return
	}
	m.constructDuration.WithLabelValues(runID).Observe(durationMs)
	m.nodeCount.Set(float64(nodeCount))
	m.frontierWidth.Set(float64(frontierWidth))
}
