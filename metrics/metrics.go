package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "riskanalytics"

const (
	OperationRiskTrend          = "risk_trend"
	OperationGlucoseStatus      = "glucose_status"
	OperationClinicDistribution = "clinic_distribution"

	SeriesRiskScore = "risk_score"
	SeriesGlucose   = "glucose"
)

// Metrics holds the collectors of the analytics service. All collectors are registered
// on a dedicated registry so tests and tools can create as many instances as they need.
type Metrics struct {
	registry *prometheus.Registry

	requests         *prometheus.CounterVec
	insufficientData *prometheus.CounterVec
	degenerateTrends *prometheus.CounterVec
	computeDuration  *prometheus.HistogramVec
}

func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{Namespace: namespace}),
	)

	m := &Metrics{
		registry: registry,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "Number of analytics requests by operation",
		}, []string{"operation"}),
		insufficientData: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "insufficient_data_total",
			Help:      "Number of series with fewer than two points",
		}, []string{"series"}),
		degenerateTrends: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "degenerate_trend_total",
			Help:      "Number of trends that fell back to the mean because all points share the same offset",
		}, []string{"series"}),
		computeDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "compute_duration_seconds",
			Help:      "Duration of analytics requests including the record reads",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
	}
	registry.MustRegister(m.requests, m.insufficientData, m.degenerateTrends, m.computeDuration)

	return m
}

// Observe counts a request and returns a function that records its duration
func (m *Metrics) Observe(operation string) func() {
	m.requests.WithLabelValues(operation).Inc()
	start := time.Now()
	return func() {
		m.computeDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	}
}

func (m *Metrics) InsufficientData(series string) {
	m.insufficientData.WithLabelValues(series).Inc()
}

func (m *Metrics) DegenerateTrend(series string) {
	m.degenerateTrends.WithLabelValues(series).Inc()
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
