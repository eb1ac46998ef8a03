// Package metrics provides Prometheus metrics for DiagramKeeper.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics of the server. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	// Request metrics, per transport
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	// Domain metrics
	AllocationsTotal   *prometheus.CounterVec
	UploadsTotal       *prometheus.CounterVec
	PartialWritesTotal prometheus.Counter
	RestoresTotal      *prometheus.CounterVec
	RendersTotal       *prometheus.CounterVec

	// Store metrics
	StoreOperationDuration *prometheus.HistogramVec
}

// NewMetrics creates the metrics on a private registry, together with the Go
// runtime and process collectors.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	f := promauto.With(reg)

	m := &Metrics{registry: reg}

	m.RequestsTotal = f.NewCounterVec(
		prometheus.CounterOpts{
			Name: "diagramkeeper_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"transport", "method", "status"},
	)

	m.RequestDuration = f.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "diagramkeeper_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"transport", "method"},
	)

	m.AllocationsTotal = f.NewCounterVec(
		prometheus.CounterOpts{
			Name: "diagramkeeper_file_id_allocations_total",
			Help: "Total number of file id allocations",
		},
		[]string{"status"},
	)

	m.UploadsTotal = f.NewCounterVec(
		prometheus.CounterOpts{
			Name: "diagramkeeper_uploads_total",
			Help: "Total number of artifact uploads",
		},
		[]string{"kind", "status"},
	)

	m.PartialWritesTotal = f.NewCounter(
		prometheus.CounterOpts{
			Name: "diagramkeeper_partial_writes_total",
			Help: "Uploads whose blob was stored but whose metadata write failed",
		},
	)

	m.RestoresTotal = f.NewCounterVec(
		prometheus.CounterOpts{
			Name: "diagramkeeper_restores_total",
			Help: "Total number of version restores",
		},
		[]string{"status"},
	)

	m.RendersTotal = f.NewCounterVec(
		prometheus.CounterOpts{
			Name: "diagramkeeper_renders_total",
			Help: "Total number of diagram renders",
		},
		[]string{"kind", "status"},
	)

	m.StoreOperationDuration = f.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "diagramkeeper_store_operation_duration_seconds",
			Help:    "Duration of counter, blob and metadata store calls in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"store", "operation"},
	)

	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.HandlerFor(prometheus.NewRegistry(), promhttp.HandlerOpts{})
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveRequest records one finished API call.
func (m *Metrics) ObserveRequest(transport, method, status string, took time.Duration) {
	if m == nil {
		return
	}
	m.RequestsTotal.WithLabelValues(transport, method, status).Inc()
	m.RequestDuration.WithLabelValues(transport, method).Observe(took.Seconds())
}

// ObserveStore records the latency of one store call started at start.
func (m *Metrics) ObserveStore(store, op string, start time.Time) {
	if m == nil {
		return
	}
	m.StoreOperationDuration.WithLabelValues(store, op).Observe(time.Since(start).Seconds())
}

func (m *Metrics) Allocation(err error) {
	if m == nil {
		return
	}
	m.AllocationsTotal.WithLabelValues(status(err)).Inc()
}

func (m *Metrics) Upload(kind string, err error) {
	if m == nil {
		return
	}
	m.UploadsTotal.WithLabelValues(kind, status(err)).Inc()
}

func (m *Metrics) PartialWrite() {
	if m == nil {
		return
	}
	m.PartialWritesTotal.Inc()
}

func (m *Metrics) Restore(err error) {
	if m == nil {
		return
	}
	m.RestoresTotal.WithLabelValues(status(err)).Inc()
}

func (m *Metrics) Render(kind string, err error) {
	if m == nil {
		return
	}
	m.RendersTotal.WithLabelValues(kind, status(err)).Inc()
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
