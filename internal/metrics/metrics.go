// Package metrics exposes Prometheus counters about updates and backend calls.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/favonia/ddnsp/internal/response"
)

const namespace = "ddnsp"

// Outcome classifies one backend call.
type Outcome string

const (
	OutcomeSuccess  Outcome = "success"
	OutcomeRejected Outcome = "rejected" // the provider answered with an error
	OutcomeFailed   Outcome = "failed"   // no definite answer, such as a timeout
)

// Metrics holds the collectors of one process. A nil *Metrics records nothing.
type Metrics struct {
	registry        *prometheus.Registry
	updates         *prometheus.CounterVec
	backendRequests *prometheus.CounterVec
	backendDuration *prometheus.HistogramVec
}

// New creates the collectors in a fresh registry, together with the Go runtime and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}), //nolint:exhaustruct
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		updates: factory.NewCounterVec(prometheus.CounterOpts{ //nolint:exhaustruct
			Namespace: namespace,
			Name:      "updates_total",
			Help:      "Counter of update requests by the returned token.",
		}, []string{"result"}),
		backendRequests: factory.NewCounterVec(prometheus.CounterOpts{ //nolint:exhaustruct
			Namespace: namespace,
			Name:      "backend_requests_total",
			Help:      "Counter of calls to the DNS backend by outcome.",
		}, []string{"backend", "outcome"}),
		backendDuration: factory.NewHistogramVec(prometheus.HistogramOpts{ //nolint:exhaustruct
			Namespace: namespace,
			Name:      "backend_request_duration_seconds",
			Help:      "Duration of calls to the DNS backend.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"backend"}),
	}
}

// Registry returns the registry holding all collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the collected metrics in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry}) //nolint:exhaustruct
}

// ObserveUpdate counts one answered update request.
func (m *Metrics) ObserveUpdate(code response.Code) {
	if m == nil {
		return
	}
	m.updates.WithLabelValues(code.String()).Inc()
}

// ObserveBackend counts one backend call and records how long it took.
func (m *Metrics) ObserveBackend(backend string, outcome Outcome, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.backendRequests.WithLabelValues(backend, string(outcome)).Inc()
	m.backendDuration.WithLabelValues(backend).Observe(elapsed.Seconds())
}
