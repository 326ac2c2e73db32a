// Package metrics exposes Prometheus counters for skill dispatches.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "skill"

// Metrics holds a private registry and the dispatch meters.
type Metrics struct {
	Registry         *prometheus.Registry
	DispatchTotal    *prometheus.CounterVec
	DispatchDuration *prometheus.HistogramVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()

	total := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "dispatch_total",
		Help:      "Total number of dispatched requests.",
	}, []string{"kind", "outcome"})

	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "dispatch_duration_seconds",
		Help:      "Duration of request dispatch in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"kind"})

	reg.MustRegister(total, duration)

	return &Metrics{
		Registry:         reg,
		DispatchTotal:    total,
		DispatchDuration: duration,
	}
}

func (m *Metrics) ObserveDispatch(kind string, outcome string, elapsed time.Duration) {
	m.DispatchTotal.WithLabelValues(kind, outcome).Inc()
	m.DispatchDuration.WithLabelValues(kind).Observe(elapsed.Seconds())
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}
