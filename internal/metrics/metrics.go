// Package metrics exposes Prometheus collectors for the HTTP API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// CountsFunc reports the current collection sizes.
type CountsFunc func() (participants, works, results int)

type Metrics struct {
	Registry *prometheus.Registry

	Requests *prometheus.CounterVec
	Duration *prometheus.HistogramVec
}

// New builds a private registry so several servers (and tests) don't clash.
func New(counts CountsFunc) *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "soc",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status code.",
		}, []string{"route", "code"}),
		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "soc",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
	}
	m.Registry.MustRegister(m.Requests, m.Duration)

	if counts != nil {
		m.Registry.MustRegister(
			prometheus.NewGaugeFunc(prometheus.GaugeOpts{
				Namespace: "soc", Name: "participants", Help: "Stored participants.",
			}, func() float64 { p, _, _ := counts(); return float64(p) }),
			prometheus.NewGaugeFunc(prometheus.GaugeOpts{
				Namespace: "soc", Name: "works", Help: "Stored works.",
			}, func() float64 { _, w, _ := counts(); return float64(w) }),
			prometheus.NewGaugeFunc(prometheus.GaugeOpts{
				Namespace: "soc", Name: "results", Help: "Stored results.",
			}, func() float64 { _, _, r := counts(); return float64(r) }),
		)
	}
	return m
}

func (m *Metrics) Observe(route string, code int, took time.Duration) {
	m.Requests.WithLabelValues(route, strconv.Itoa(code)).Inc()
	m.Duration.WithLabelValues(route).Observe(took.Seconds())
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}
