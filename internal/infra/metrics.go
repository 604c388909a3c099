// README: Prometheus collectors for quote traffic.
package infra

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry  *prometheus.Registry
	quotes    *prometheus.CounterVec
	estimates *prometheus.HistogramVec
	requests  *prometheus.CounterVec
}

// NewMetrics registers collectors on a private registry so tests can create as many as they like.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		quotes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "charter",
			Name:      "quotes_total",
			Help:      "Quotes computed, by departure port and vessel class.",
		}, []string{"port", "vessel"}),
		estimates: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "charter",
			Name:      "quote_estimate",
			Help:      "Distribution of quoted estimates in catalog currency.",
			Buckets:   prometheus.ExponentialBuckets(2500, 1.5, 10),
		}, []string{"port"}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "charter",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status code.",
		}, []string{"route", "code"}),
	}
	m.registry.MustRegister(
		m.quotes,
		m.estimates,
		m.requests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) ObserveQuote(portID, vessel string, amount int64) {
	m.quotes.WithLabelValues(portID, vessel).Inc()
	m.estimates.WithLabelValues(portID).Observe(float64(amount))
}

func (m *Metrics) ObserveRequest(route, code string) {
	m.requests.WithLabelValues(route, code).Inc()
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
