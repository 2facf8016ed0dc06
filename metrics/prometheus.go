package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	metricsOnce sync.Once
	metrics     *Metrics
)

// Metrics holds the service collectors and the registry they live in
type Metrics struct {
	Registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	TokensIssuedTotal   prometheus.Counter
	AuthRejectionsTotal *prometheus.CounterVec
}

// Get returns the process-wide metrics
func Get() *Metrics {
	metricsOnce.Do(func() {
		metrics = New(prometheus.NewRegistry())
	})
	return metrics
}

// New registers the collectors on registry
func New(registry *prometheus.Registry) *Metrics {
	factory := promauto.With(registry)
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Metrics{
		Registry: registry,
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gotasks_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "gotasks_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
		TokensIssuedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "gotasks_tokens_issued_total",
				Help: "Total number of access tokens issued by login",
			},
		),
		AuthRejectionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gotasks_auth_rejections_total",
				Help: "Total number of requests rejected by the bearer token check",
			},
			[]string{"reason"},
		),
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry})
}
