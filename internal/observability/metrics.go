// v0
// internal/observability/metrics.go
package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal *prometheus.CounterVec
	httpDuration      *prometheus.HistogramVec
	cacheHits         prometheus.Counter
	cacheMisses       prometheus.Counter
	estimatesTotal    *prometheus.CounterVec
	auditPublished    prometheus.Counter
	auditDropped      prometheus.Counter
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total count of HTTP requests processed by route and status.",
		}, []string{"route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Histogram of HTTP request durations by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		cacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total estimate cache hits observed.",
		}),
		cacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total estimate cache misses observed.",
		}),
		estimatesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "estimates_total",
			Help: "Total energy estimates computed by rating and category.",
		}, []string{"rating", "category"}),
		auditPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "audit_events_published_total",
			Help: "Total estimate audit events handed to Kafka.",
		}),
		auditDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "audit_events_dropped_total",
			Help: "Total estimate audit events dropped due to a full queue or publish failure.",
		}),
	}

	m.registry.MustRegister(
		m.httpRequestsTotal,
		m.httpDuration,
		m.cacheHits,
		m.cacheMisses,
		m.estimatesTotal,
		m.auditPublished,
		m.auditDropped,
	)

	return m
}

// Handler serves the Prometheus exposition endpoint for this metric set.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// CacheHit implements cache.Observer.
func (m *Metrics) CacheHit() { m.cacheHits.Inc() }

// CacheMiss implements cache.Observer.
func (m *Metrics) CacheMiss() { m.cacheMisses.Inc() }

// IncEstimate records one computed estimate.
func (m *Metrics) IncEstimate(rating, category string) {
	m.estimatesTotal.WithLabelValues(rating, category).Inc()
}

// AuditPublished implements audit.Observer.
func (m *Metrics) AuditPublished() { m.auditPublished.Inc() }

// AuditDropped implements audit.Observer.
func (m *Metrics) AuditDropped() { m.auditDropped.Inc() }

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(status int) {
	s.status = status
	s.ResponseWriter.WriteHeader(status)
}

// Middleware instruments a handler with per-route request counters and
// duration histograms.
func (m *Metrics) Middleware(route string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		m.httpRequestsTotal.WithLabelValues(route, strconv.Itoa(rec.status)).Inc()
		m.httpDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	})
}
