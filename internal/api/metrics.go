package api

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors of the service
type Metrics struct {
	registry              *prometheus.Registry
	AnalysesTotal         *prometheus.CounterVec
	TranscriptionFailures prometheus.Counter
	RequestDuration       *prometheus.HistogramVec
}

// NewMetrics registers all collectors on a fresh registry
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		AnalysesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "virality_analyses_total",
				Help: "Total analyses produced, by profile and category.",
			},
			[]string{"profile", "category"},
		),
		TranscriptionFailures: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "virality_transcription_failures_total",
				Help: "Total failed transcription runs.",
			},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "virality_api_request_duration_seconds",
				Help:    "HTTP request duration in seconds, by route, method and status.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route", "method", "status"},
		),
	}

	m.registry.MustRegister(m.AnalysesTotal, m.TranscriptionFailures, m.RequestDuration)
	return m
}

// Middleware records request durations. /metrics itself is not instrumented.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/metrics" {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.RequestDuration.
			WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}

// Handler serves the /metrics endpoint
func (m *Metrics) Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}
