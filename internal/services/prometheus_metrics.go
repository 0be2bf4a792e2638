package services

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	httpRequests       *prometheus.CounterVec
	httpDuration       *prometheus.HistogramVec
	reportDuration     prometheus.Histogram
	seededTransactions prometheus.Counter
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		httpRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "analytics_http_requests_total",
				Help: "Total number of HTTP requests served",
			},
			[]string{"method", "path", "status"},
		),
		httpDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "analytics_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"path"},
		),
		reportDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "analytics_report_build_duration_seconds",
				Help:    "Complete analysis report build duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		seededTransactions: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "analytics_transactions_seeded_total",
				Help: "Total number of transactions loaded by the bootstrap",
			},
		),
	}
}

func (m *PrometheusMetrics) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	m.httpRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(path).Observe(duration.Seconds())
}

func (m *PrometheusMetrics) RecordReportBuild(duration time.Duration) {
	m.reportDuration.Observe(duration.Seconds())
}

func (m *PrometheusMetrics) RecordSeededTransactions(count int) {
	m.seededTransactions.Add(float64(count))
}
