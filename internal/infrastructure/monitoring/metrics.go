package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type DBMetrics struct {
	QueryDuration *prometheus.HistogramVec
}

type HTTPMetrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

type IntegrityMetrics struct {
	OrphanedDetails prometheus.Gauge
	SweepsTotal     prometheus.Counter
}

var (
	DB = DBMetrics{
		QueryDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "lamprea_admin_db_query_duration_seconds",
				Help:    "Histogram of database query latencies.",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"query_name", "status"},
		),
	}

	HTTP = HTTPMetrics{
		RequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lamprea_admin_http_requests_total",
				Help: "Total number of HTTP requests served.",
			},
			[]string{"method", "path", "status_code"},
		),
		RequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "lamprea_admin_http_request_duration_seconds",
				Help:    "Histogram of HTTP request latencies.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status_code"},
		),
	}

	Integrity = IntegrityMetrics{
		OrphanedDetails: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "lamprea_admin_orphaned_details_rows",
				Help: "Detail rows found without a matching customer during the last sweep.",
			},
		),
		SweepsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "lamprea_admin_integrity_sweeps_total",
				Help: "Total number of completed referential integrity sweeps.",
			},
		),
	}
)

func RecordDBQuery(queryName, status string, duration time.Duration) {
	DB.QueryDuration.WithLabelValues(queryName, status).Observe(duration.Seconds())
}

func RecordHTTPRequest(method, path, statusCode string, duration time.Duration) {
	HTTP.RequestsTotal.WithLabelValues(method, path, statusCode).Inc()
	HTTP.RequestDuration.WithLabelValues(method, path, statusCode).Observe(duration.Seconds())
}
