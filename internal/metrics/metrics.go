package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for the secretariat service
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    prometheus.CounterVec
	HTTPRequestDuration  prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.GaugeVec

	// Auth Metrics
	LoginsTotal        prometheus.CounterVec
	CsrfRejectedTotal  prometheus.Counter
	SessionsActive     prometheus.Gauge

	// Business Metrics
	MembersPromotedTotal prometheus.Counter
	AuditRowsTotal       prometheus.CounterVec
}

// NewMetricsRegistry initializes and returns a new MetricsRegistry with all metrics
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		HTTPRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "secretaria_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "secretaria_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "secretaria_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"endpoint"},
		),

		LoginsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "secretaria_logins_total",
				Help: "Login attempts by outcome",
			},
			[]string{"outcome"},
		),
		CsrfRejectedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "secretaria_csrf_rejected_total",
				Help: "Mutating requests rejected by the CSRF check",
			},
		),
		SessionsActive: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "secretaria_sessions_active",
				Help: "Current number of live sessions",
			},
		),

		MembersPromotedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "secretaria_members_promoted_total",
				Help: "Member records auto-created from concluded catechumens",
			},
		),
		AuditRowsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "secretaria_audit_rows_total",
				Help: "Audit log rows written by action",
			},
			[]string{"action"},
		),
	}
}
