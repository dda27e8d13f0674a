package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Opal API metrics
var (
	// Request counters
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "opal",
			Subsystem: "api",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	// Request duration histogram
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "opal",
			Subsystem: "api",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
		},
		[]string{"method", "endpoint", "status"},
	)

	// Auth requests
	AuthRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "opal",
			Subsystem: "api",
			Name:      "auth_requests_total",
			Help:      "Total authentication attempts",
		},
		[]string{"status"},
	)

	// Users provisioned through the sync endpoint
	UsersProvisionedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "opal",
			Subsystem: "api",
			Name:      "users_provisioned_total",
			Help:      "Total users created by identity sync",
		},
	)

	// Workspace access checks
	WorkspaceAccessChecksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "opal",
			Subsystem: "api",
			Name:      "workspace_access_checks_total",
			Help:      "Workspace access verifications by outcome",
		},
		[]string{"outcome"},
	)

	// Presigned playback URLs issued
	PresignedURLsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "opal",
			Subsystem: "api",
			Name:      "presigned_urls_total",
			Help:      "Total presigned video source URLs issued",
		},
	)
)

// RecordRequest records an HTTP request with all relevant labels
func RecordRequest(method, endpoint, status string, durationSec float64) {
	RequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	RequestDuration.WithLabelValues(method, endpoint, status).Observe(durationSec)
}

// RecordAuth records the outcome of an authentication attempt
func RecordAuth(status string) {
	AuthRequestsTotal.WithLabelValues(status).Inc()
}

// RecordAccessCheck records the outcome of a workspace access verification
func RecordAccessCheck(outcome string) {
	WorkspaceAccessChecksTotal.WithLabelValues(outcome).Inc()
}
