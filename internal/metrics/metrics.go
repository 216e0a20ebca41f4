package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "prashil_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "prashil_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	AuthAttemptsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "prashil_auth_attempts_total",
			Help: "Total number of login attempts",
		},
	)

	AuthFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "prashil_auth_failures_total",
			Help: "Total number of failed login attempts",
		},
	)

	ApplicationsSubmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "prashil_applications_submitted_total",
			Help: "Applications submitted, by service type",
		},
		[]string{"service_type"},
	)

	MessagesSubmitted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "prashil_messages_submitted_total",
			Help: "Support messages submitted",
		},
	)
)
