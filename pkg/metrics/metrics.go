package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics
	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"service", "method", "path", "status"},
	)

	HttpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "method", "path", "status"},
	)

	HttpRequestsInFlight = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Current number of HTTP requests being processed",
		},
		[]string{"service"},
	)

	// Booking-flow metrics
	ActiveSessionsGauge = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "trip_sessions_active",
			Help: "Current number of active trip sessions",
		},
		[]string{"service"},
	)

	BookingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookings_total",
			Help: "Total number of booking attempts",
		},
		[]string{"service", "status"},
	)

	PriceEstimatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "price_estimates_total",
			Help: "Total number of price estimates by source (live or fallback)",
		},
		[]string{"service", "ride_type", "source"},
	)

	WebSocketConnectionsGauge = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "websocket_connections_total",
			Help: "Current number of active WebSocket connections",
		},
		[]string{"service"},
	)
)

// RecordHTTPMetrics records HTTP request metrics
func RecordHTTPMetrics(service, method, path string, statusCode int, duration time.Duration) {
	status := strconv.Itoa(statusCode)
	HttpRequestsTotal.WithLabelValues(service, method, path, status).Inc()
	HttpRequestDuration.WithLabelValues(service, method, path, status).Observe(duration.Seconds())
}

// RecordBooking records a booking attempt outcome
func RecordBooking(service string, err error) {
	status := "confirmed"
	if err != nil {
		status = "failed"
	}
	BookingsTotal.WithLabelValues(service, status).Inc()
}

// RecordPriceEstimate records one resolved per-option estimate
func RecordPriceEstimate(service, rideType string, fallback bool) {
	source := "live"
	if fallback {
		source = "fallback"
	}
	PriceEstimatesTotal.WithLabelValues(service, rideType, source).Inc()
}
