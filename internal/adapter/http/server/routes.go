package server

import (
	"net/http"

	"uberclone/internal/adapter/http/middleware"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

// setupRoutes - setups http routes
func setupRoutes(mux *http.ServeMux, routes *handlers, m *middleware.Middleware) {
	// System health
	mux.HandleFunc("/health", routes.health.HealthCheck)

	setupSwaggerRoutes(mux)
	setupMetricsRoute(mux)

	// Authentication
	mux.HandleFunc("POST /auth/login", routes.auth.Login)
	mux.HandleFunc("POST /auth/refresh", routes.auth.Refresh)
	mux.Handle("POST /auth/logout", m.RequireAuth(routes.auth.Logout))
	mux.Handle("GET /auth/me", m.RequireAuth(routes.auth.Profile))

	// Booking workflow, in transition order
	mux.Handle("GET /location/current", m.RequireAuth(routes.trip.CurrentLocation)) // Record the pickup point
	mux.Handle("GET /trip", m.RequireAuth(routes.trip.Get))                         // Current workflow state
	mux.Handle("POST /trip/destination", m.RequireAuth(routes.trip.Destination))    // Destination pick
	mux.Handle("GET /trip/options", m.RequireAuth(routes.trip.Options))             // Catalog + fan-out estimates
	mux.Handle("POST /trip/select", m.RequireAuth(routes.trip.Select))              // Choose one option
	mux.Handle("POST /trip/book", m.RequireAuth(routes.trip.Book))                  // Confirm the booking

	// Past rides
	mux.Handle("GET /rides/history", m.RequireAuth(routes.history.List))

	// Driver-arrival stream for a confirmed booking
	mux.Handle("GET /ws/bookings/{booking_id}", m.RequireAuth(routes.booking.HandleWS))
}

// setupSwaggerRoutes configures the Swagger UI endpoint
func setupSwaggerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/swagger/", httpSwagger.Handler())
}

// setupMetricsRoute configures the Prometheus metrics endpoint
func setupMetricsRoute(mux *http.ServeMux) {
	mux.Handle("/metrics", promhttp.Handler())
}
