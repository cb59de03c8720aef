// Package wshandler streams simulated driver-arrival updates for a confirmed
// booking over a websocket.
package wshandler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"uberclone/internal/domain/models"
	"uberclone/internal/domain/types"
	"uberclone/internal/service/trip"
	"uberclone/pkg/logger"
	wrap "uberclone/pkg/logger/wrapper"
	"uberclone/pkg/metrics"
	"uberclone/pkg/uuid"
	"uberclone/pkg/wshub"

	"github.com/gorilla/websocket"
)

const serviceName = "uberclone"

type TripService interface {
	Snapshot(ctx context.Context, userID uuid.UUID) (*trip.Snapshot, error)
}

type BookingStream struct {
	trips    TripService
	hub      *wshub.ConnectionHub
	interval time.Duration
	log      logger.Logger

	upgrader websocket.Upgrader
}

func NewBookingStream(trips TripService, hub *wshub.ConnectionHub, interval time.Duration, log logger.Logger) *BookingStream {
	return &BookingStream{
		trips:    trips,
		hub:      hub,
		interval: interval,
		log:      log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// HandleWS upgrades the connection and streams the driver countdown for the
// caller's confirmed booking. The booking id in the path must match the
// session's booking.
func (h *BookingStream) HandleWS(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "booking_ws")

	user := models.UserFromContext(ctx)
	bookingID := r.PathValue("booking_id")
	ctx = wrap.WithBookingID(ctx, bookingID)

	snap, err := h.trips.Snapshot(ctx, user.ID)
	if err != nil {
		http.Error(w, types.ErrSessionNotFound.Error(), http.StatusNotFound)
		return
	}
	if snap.Booking == nil || snap.Booking.BookingID != bookingID {
		http.Error(w, types.ErrNotFound.Error(), http.StatusNotFound)
		return
	}

	socket, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Error(ctx, "failed to upgrade websocket", err)
		return
	}

	conn := wshub.NewConn(bookingID, socket)
	if err := h.hub.Add(conn); err != nil {
		h.log.Error(ctx, "failed to register websocket connection", err)
		socket.Close()
		return
	}

	metrics.WebSocketConnectionsGauge.WithLabelValues(serviceName).Inc()

	go h.readLoop(conn, socket)
	go h.streamArrival(conn, snap.Booking)

	h.log.Info(ctx, "booking stream opened")
}

// readLoop drains incoming frames so close/control frames are processed;
// a read error means the client went away. Removal goes through DeleteConn
// so a reconnected successor for the same booking is left alone.
func (h *BookingStream) readLoop(conn *wshub.Conn, socket *websocket.Conn) {
	for {
		if _, _, err := socket.ReadMessage(); err != nil {
			if h.hub.DeleteConn(conn) == nil {
				metrics.WebSocketConnectionsGauge.WithLabelValues(serviceName).Dec()
			}
			return
		}
	}
}

// streamArrival counts the driver's ETA down to arrival, one update per
// interval, then closes the connection.
func (h *BookingStream) streamArrival(conn *wshub.Conn, booking *models.BookingRecord) {
	ctx := wrap.WithAction(context.Background(), "booking_stream")
	ctx = wrap.WithBookingID(ctx, booking.BookingID)

	etaMinutes := parseETAMinutes(booking.EstimatedArrival)

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for remaining := etaMinutes; remaining >= 0; remaining-- {
		update := map[string]any{
			"booking_id":  booking.BookingID,
			"driver_name": booking.DriverName,
			"vehicle":     booking.VehicleInfo,
			"status":      "driver_en_route",
			"eta":         fmt.Sprintf("%d min", remaining),
		}
		if remaining == 0 {
			update["status"] = "driver_arrived"
		}

		if err := conn.Send(update); err != nil {
			h.log.Warn(ctx, "failed to push driver update", "err", err.Error())
			return
		}

		if remaining == 0 {
			break
		}

		select {
		case <-ticker.C:
		case <-conn.Done():
			return
		}
	}

	h.log.Info(ctx, "driver arrived, closing stream")
	if h.hub.DeleteConn(conn) == nil {
		metrics.WebSocketConnectionsGauge.WithLabelValues(serviceName).Dec()
	}
}

func parseETAMinutes(eta string) int {
	var minutes int
	if _, err := fmt.Sscanf(eta, "%d min", &minutes); err != nil || minutes < 0 {
		return 3
	}
	return minutes
}
