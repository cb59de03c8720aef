package wshub

import (
	"context"
	"errors"
	"sync"

	"uberclone/pkg/logger"
	wrap "uberclone/pkg/logger/wrapper"
)

var (
	ErrEmptyConn      = errors.New("connection is empty")
	ErrConnIsNotFound = errors.New("connection not found")
)

// ConnectionHub stores and manages all active WebSocket connections,
// keyed by booking id.
type ConnectionHub struct {
	clients map[string]*Conn
	l       logger.Logger
	mu      sync.Mutex
	wg      sync.WaitGroup
}

func NewConnHub(l logger.Logger) *ConnectionHub {
	return &ConnectionHub{
		clients: make(map[string]*Conn),
		l:       l,
	}
}

// Add registers a new connection in the hub.
// An existing connection for the same booking id is closed first.
func (h *ConnectionHub) Add(newConn *Conn) error {
	if newConn == nil {
		return ErrEmptyConn
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	ctx := wrap.WithAction(context.Background(), "add_ws_connection")

	if existing, ok := h.clients[newConn.bookingID]; ok {
		h.l.Warn(ctx,
			"replacing existing connection",
			"booking_id", existing.bookingID,
		)
		if err := existing.Close(); err != nil {
			h.l.Warn(ctx,
				"failed to close existing conn",
				"booking_id", existing.bookingID,
				"err", err.Error(),
			)
		}
		// The replaced connection leaves the hub here; its own removal
		// attempt will no-op in DeleteConn.
		h.wg.Done()
	}

	h.clients[newConn.bookingID] = newConn
	h.wg.Add(1)

	return nil
}

// Delete removes and closes the connection for the given booking id
func (h *ConnectionHub) Delete(bookingID string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	ctx := wrap.WithAction(context.Background(), "ws_connection_delete")

	conn, ok := h.clients[bookingID]
	if !ok {
		h.l.Warn(ctx,
			"delete called for unknown booking",
			"booking_id", bookingID,
		)
		return ErrConnIsNotFound
	}

	if err := conn.Close(); err != nil {
		h.l.Warn(ctx,
			"failed to close conn",
			"booking_id", conn.bookingID,
			"err", err.Error(),
		)
	}

	delete(h.clients, bookingID)
	h.wg.Done()

	return nil
}

// DeleteConn removes and closes the connection only while it is still the
// registered one for its booking id. A connection that was already replaced
// by a reconnect is closed without touching the current registration, so a
// stale read loop cannot evict its successor.
func (h *ConnectionHub) DeleteConn(conn *Conn) error {
	if conn == nil {
		return ErrEmptyConn
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	ctx := wrap.WithAction(context.Background(), "ws_connection_delete")

	current, ok := h.clients[conn.bookingID]
	if !ok || current != conn {
		_ = conn.Close()
		return ErrConnIsNotFound
	}

	if err := conn.Close(); err != nil {
		h.l.Warn(ctx,
			"failed to close conn",
			"booking_id", conn.bookingID,
			"err", err.Error(),
		)
	}

	delete(h.clients, conn.bookingID)
	h.wg.Done()

	return nil
}

// SendTo sends a message to the client watching the given booking.
// Returns ErrConnIsNotFound when no such connection exists.
func (h *ConnectionHub) SendTo(bookingID string, msg map[string]any) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if conn, ok := h.clients[bookingID]; ok {
		return conn.Send(msg)
	}
	return ErrConnIsNotFound
}

// GetConn returns the connection for the given booking id
func (h *ConnectionHub) GetConn(bookingID string) (*Conn, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	conn, ok := h.clients[bookingID]
	if !ok {
		return nil, ErrConnIsNotFound
	}
	return conn, nil
}

// Close closes every websocket connection and waits for them to be removed
func (h *ConnectionHub) Close() {
	ctx := wrap.WithAction(context.Background(), "hub_close")

	h.mu.Lock()
	clients := make([]*Conn, 0, len(h.clients))
	for _, conn := range h.clients {
		clients = append(clients, conn)
	}
	h.mu.Unlock()

	// close outside the lock
	for _, conn := range clients {
		_ = h.Delete(conn.bookingID)
	}

	h.wg.Wait()

	h.l.Info(ctx, "all websocket connections closed gracefully")
}
