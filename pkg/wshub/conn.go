package wshub

import (
	"context"
	"sync"

	"github.com/gorilla/websocket"
)

// Conn wraps a single websocket connection bound to a booking id.
type Conn struct {
	conn      *websocket.Conn
	bookingID string
	doneCtx   context.Context
	cancel    context.CancelFunc
	mu        sync.Mutex
}

// NewConn wraps a freshly upgraded socket. The connection owns its lifetime:
// it lives until Close, independent of the upgrade request's context, which
// net/http cancels as soon as the handler returns.
func NewConn(bookingID string, conn *websocket.Conn) *Conn {
	ctx, cancel := context.WithCancel(context.Background())

	return &Conn{
		conn:      conn,
		bookingID: bookingID,
		doneCtx:   ctx,
		cancel:    cancel,
	}
}

// BookingID returns the booking id the connection is bound to.
func (c *Conn) BookingID() string {
	return c.bookingID
}

// Send writes v as a JSON message. Safe for concurrent use.
func (c *Conn) Send(v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.conn.WriteJSON(v)
}

// Done is closed when the connection is shut down.
func (c *Conn) Done() <-chan struct{} {
	return c.doneCtx.Done()
}

// Close cancels the connection context and closes the underlying socket.
func (c *Conn) Close() error {
	c.cancel()

	c.mu.Lock()
	defer c.mu.Unlock()

	return c.conn.Close()
}
