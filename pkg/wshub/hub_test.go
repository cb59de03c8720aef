package wshub

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"uberclone/pkg/logger"

	"github.com/gorilla/websocket"
)

// newServerSocket performs a real websocket handshake and returns the
// server-side connection.
func newServerSocket(t *testing.T) *websocket.Conn {
	t.Helper()

	upgrader := websocket.Upgrader{}
	connCh := make(chan *websocket.Conn, 1)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		socket, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		connCh <- socket
	}))
	t.Cleanup(srv.Close)

	client, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	if err != nil {
		t.Fatalf("failed to dial websocket: %v", err)
	}
	t.Cleanup(func() { client.Close() })

	select {
	case socket := <-connCh:
		return socket
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for the server side of the socket")
		return nil
	}
}

func newTestHub() *ConnectionHub {
	return NewConnHub(logger.InitLogger("test", logger.LevelError))
}

func TestHub_AddAndDelete(t *testing.T) {
	hub := newTestHub()

	conn := NewConn("UB1", newServerSocket(t))
	if err := hub.Add(conn); err != nil {
		t.Fatalf("Add() unexpected error: %v", err)
	}

	got, err := hub.GetConn("UB1")
	if err != nil || got != conn {
		t.Fatalf("GetConn() = (%v, %v), want the added connection", got, err)
	}

	if err := hub.Delete("UB1"); err != nil {
		t.Fatalf("Delete() unexpected error: %v", err)
	}
	if _, err := hub.GetConn("UB1"); !errors.Is(err, ErrConnIsNotFound) {
		t.Fatalf("GetConn() after delete: error = %v, want %v", err, ErrConnIsNotFound)
	}
}

func TestHub_ReconnectKeepsReplacement(t *testing.T) {
	hub := newTestHub()

	stale := NewConn("UB1", newServerSocket(t))
	if err := hub.Add(stale); err != nil {
		t.Fatalf("Add(stale) unexpected error: %v", err)
	}

	replacement := NewConn("UB1", newServerSocket(t))
	if err := hub.Add(replacement); err != nil {
		t.Fatalf("Add(replacement) unexpected error: %v", err)
	}

	// The stale connection's own cleanup must not evict its successor.
	if err := hub.DeleteConn(stale); !errors.Is(err, ErrConnIsNotFound) {
		t.Fatalf("DeleteConn(stale) error = %v, want %v", err, ErrConnIsNotFound)
	}

	got, err := hub.GetConn("UB1")
	if err != nil {
		t.Fatalf("GetConn() unexpected error: %v", err)
	}
	if got != replacement {
		t.Fatal("replacement connection was evicted by the stale one's cleanup")
	}

	if err := hub.DeleteConn(replacement); err != nil {
		t.Fatalf("DeleteConn(replacement) unexpected error: %v", err)
	}
	if _, err := hub.GetConn("UB1"); !errors.Is(err, ErrConnIsNotFound) {
		t.Fatalf("GetConn() after delete: error = %v, want %v", err, ErrConnIsNotFound)
	}
}

func TestHub_CloseReturnsAfterReconnect(t *testing.T) {
	hub := newTestHub()

	if err := hub.Add(NewConn("UB1", newServerSocket(t))); err != nil {
		t.Fatalf("Add() unexpected error: %v", err)
	}
	if err := hub.Add(NewConn("UB1", newServerSocket(t))); err != nil {
		t.Fatalf("Add() unexpected error: %v", err)
	}

	done := make(chan struct{})
	go func() {
		hub.Close()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Close() did not return; connection accounting leaked on reconnect")
	}
}

func TestHub_ConnDoneSurvivesHandlerReturn(t *testing.T) {
	conn := NewConn("UB1", newServerSocket(t))

	select {
	case <-conn.Done():
		t.Fatal("Done() fired before Close()")
	case <-time.After(50 * time.Millisecond):
	}

	if err := conn.Close(); err != nil {
		t.Logf("Close() returned %v", err)
	}

	select {
	case <-conn.Done():
	case <-time.After(time.Second):
		t.Fatal("Done() must fire after Close()")
	}
}
