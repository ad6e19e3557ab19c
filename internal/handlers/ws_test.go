package handlers

import (
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

type fakePingConn struct {
	pings chan int
}

func (f *fakePingConn) SetWriteDeadline(t time.Time) error {
	return nil
}

func (f *fakePingConn) WriteMessage(messageType int, data []byte) error {
	f.pings <- messageType
	return nil
}

func TestPingLoopSendsPings(t *testing.T) {
	conn := &fakePingConn{pings: make(chan int, 1)}
	ticks := make(chan time.Time)
	done := make(chan struct{})
	defer close(done)

	go pingLoop(conn, "registrations", ticks, done)

	ticks <- time.Now()

	select {
	case messageType := <-conn.pings:
		if messageType != websocket.PingMessage {
			t.Errorf("expected ping message, got type %d", messageType)
		}
	case <-time.After(time.Second):
		t.Fatal("expected a ping after a tick")
	}
}

func TestPingLoopExitsWhenConnectionCloses(t *testing.T) {
	conn := &fakePingConn{pings: make(chan int, 1)}
	ticks := make(chan time.Time)
	done := make(chan struct{})

	exited := make(chan struct{})
	go func() {
		pingLoop(conn, "registrations", ticks, done)
		close(exited)
	}()

	// Simulates the handler's cleanup: the ticker is stopped, so ticks never
	// fires again, and done is closed.
	close(done)

	select {
	case <-exited:
	case <-time.After(time.Second):
		t.Fatal("ping loop kept running after the connection closed")
	}
}
