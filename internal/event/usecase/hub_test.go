package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dashboard-srv/internal/event"
	"dashboard-srv/pkg/log"
)

func newTestConn(hub *Hub, userID string) *Connection {
	return &Connection{
		hub:    hub,
		userID: userID,
		send:   make(chan []byte, 256),
		logger: log.Noop(),
	}
}

func startHub(t *testing.T, maxConnections int) *Hub {
	t.Helper()
	hub := NewHub(log.Noop(), maxConnections)
	go hub.Run()
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		hub.Shutdown(ctx)
	})
	return hub
}

func TestHubSendToUserTargetsOnlyThatUser(t *testing.T) {
	hub := startHub(t, 100)

	conn1 := newTestConn(hub, "user-a")
	conn2 := newTestConn(hub, "user-a")
	conn3 := newTestConn(hub, "user-b")

	require.NoError(t, hub.Register(conn1))
	require.NoError(t, hub.Register(conn2))
	require.NoError(t, hub.Register(conn3))

	// Wait for registration
	time.Sleep(50 * time.Millisecond)

	hub.SendToUser("user-a", []byte("hello"))
	time.Sleep(50 * time.Millisecond)

	for _, conn := range []*Connection{conn1, conn2} {
		select {
		case msg := <-conn.send:
			assert.Equal(t, "hello", string(msg))
		default:
			t.Error("connection of user-a should have received the message")
		}
	}

	select {
	case <-conn3.send:
		t.Error("connection of user-b should NOT have received the message")
	default:
	}
}

func TestHubPublishMarshalsEvent(t *testing.T) {
	hub := startHub(t, 100)

	conn := newTestConn(hub, "user-a")
	require.NoError(t, hub.Register(conn))
	time.Sleep(50 * time.Millisecond)

	hub.Publish(context.Background(), "user-a", event.New(event.DomainAlert, event.ActionAdded, map[string]any{"id": 1}))
	time.Sleep(50 * time.Millisecond)

	select {
	case data := <-conn.send:
		ev, err := event.FromJSON(data)
		require.NoError(t, err)
		assert.Equal(t, event.DomainAlert, ev.Domain)
		assert.Equal(t, event.ActionAdded, ev.Action)
	default:
		t.Fatal("expected event on connection")
	}
}

func TestHubStatsAndUnregister(t *testing.T) {
	hub := startHub(t, 100)

	conn1 := newTestConn(hub, "user-a")
	conn2 := newTestConn(hub, "user-b")
	require.NoError(t, hub.Register(conn1))
	require.NoError(t, hub.Register(conn2))
	time.Sleep(50 * time.Millisecond)

	conns, users := hub.Stats()
	assert.Equal(t, 2, conns)
	assert.Equal(t, 2, users)

	hub.Unregister(conn1)
	time.Sleep(50 * time.Millisecond)

	conns, users = hub.Stats()
	assert.Equal(t, 1, conns)
	assert.Equal(t, 1, users)
}

func TestHubShutdownClosesConnectionsAndUnblocksCalls(t *testing.T) {
	hub := NewHub(log.Noop(), 100)
	go hub.Run()

	conn := newTestConn(hub, "user-a")
	require.NoError(t, hub.Register(conn))
	time.Sleep(50 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, hub.Shutdown(ctx))

	// Shutdown closes every send channel; that is the write pump's
	// stop signal.
	select {
	case _, ok := <-conn.send:
		assert.False(t, ok, "send channel should be closed after shutdown")
	default:
		t.Error("send channel should be closed after shutdown")
	}

	// Register and Unregister must not block once Run has returned;
	// read pumps unregister themselves during shutdown.
	done := make(chan struct{})
	go func() {
		defer close(done)
		assert.ErrorIs(t, hub.Register(newTestConn(hub, "user-b")), event.ErrHubClosed)
		hub.Unregister(conn)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Register/Unregister blocked after shutdown")
	}
}

func TestHubMaxConnections(t *testing.T) {
	hub := startHub(t, 1)

	require.NoError(t, hub.Register(newTestConn(hub, "user-a")))
	time.Sleep(50 * time.Millisecond)

	err := hub.Register(newTestConn(hub, "user-b"))
	assert.ErrorIs(t, err, event.ErrMaxConnectionsReached)
}
