package usecase

import (
	"context"
	"sync"

	"dashboard-srv/internal/event"
	"dashboard-srv/pkg/log"
)

// Hub maintains the set of active client connections and routes
// state-change events to the connections of the owning user.
type Hub struct {
	// Registered connections.
	clients map[*Connection]bool

	// user_id -> set of connections, for targeted delivery.
	users map[string]map[*Connection]bool

	register   chan *Connection
	unregister chan *Connection

	// Lock for maps
	mu sync.RWMutex

	maxConnections int
	logger         log.Logger

	shutdown chan struct{}
	done     chan struct{}
}

// NewHub creates a hub. Run must be started in a goroutine before
// connections are registered.
func NewHub(logger log.Logger, maxConnections int) *Hub {
	return &Hub{
		clients:        make(map[*Connection]bool),
		users:          make(map[string]map[*Connection]bool),
		register:       make(chan *Connection),
		unregister:     make(chan *Connection),
		maxConnections: maxConnections,
		logger:         logger,
		shutdown:       make(chan struct{}),
		done:           make(chan struct{}),
	}
}

// Run processes connection registrations until Shutdown.
func (h *Hub) Run() {
	defer close(h.done)
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.clients[conn] = true
			if _, ok := h.users[conn.userID]; !ok {
				h.users[conn.userID] = make(map[*Connection]bool)
			}
			h.users[conn.userID][conn] = true
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				close(conn.send)
				if userConns, ok := h.users[conn.userID]; ok {
					delete(userConns, conn)
					if len(userConns) == 0 {
						delete(h.users, conn.userID)
					}
				}
			}
			h.mu.Unlock()

		case <-h.shutdown:
			h.mu.Lock()
			for conn := range h.clients {
				close(conn.send)
				delete(h.clients, conn)
			}
			h.users = make(map[string]map[*Connection]bool)
			h.mu.Unlock()
			return
		}
	}
}

// Register adds a connection to the hub, enforcing the connection ceiling.
func (h *Hub) Register(conn *Connection) error {
	h.mu.RLock()
	full := h.maxConnections > 0 && len(h.clients) >= h.maxConnections
	h.mu.RUnlock()
	if full {
		return event.ErrMaxConnectionsReached
	}
	select {
	case h.register <- conn:
		return nil
	case <-h.done:
		return event.ErrHubClosed
	}
}

// Unregister removes a connection from the hub. Safe to call after
// Shutdown, when Run no longer drains the channel.
func (h *Hub) Unregister(conn *Connection) {
	select {
	case h.unregister <- conn:
	case <-h.done:
	}
}

// Publish implements event.Publisher by fanning the event out to all
// active connections of the user.
func (h *Hub) Publish(ctx context.Context, userID string, ev event.Event) {
	data, err := ev.ToJSON()
	if err != nil {
		h.logger.Errorf(ctx, "internal.event.usecase.Hub.Publish: marshal: %v", err)
		return
	}
	h.SendToUser(userID, data)
}

// SendToUser sends raw bytes to all active connections of a user.
// Connections with a full send buffer are skipped; the write pump's
// deadline handling disposes of dead connections.
func (h *Hub) SendToUser(userID string, message []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for conn := range h.users[userID] {
		select {
		case conn.send <- message:
		default:
		}
	}
}

// Stats returns connection and unique-user counts.
func (h *Hub) Stats() (connections, users int) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients), len(h.users)
}

// Shutdown stops the hub and closes all connections.
func (h *Hub) Shutdown(ctx context.Context) error {
	close(h.shutdown)
	select {
	case <-h.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
