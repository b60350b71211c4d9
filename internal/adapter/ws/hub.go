// Package ws pushes domain events to subscribed browsers over WebSocket.
package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/funkybooboo/alle-sub000/internal/core/domain"
	"github.com/funkybooboo/alle-sub000/internal/core/ports"
	"github.com/funkybooboo/alle-sub000/internal/metrics"
)

const (
	writeWait      = 10 * time.Second
	maxMessageSize = 4096
	sendBuffer     = 32
)

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub fans events out to every connected client. Run owns the client set;
// everything else talks to it through channels.
type Hub struct {
	register   chan *client
	unregister chan *client
	broadcast  chan []byte
	done       chan struct{}

	heartbeat time.Duration
	upgrader  websocket.Upgrader
	clients   atomic.Int64
	now       func() time.Time
}

var (
	_ ports.EventPublisher = (*Hub)(nil)
	_ http.Handler         = (*Hub)(nil)
)

// NewHub builds a hub sending a heartbeat every interval. Origins lists the
// allowed browser origins; "*" or an empty list accepts any.
func NewHub(heartbeat time.Duration, origins []string) *Hub {
	h := &Hub{
		register:   make(chan *client),
		unregister: make(chan *client),
		broadcast:  make(chan []byte, 256),
		done:       make(chan struct{}),
		heartbeat:  heartbeat,
		now:        time.Now,
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     originChecker(origins),
	}
	return h
}

func originChecker(origins []string) func(r *http.Request) bool {
	allowed := make(map[string]bool, len(origins))
	for _, o := range origins {
		if o == "*" {
			return func(*http.Request) bool { return true }
		}
		allowed[o] = true
	}
	if len(allowed) == 0 {
		return func(*http.Request) bool { return true }
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		return origin == "" || allowed[origin]
	}
}

// Run serves registrations and broadcasts until ctx is done, then closes
// every connection.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	clients := make(map[*client]struct{})
	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	drop := func(c *client) {
		if _, ok := clients[c]; !ok {
			return
		}
		delete(clients, c)
		close(c.send)
		h.clients.Add(-1)
		metrics.WebsocketClients.Dec()
	}

	send := func(msg []byte) {
		for c := range clients {
			select {
			case c.send <- msg:
			default:
				zap.L().Warn("dropping slow subscription client")
				drop(c)
			}
		}
	}

	for {
		select {
		case <-ctx.Done():
			for c := range clients {
				drop(c)
			}
			return
		case c := <-h.register:
			clients[c] = struct{}{}
			h.clients.Add(1)
			metrics.WebsocketClients.Inc()
		case c := <-h.unregister:
			drop(c)
		case msg := <-h.broadcast:
			send(msg)
		case <-ticker.C:
			msg, err := json.Marshal(domain.Event{Type: domain.EventHeartbeat, Timestamp: h.now().UTC()})
			if err != nil {
				zap.L().Error("failed to encode heartbeat", zap.Error(err))
				continue
			}
			send(msg)
		}
	}
}

// Publish queues the event for every client. Events are dropped when the
// queue is full or the hub has stopped.
func (h *Hub) Publish(_ context.Context, event domain.Event) {
	msg, err := json.Marshal(event)
	if err != nil {
		zap.L().Error("failed to encode event", zap.String("type", string(event.Type)), zap.Error(err))
		return
	}
	select {
	case h.broadcast <- msg:
	case <-h.done:
	default:
		zap.L().Warn("event queue full, dropping event", zap.String("type", string(event.Type)))
	}
}

// Clients reports the number of connected subscribers.
func (h *Hub) Clients() int {
	return int(h.clients.Load())
}

func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		zap.L().Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	c := &client{conn: conn, send: make(chan []byte, sendBuffer)}
	select {
	case h.register <- c:
	case <-h.done:
		_ = conn.Close()
		return
	}

	go h.writePump(c)
	go h.readPump(c)
}

// readPump discards client messages and unregisters the client once the
// connection fails.
func (h *Hub) readPump(c *client) {
	defer func() {
		select {
		case h.unregister <- c:
		case <-h.done:
		}
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				zap.L().Debug("subscription closed", zap.Error(err))
			}
			return
		}
	}
}

func (h *Hub) writePump(c *client) {
	defer func() { _ = c.conn.Close() }()

	for msg := range c.send {
		_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	_ = c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}
