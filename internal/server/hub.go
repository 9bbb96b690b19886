package server

import (
	"context"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/openpoker/dealerd/internal/game"
)

// Hub tracks connected observers and fans game events out to them. It
// implements game.EventSubscriber so it can be wired straight into the
// session's event bus.
type Hub struct {
	connections map[*Connection]bool
	register    chan *Connection
	unregister  chan *Connection
	logger      *log.Logger
	mu          sync.RWMutex
	ctx         context.Context
	cancel      context.CancelFunc
}

// NewHub creates a new hub
func NewHub(logger *log.Logger) *Hub {
	ctx, cancel := context.WithCancel(context.Background())

	return &Hub{
		connections: make(map[*Connection]bool),
		register:    make(chan *Connection),
		unregister:  make(chan *Connection),
		logger:      logger.WithPrefix("hub"),
		ctx:         ctx,
		cancel:      cancel,
	}
}

// Run handles connection lifecycle until Stop is called
func (h *Hub) Run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.connections[conn] = true
			total := len(h.connections)
			h.mu.Unlock()
			h.logger.Info("Observer connected", "total", total)

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.connections[conn]; ok {
				delete(h.connections, conn)
				_ = conn.Close()
			}
			total := len(h.connections)
			h.mu.Unlock()
			h.logger.Info("Observer disconnected", "total", total)

		case <-h.ctx.Done():
			return
		}
	}
}

// Stop closes all connections and terminates the run loop
func (h *Hub) Stop() {
	h.cancel()

	h.mu.Lock()
	for conn := range h.connections {
		_ = conn.Close()
	}
	h.connections = make(map[*Connection]bool)
	h.mu.Unlock()
}

// Register admits a connection to the feed
func (h *Hub) Register(conn *Connection) {
	select {
	case h.register <- conn:
	case <-h.ctx.Done():
		_ = conn.Close()
	}
}

// Unregister removes a connection from the feed
func (h *Hub) Unregister(conn *Connection) {
	select {
	case h.unregister <- conn:
	case <-h.ctx.Done():
	}
}

// Broadcast sends a message to every connected observer
func (h *Hub) Broadcast(msg *Message) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	count := 0
	for conn := range h.connections {
		if err := conn.SendMessage(msg); err != nil {
			h.logger.Error("Failed to send message to observer", "error", err)
		} else {
			count++
		}
	}

	h.logger.Debug("Broadcasted message", "type", msg.Type, "recipients", count)
}

// OnEvent converts a game event to its wire form and broadcasts it
func (h *Hub) OnEvent(event game.GameEvent) {
	msg, err := messageFromEvent(event)
	if err != nil {
		h.logger.Error("Failed to encode event", "type", event.EventType(), "error", err)
		return
	}
	h.Broadcast(msg)
}
