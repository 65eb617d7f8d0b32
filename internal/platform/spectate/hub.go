// Package spectate streams game snapshots to read-only WebSocket viewers.
package spectate

import (
	"context"
	"encoding/json"
	"io"
	"sync"

	"github.com/charmbracelet/log"
)

// broadcastBuffer bounds how many snapshots may wait for the hub loop.
const broadcastBuffer = 16

// Hub maintains the set of active spectators and broadcasts snapshots to them.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	last       []byte
	mu         sync.Mutex
	logger     *log.Logger
}

// NewHub creates a hub. A nil logger discards hub logs.
func NewHub(logger *log.Logger) *Hub {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Hub{
		broadcast:  make(chan []byte, broadcastBuffer),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		clients:    make(map[*Client]bool),
		logger:     logger,
	}
}

// Run handles registrations and broadcasts until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			close(h.done)
			h.mu.Lock()
			for client := range h.clients {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()
			h.logger.Info("spectator hub stopped")
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			// Late joiners see the board immediately
			if h.last != nil {
				client.send <- h.last
			}
			n := len(h.clients)
			h.mu.Unlock()
			h.logger.Info("spectator connected", "remote", client.remote, "spectators", n)

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				h.logger.Info("spectator disconnected", "remote", client.remote)
			}
			h.mu.Unlock()

		case message := <-h.broadcast:
			h.mu.Lock()
			h.last = message
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Too slow to keep up
					close(client.send)
					delete(h.clients, client)
					h.logger.Warn("dropping slow spectator", "remote", client.remote)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Publish serializes v to JSON and queues it for every spectator.
// It never blocks: when the queue is full the message is dropped.
func (h *Hub) Publish(v any) {
	payload, err := json.Marshal(v)
	if err != nil {
		h.logger.Error("cannot encode snapshot", "err", err)
		return
	}

	select {
	case h.broadcast <- payload:
	default:
		h.logger.Debug("spectator queue full, snapshot dropped")
	}
}

// Spectators returns the number of connected spectators.
func (h *Hub) Spectators() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Last returns the most recently broadcast message, or nil.
func (h *Hub) Last() []byte {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.last
}
