package realtime

import (
	"encoding/json"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/nrrc/shuttleboard/internal/tournament"
)

// Message is the envelope pushed to every connected session: the collection
// that changed and its full current contents.
type Message struct {
	Collection string `json:"collection"`
	Payload    any    `json:"payload"`
}

type envelope struct {
	collection string
	data       []byte
}

// Hub fans committed store changes out to websocket sessions. Clients state
// which collections they follow at connect time; an empty filter means all.
type Hub struct {
	register   chan *Client
	unregister chan *Client
	broadcast  chan envelope
	done       chan struct{}

	mu      sync.RWMutex
	clients map[*Client]bool
}

// NewHub creates a hub. Call Run in a goroutine before serving connections.
func NewHub() *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan envelope, 16),
		done:       make(chan struct{}),
		clients:    make(map[*Client]bool),
	}
}

// Run owns the client set until Stop is called.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			log.Debug("Websocket client registered", "clients", h.ClientCount())

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()
			log.Debug("Websocket client unregistered", "clients", h.ClientCount())

		case msg := <-h.broadcast:
			h.mu.RLock()
			for client := range h.clients {
				if !client.follows(msg.collection) {
					continue
				}
				select {
				case client.send <- msg.data:
				default:
					// Slow consumer; drop the frame rather than block the hub.
				}
			}
			h.mu.RUnlock()

		case <-h.done:
			h.mu.Lock()
			for client := range h.clients {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()
			return
		}
	}
}

// Stop disconnects every client and ends Run.
func (h *Hub) Stop() {
	close(h.done)
}

// ClientCount returns the number of connected sessions.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Broadcast queues the current contents of a collection for delivery.
func (h *Hub) Broadcast(collection tournament.Collection, payload any) {
	data, err := json.Marshal(Message{Collection: string(collection), Payload: payload})
	if err != nil {
		log.Error("Failed to marshal websocket message", "collection", collection, "error", err)
		return
	}
	select {
	case h.broadcast <- envelope{collection: string(collection), data: data}:
	case <-h.done:
	}
}

// BindStore subscribes the hub to every store collection so committed changes
// reach connected sessions without further wiring.
func (h *Hub) BindStore(store tournament.Store) {
	for _, c := range []tournament.Collection{
		tournament.CollectionTeams,
		tournament.CollectionMatches,
		tournament.CollectionProjection,
		tournament.CollectionHistory,
	} {
		store.Subscribe(c, func(collection tournament.Collection, payload any) {
			h.Broadcast(collection, payload)
		})
	}
}
