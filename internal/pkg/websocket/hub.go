package websocket

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Message types
const (
	// TypeContent announces a change to a page document
	TypeContent = "content"
	// TypeEditing is sent by a client when its editor starts working on a section
	TypeEditing = "editing"
)

// Hub maintains the set of active clients and broadcasts messages to the clients
type Hub struct {
	// Registered clients organized by realm
	clients map[string]map[*Client]bool

	// Channel for messages to fan out
	broadcast chan *Message

	// Register requests from the clients
	register chan *Client

	// Unregister requests from clients
	unregister chan *Client

	// Closed by Stop; Run exits and closes done
	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once

	// Mutex for concurrent access to clients map
	mu sync.RWMutex

	// Logger for Hub operations
	logger zerolog.Logger
}

// Message represents a message sent over WebSocket
type Message struct {
	// Type of message: "content" or "editing"
	Type string `json:"type"`

	// Realm this message belongs to
	Realm string `json:"realm"`

	// Section the message is about, empty for whole-document events
	Section string `json:"section,omitempty"`

	// Kind of content change: section_updated, saved, reset, imported
	Kind string `json:"kind,omitempty"`

	// Whether the change reached storage
	Persisted bool `json:"persisted"`

	// Editor who sent an "editing" message
	Sender string `json:"sender,omitempty"`

	// Timestamp when the message was sent
	Timestamp time.Time `json:"timestamp"`

	// Client that sent the message; it does not get its own message back
	from *Client
}

// NewHub creates a new Hub instance
func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		broadcast:  make(chan *Message, 64),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[string]map[*Client]bool),
		stop:       make(chan struct{}),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

// Run handles client registrations and broadcasts until Stop is called
func (h *Hub) Run() {
	defer close(h.done)
	for {
		select {
		case <-h.stop:
			h.closeAll()
			return

		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case message := <-h.broadcast:
			h.broadcastMessage(message)
		}
	}
}

// Stop disconnects every client and waits for Run to return
func (h *Hub) Stop() {
	h.stopOnce.Do(func() { close(h.stop) })
	<-h.done
}

// registerClient registers a new client to the hub
func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	realm := client.realm
	if _, ok := h.clients[realm]; !ok {
		h.clients[realm] = make(map[*Client]bool)
	}
	h.clients[realm][client] = true

	h.logger.Info().
		Str("realm", realm).
		Str("username", client.username).
		Msg("Client registered")
}

// unregisterClient unregisters a client from the hub
func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(client)
}

func (h *Hub) removeLocked(client *Client) {
	realm := client.realm
	if _, ok := h.clients[realm][client]; !ok {
		return
	}
	delete(h.clients[realm], client)
	close(client.send)

	if len(h.clients[realm]) == 0 {
		delete(h.clients, realm)
	}

	h.logger.Info().
		Str("realm", realm).
		Str("username", client.username).
		Msg("Client unregistered")
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, clients := range h.clients {
		for client := range clients {
			h.removeLocked(client)
		}
	}
}

// broadcastMessage sends a message to all clients of its realm except its sender
func (h *Hub) broadcastMessage(message *Message) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients, ok := h.clients[message.Realm]
	if !ok {
		h.logger.Debug().
			Str("realm", message.Realm).
			Msg("No clients in realm for broadcast")
		return
	}

	data, err := json.Marshal(message)
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("realm", message.Realm).
			Msg("Failed to marshal message for broadcast")
		return
	}

	for client := range clients {
		if client == message.from {
			continue
		}
		select {
		case client.send <- data:
		default:
			// Slow or gone; drop the client
			h.removeLocked(client)
		}
	}

	h.logger.Debug().
		Str("realm", message.Realm).
		Int("clientCount", len(clients)).
		Msg("Message broadcasted to realm")
}

// BroadcastToRealm queues a message for every client watching its realm.
// Messages sent after Stop are dropped.
func (h *Hub) BroadcastToRealm(message *Message) {
	if message.Timestamp.IsZero() {
		message.Timestamp = time.Now()
	}
	select {
	case h.broadcast <- message:
	case <-h.stop:
	}
}

// ClientCount returns the number of connected clients for a realm
func (h *Hub) ClientCount(realm string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[realm])
}

func (h *Hub) add(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.stop:
		return false
	}
}

func (h *Hub) remove(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.stop:
	}
}
