package websocket

import (
	"KinderShelf/interfaces"
	"log"
	"sync"
	"time"
)

// Hub maintains the set of active clients and broadcasts messages to the clients.
type Hub struct {
	// Registered clients by parent ID (firebase_uid of the guardian)
	clients map[string]map[*Client]bool

	// Register requests from the clients.
	register chan *Client

	// Unregister requests from clients.
	unregister chan *Client

	// Send message to specific family
	broadcast chan interfaces.WebSocketMessage

	mu sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan interfaces.WebSocketMessage, 64),
	}
}

func (h *Hub) Register(client *Client) {
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

// Broadcast queues a message for every client of message.ParentID.
func (h *Hub) Broadcast(message interfaces.WebSocketMessage) {
	if message.Timestamp.IsZero() {
		message.Timestamp = time.Now()
	}
	h.broadcast <- message
}

// ClientCount returns how many clients of a family are connected.
func (h *Hub) ClientCount(parentID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients[parentID])
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			if _, ok := h.clients[client.ParentID]; !ok {
				h.clients[client.ParentID] = make(map[*Client]bool)
			}
			h.clients[client.ParentID][client] = true
			h.mu.Unlock()
			log.Printf("[WebSocket] Client registered: %s (%s), family %s", client.UserID, client.UserType, client.ParentID)

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[client.ParentID]; ok {
				if _, ok := clients[client]; ok {
					delete(clients, client)
					close(client.send)
				}
				if len(clients) == 0 {
					delete(h.clients, client.ParentID)
				}
			}
			h.mu.Unlock()

		case message := <-h.broadcast:
			h.mu.Lock()
			if clients, ok := h.clients[message.ParentID]; ok {
				for client := range clients {
					select {
					case client.send <- message:
					default:
						close(client.send)
						delete(clients, client)
						if len(clients) == 0 {
							delete(h.clients, message.ParentID)
						}
					}
				}
			}
			h.mu.Unlock()
		}
	}
}

// BroadcastScreenTimeAlert tells the family a child moved into a stricter status.
func (h *Hub) BroadcastScreenTimeAlert(parentID string, childID string, alert interface{}) {
	h.Broadcast(interfaces.WebSocketMessage{
		Type:     "screen_time_alert",
		ParentID: parentID,
		ChildID:  childID,
		Message:  alert,
	})
}

// BroadcastScreenTimeLimit sends the new settings of a child to the family.
func (h *Hub) BroadcastScreenTimeLimit(childID string, parentID string, limitData interface{}) {
	h.Broadcast(interfaces.WebSocketMessage{
		Type:     "screen_time_limit_update",
		ParentID: parentID,
		ChildID:  childID,
		Message:  limitData,
	})
}
