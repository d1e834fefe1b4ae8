package websocket

import (
	"log"
	"sync"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
)

// The hub pushes admin-facing events (new payouts, booking status changes) to
// every connected dashboard client.

type Client struct {
	UserID uuid.UUID
	Conn   *websocket.Conn
}

type Event struct {
	Type       string      `json:"type"`
	OccurredAt time.Time   `json:"occurred_at"`
	Payload    interface{} `json:"payload"`
}

const (
	EventPayoutCreated  = "payout.created"
	EventBookingCreated = "booking.created"
	EventBookingUpdated = "booking.updated"
)

var clients = make(map[uuid.UUID]*websocket.Conn)
var clientsMu sync.RWMutex
var Register = make(chan *Client)
var Unregister = make(chan *Client)
var Broadcast = make(chan *Event)

func RunHub() {
	for {
		select {
		case client := <-Register:
			log.Printf("Dashboard client registered: %s", client.UserID)
			clientsMu.Lock()
			clients[client.UserID] = client.Conn
			clientsMu.Unlock()
		case client := <-Unregister:
			log.Printf("Dashboard client unregistered: %s", client.UserID)
			clientsMu.Lock()
			if conn, ok := clients[client.UserID]; ok && conn == client.Conn {
				delete(clients, client.UserID)
			}
			clientsMu.Unlock()
		case event := <-Broadcast:
			clientsMu.RLock()
			stale := []uuid.UUID{}
			for userID, conn := range clients {
				if err := conn.WriteJSON(event); err != nil {
					log.Printf("Error sending event to client %s: %v", userID, err)
					conn.Close()
					stale = append(stale, userID)
				}
			}
			clientsMu.RUnlock()

			if len(stale) > 0 {
				clientsMu.Lock()
				for _, userID := range stale {
					delete(clients, userID)
				}
				clientsMu.Unlock()
			}
		}
	}
}

// Publish hands an event to the hub without blocking the caller when no hub
// goroutine is draining the channel.
func Publish(eventType string, payload interface{}) {
	event := &Event{
		Type:       eventType,
		OccurredAt: time.Now(),
		Payload:    payload,
	}
	select {
	case Broadcast <- event:
	default:
		log.Printf("Event hub busy, dropping event %s", eventType)
	}
}
