package websocket

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
)

// ServeEvents keeps a dashboard connection registered until the client goes
// away. The feed is one-way; inbound frames are drained and discarded.
func ServeEvents(conn *websocket.Conn) {
	userID, err := uuid.Parse(conn.Query("user_id"))
	if err != nil {
		conn.Close()
		return
	}

	client := &Client{UserID: userID, Conn: conn}
	Register <- client
	defer func() {
		Unregister <- client
		conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
