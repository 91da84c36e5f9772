package handler

import (
	"log"
	"net/http"

	"anoa.com/useremployee/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type NotificationHandler struct {
	hub      *service.ToastHub
	upgrader websocket.Upgrader
}

func NewNotificationHandler(hub *service.ToastHub) *NotificationHandler {
	return &NotificationHandler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true // Allow all origins for now
			},
		},
	}
}

// HandleWebSocket streams one-shot toast events to the client for the
// lifetime of the connection.
func (h *NotificationHandler) HandleWebSocket(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("Failed to upgrade websocket: %v", err)
		return
	}
	defer conn.Close()

	toasts, unsubscribe := h.hub.Subscribe()
	defer unsubscribe()

	// Create a channel to signal client disconnect
	clientClosed := make(chan struct{})

	go func() {
		defer close(clientClosed)
		for {
			_, _, err := conn.ReadMessage()
			if err != nil {
				// Client disconnected or error
				return
			}
		}
	}()

	for {
		select {
		case toast := <-toasts:
			if err := conn.WriteJSON(toast); err != nil {
				log.Printf("Failed to write message to websocket: %v", err)
				return
			}
		case <-clientClosed:
			return
		case <-c.Request.Context().Done():
			return
		}
	}
}
