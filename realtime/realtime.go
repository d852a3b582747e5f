package realtime

import (
	"sync"

	"iconhive/metrics"
	"iconhive/models"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

var (
	sessionClients = make(map[string]map[*websocket.Conn]bool) // Map of session ID to connected clients
	broadcast      = make(chan models.RunEvent, 64)            // Broadcast channel for run events
	mutex          sync.Mutex                                  // Mutex to protect sessionClients map
)

// RegisterClient adds a WebSocket client to a specific session
func RegisterClient(sessionID string, conn *websocket.Conn) {
	mutex.Lock()
	if sessionClients[sessionID] == nil {
		sessionClients[sessionID] = make(map[*websocket.Conn]bool)
	}
	sessionClients[sessionID][conn] = true
	metrics.WebsocketClients.Inc()
	mutex.Unlock()
}

// UnregisterClient removes a WebSocket client from a specific session
func UnregisterClient(sessionID string, conn *websocket.Conn) {
	mutex.Lock()
	if clients, exists := sessionClients[sessionID]; exists {
		if clients[conn] {
			metrics.WebsocketClients.Dec()
		}
		delete(clients, conn)
		if len(clients) == 0 {
			delete(sessionClients, sessionID)
		}
	}
	mutex.Unlock()
}

// ClientCount returns the number of clients listening to a session
func ClientCount(sessionID string) int {
	mutex.Lock()
	defer mutex.Unlock()
	return len(sessionClients[sessionID])
}

// PublishRunEvent queues a pipeline run event for the clients of its session
func PublishRunEvent(event models.RunEvent) {
	select {
	case broadcast <- event:
	default:
		log.WithField("session_id", event.SessionID).Warn("Run event dropped, broadcast queue is full")
	}
}

func handleBroadcast() {
	for {
		event := <-broadcast
		mutex.Lock()
		if clients, exists := sessionClients[event.SessionID]; exists {
			for client := range clients {
				if err := client.WriteJSON(event); err != nil {
					log.WithError(err).Debug("WebSocket write error")
					client.Close()
					delete(clients, client)
					metrics.WebsocketClients.Dec()
				}
			}
		}
		mutex.Unlock()
	}
}

func init() {
	go handleBroadcast()
}
