package handlers

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/hackxperience/hackxperience/internal/types"
)

var (
	tableClients   = make(map[string]map[*websocket.Conn]bool)
	tableClientsMu sync.RWMutex
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

func isSubscribableTable(table string) bool {
	return table == types.TableRegistrations || table == types.TableProjectSubmissions
}

// BroadcastRefresh tells every dashboard subscribed to a table to refetch it.
// Consumers replace their whole local copy; no diff is sent.
func BroadcastRefresh(table string) {
	tableClientsMu.RLock()
	clients, exists := tableClients[table]
	if !exists || len(clients) == 0 {
		tableClientsMu.RUnlock()
		return
	}

	// Create a copy of the clients map to avoid holding the lock during message sending
	clientsCopy := make([]*websocket.Conn, 0, len(clients))
	for conn := range clients {
		clientsCopy = append(clientsCopy, conn)
	}
	tableClientsMu.RUnlock()

	for _, conn := range clientsCopy {
		if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
			log.Printf("Failed to set write deadline for broadcast: %v", err)
			continue
		}

		err := conn.WriteJSON(map[string]string{
			"type":  "refresh",
			"table": table,
		})

		if err != nil {
			log.Printf("Failed to broadcast refresh to client: %v", err)
			// Remove failed connection
			tableClientsMu.Lock()
			if clients, exists := tableClients[table]; exists {
				delete(clients, conn)
				if len(clients) == 0 {
					delete(tableClients, table)
				}
			}
			tableClientsMu.Unlock()
			conn.Close()
		}
	}
}

// pingConn is the subset of *websocket.Conn the ping loop needs.
type pingConn interface {
	SetWriteDeadline(t time.Time) error
	WriteMessage(messageType int, data []byte) error
}

// pingLoop sends periodic pings until the write fails or done closes. A
// stopped ticker never closes its channel, so ranging over ticks alone would
// park this goroutine forever once the connection is gone.
func pingLoop(conn pingConn, table string, ticks <-chan time.Time, done <-chan struct{}) {
	for {
		select {
		case <-done:
			return
		case <-ticks:
			if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				log.Printf("Failed to set write deadline for table %s: %v", table, err)
				return
			}
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				log.Printf("Ping failed for table %s: %v", table, err)
				return
			}
		}
	}
}

func WebSocket(c *gin.Context) {
	table := c.Param("table")

	if !isSubscribableTable(table) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown table"})
		return
	}

	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			for _, allowed := range types.AllowedOrigins {
				if origin == allowed {
					return true
				}
			}
			return false
		},
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	conn.SetReadLimit(maxMessageSize)
	if err := conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		log.Printf("Failed to set initial read deadline: %v", err)
		return
	}
	conn.SetPongHandler(func(string) error {
		if err := conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			log.Printf("Failed to set read deadline in pong handler: %v", err)
		}
		return nil
	})

	// Register the connection to the table channel
	tableClientsMu.Lock()
	if tableClients[table] == nil {
		tableClients[table] = make(map[*websocket.Conn]bool)
	}
	tableClients[table][conn] = true
	tableClientsMu.Unlock()

	// Closed on cleanup so the ping goroutine exits with the connection
	done := make(chan struct{})

	// Clean up when connection closes
	defer func() {
		close(done)

		tableClientsMu.Lock()

		if clients, exists := tableClients[table]; exists {
			delete(clients, conn)

			if len(clients) == 0 {
				delete(tableClients, table)
			}
		}

		tableClientsMu.Unlock()
		conn.Close()

		log.Printf("WebSocket connection closed for table %s", table)
	}()

	if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		log.Printf("Failed to set write deadline for welcome message: %v", err)
		return
	}

	err = conn.WriteJSON(map[string]string{
		"type":  "connected",
		"table": table,
	})

	if err != nil {
		log.Printf("Failed to send welcome message: %v", err)
		return
	}

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	go pingLoop(conn, table, ticker.C, done)

	for {
		if err := conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			log.Printf("Failed to set read deadline for table %s: %v", table, err)
			break
		}

		messageType, message, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error for table %s: %v", table, err)
			}
			break
		}

		if messageType == websocket.TextMessage {
			log.Printf("Received message from subscriber of %s: %s", table, string(message))
		}
	}
}
