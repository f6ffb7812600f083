// Package notify pushes lightweight events (new follower, new review) to
// connected browsers over a websocket, one connection per user.
package notify

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"forkful/utils"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
)

type Event struct {
	Type    string `json:"type"`
	From    string `json:"from,omitempty"`
	Payload string `json:"payload,omitempty"`
}

var (
	clients = struct {
		sync.RWMutex
		m map[string]*websocket.Conn
	}{m: make(map[string]*websocket.Conn)}

	upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
)

// Handler upgrades an authenticated request and registers the connection
// under the caller's user id, replacing any previous one.
func Handler(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[notify] upgrade failed for %s: %v", userID, err)
		return
	}

	clients.Lock()
	if old, ok := clients.m[userID]; ok {
		old.Close()
	}
	clients.m[userID] = conn
	clients.Unlock()

	go readLoop(userID, conn)
}

// readLoop drains the connection until it closes so pings are answered and
// the close is noticed.
func readLoop(userID string, conn *websocket.Conn) {
	defer func() {
		clients.Lock()
		if clients.m[userID] == conn {
			delete(clients.m, userID)
		}
		clients.Unlock()
		conn.Close()
	}()
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// Push sends an event to a user if they are connected. Offline users simply
// miss the event; nothing is queued.
func Push(userID string, event Event) {
	clients.RLock()
	conn, ok := clients.m[userID]
	clients.RUnlock()
	if !ok {
		return
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return
	}
	if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
		log.Printf("[notify] write to %s failed: %v", userID, err)
	}
}
