package trips

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"keliva/schedule"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Allow all origins — adjust for production if needed
		return true
	},
}

var (
	subscribers = make(map[string][]*websocket.Conn)
	mu          sync.Mutex
)

// GET /ws/trips/:id/preview
//
// Preview panes subscribe here; every trip update pushes the freshly
// normalized itinerary to all subscribers of that trip.
func HandlePreviewWS(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	tripID := ps.ByName("id")

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, "WebSocket upgrade failed", http.StatusBadRequest)
		return
	}

	mu.Lock()
	subscribers[tripID] = append(subscribers[tripID], conn)
	mu.Unlock()

	for {
		// This keeps the connection alive until the client disconnects
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	// Clean up on disconnect
	mu.Lock()
	conns := subscribers[tripID]
	newList := make([]*websocket.Conn, 0, len(conns))
	for _, c := range conns {
		if c != conn {
			newList = append(newList, c)
		}
	}
	subscribers[tripID] = newList
	mu.Unlock()

	conn.Close()
}

func broadcastPreview(tripID string, days []schedule.ProcessedDay) {
	payload, err := json.Marshal(days)
	if err != nil {
		log.Printf("Failed to encode preview for trip %s: %v", tripID, err)
		return
	}

	mu.Lock()
	defer mu.Unlock()

	conns := subscribers[tripID]
	newList := conns[:0]

	for _, conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err == nil {
			newList = append(newList, conn)
		} else {
			conn.Close()
		}
	}

	subscribers[tripID] = newList
}
