package websocket

import (
	"log"
	"sync"

	"github.com/anjiri1684/exercise_platform/database"
	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
)

type Client struct {
	UserID uuid.UUID
	Conn   *websocket.Conn
}

// TeamEvent is pushed to every connected member of a team when an answer is
// graded, so clients can refresh which questions are unlocked.
type TeamEvent struct {
	TeamID     uuid.UUID `json:"team_id"`
	ActorID    uuid.UUID `json:"-"`
	Event      string    `json:"event"`
	QuestionID uuid.UUID `json:"question_id"`
	Correct    bool      `json:"correct"`
}

var clients = make(map[uuid.UUID]*websocket.Conn)
var clientsMu sync.RWMutex
var Register = make(chan *Client)
var Unregister = make(chan *Client)
var Broadcast = make(chan *TeamEvent)

func RunHub() {
	for {
		select {
		case client := <-Register:
			log.Printf("Client registered: %s", client.UserID)
			clientsMu.Lock()
			clients[client.UserID] = client.Conn
			clientsMu.Unlock()
		case client := <-Unregister:
			log.Printf("Client unregistered: %s", client.UserID)
			clientsMu.Lock()
			if conn, ok := clients[client.UserID]; ok && conn == client.Conn {
				delete(clients, client.UserID)
			}
			clientsMu.Unlock()
		case event := <-Broadcast:
			var memberIDs []uuid.UUID
			err := database.DB.
				Table("team_members").
				Where("team_id = ?", event.TeamID).
				Pluck("user_id", &memberIDs).Error
			if err != nil {
				log.Printf("Error fetching member IDs for team %s: %v", event.TeamID, err)
				continue
			}

			clientsMu.RLock()
			for _, memberID := range memberIDs {
				if memberID == event.ActorID {
					continue
				}
				if conn, ok := clients[memberID]; ok {
					if err := conn.WriteJSON(event); err != nil {
						log.Printf("Error sending event to client %s: %v", memberID, err)
						conn.Close()
						clientsMu.RUnlock()
						clientsMu.Lock()
						delete(clients, memberID)
						clientsMu.Unlock()
						clientsMu.RLock()
					}
				}
			}
			clientsMu.RUnlock()
		}
	}
}
