package ws

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
)

// Event is the wire envelope for pushed notifications.
type Event struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Manager keeps track of active client connections grouped into rooms. A
// room is named by a user id; multiple tabs for the same user all sit in the
// same room and all receive pushes.
type Manager struct {
	mu    sync.RWMutex
	rooms map[string]map[*websocket.Conn]bool
}

func NewManager() *Manager {
	return &Manager{rooms: make(map[string]map[*websocket.Conn]bool)}
}

// Join adds a connection to a room.
func (m *Manager) Join(room string, conn *websocket.Conn) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.rooms[room] == nil {
		m.rooms[room] = make(map[*websocket.Conn]bool)
	}
	m.rooms[room][conn] = true
}

// Leave removes a connection from a room and closes it.
func (m *Manager) Leave(room string, conn *websocket.Conn) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if conns, ok := m.rooms[room]; ok {
		if conns[conn] {
			_ = conn.Close()
			delete(conns, conn)
		}
		if len(conns) == 0 {
			delete(m.rooms, room)
		}
	}
}

// Emit pushes an event to every connection in a room, fire-and-forget.
// Connections that fail to write are dropped from the room.
func (m *Manager) Emit(room string, event Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		return
	}

	m.mu.RLock()
	conns := make([]*websocket.Conn, 0, len(m.rooms[room]))
	for conn := range m.rooms[room] {
		conns = append(conns, conn)
	}
	m.mu.RUnlock()

	var dead []*websocket.Conn
	for _, conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			dead = append(dead, conn)
		}
	}
	for _, conn := range dead {
		m.Leave(room, conn)
	}
}

// RoomSize returns how many connections a room currently holds.
func (m *Manager) RoomSize(room string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.rooms[room])
}

// Rooms returns the ids of rooms with at least one connection.
func (m *Manager) Rooms() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]string, 0, len(m.rooms))
	for id := range m.rooms {
		ids = append(ids, id)
	}
	return ids
}
