package main

import (
	"sync"

	"github.com/coder/websocket"
)

// ConnectionManager tracks which avatar each stream connection drives
type ConnectionManager struct {
	connections map[*websocket.Conn]string
	avatarConns map[string]*websocket.Conn
	mutex       sync.RWMutex
}

func NewConnectionManager() *ConnectionManager {
	return &ConnectionManager{
		connections: make(map[*websocket.Conn]string),
		avatarConns: make(map[string]*websocket.Conn),
	}
}

// AddConnection associates conn with avatarID, replacing any earlier
// connection for the same avatar.
func (cm *ConnectionManager) AddConnection(conn *websocket.Conn, avatarID string) {
	cm.mutex.Lock()
	defer cm.mutex.Unlock()

	if old, exists := cm.avatarConns[avatarID]; exists {
		delete(cm.connections, old)
	}
	cm.connections[conn] = avatarID
	cm.avatarConns[avatarID] = conn
}

// RemoveConnection removes a connection and returns its avatar ID
func (cm *ConnectionManager) RemoveConnection(conn *websocket.Conn) string {
	cm.mutex.Lock()
	defer cm.mutex.Unlock()

	avatarID, exists := cm.connections[conn]
	if !exists {
		return ""
	}
	delete(cm.connections, conn)
	if cm.avatarConns[avatarID] == conn {
		delete(cm.avatarConns, avatarID)
	}
	return avatarID
}

func (cm *ConnectionManager) GetAvatarID(conn *websocket.Conn) (string, bool) {
	cm.mutex.RLock()
	defer cm.mutex.RUnlock()

	id, exists := cm.connections[conn]
	return id, exists
}

func (cm *ConnectionManager) GetConnection(avatarID string) (*websocket.Conn, bool) {
	cm.mutex.RLock()
	defer cm.mutex.RUnlock()

	conn, exists := cm.avatarConns[avatarID]
	return conn, exists
}

func (cm *ConnectionManager) Count() int {
	cm.mutex.RLock()
	defer cm.mutex.RUnlock()
	return len(cm.connections)
}

// CloseAll closes every tracked connection with the given status, e.g. on
// shutdown. Read loops observe the close and clean up after themselves.
func (cm *ConnectionManager) CloseAll(code websocket.StatusCode, reason string) {
	cm.mutex.RLock()
	conns := make([]*websocket.Conn, 0, len(cm.connections))
	for conn := range cm.connections {
		conns = append(conns, conn)
	}
	cm.mutex.RUnlock()

	for _, conn := range conns {
		_ = conn.Close(code, reason)
	}
}
