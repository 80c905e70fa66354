package services

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// HydrationEvent is the frame pushed over a user's websocket. Kind is one of
// "alert.created", "intake.logged" or "goal.updated".
type HydrationEvent struct {
	Kind    string `json:"kind"`
	Payload any    `json:"payload"`
	At      string `json:"at"`
}

type WSClient struct {
	UserID uint
	Conn   *websocket.Conn
	mu     sync.Mutex
}

func (c *WSClient) send(data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.Conn.WriteMessage(websocket.TextMessage, data)
}

// Ping shares the write lock with event frames so keepalives and
// broadcasts never interleave on the wire.
func (c *WSClient) Ping() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.Conn.WriteMessage(websocket.PingMessage, nil)
}

type RealtimeHub struct {
	mu      sync.RWMutex
	clients map[uint]map[*WSClient]struct{}
}

func NewRealtimeHub() *RealtimeHub {
	return &RealtimeHub{clients: make(map[uint]map[*WSClient]struct{})}
}

func (h *RealtimeHub) Register(c *WSClient) {
	h.mu.Lock()
	if h.clients[c.UserID] == nil {
		h.clients[c.UserID] = make(map[*WSClient]struct{})
	}
	h.clients[c.UserID][c] = struct{}{}
	h.mu.Unlock()
}

func (h *RealtimeHub) Unregister(c *WSClient) {
	h.mu.Lock()
	if set := h.clients[c.UserID]; set != nil {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.UserID)
		}
	}
	h.mu.Unlock()
	_ = c.Conn.Close()
}

// Broadcast sends an event to every open connection a user holds. Write
// failures are ignored here; the read loop tears dead connections down.
func (h *RealtimeHub) Broadcast(userID uint, kind string, payload any) {
	msg, err := json.Marshal(HydrationEvent{
		Kind:    kind,
		Payload: payload,
		At:      time.Now().Format(time.RFC3339),
	})
	if err != nil {
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[userID] {
		_ = c.send(msg)
	}
}
