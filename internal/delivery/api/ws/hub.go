// Package ws runs presenter sessions over WebSocket. Each connection owns the
// three reminder screens and streams their state to the client.
package ws

import (
	"encoding/json"
	"log/slog"
	"sync"

	"reminders/internal/infra/metrics"
)

// Message is a server-to-client frame.
type Message struct {
	Type string `json:"type"`
	Data any    `json:"data,omitempty"`
}

// Outbound message types.
const (
	TypeListState        = "list_state"
	TypeSaveState        = "save_state"
	TypeNavigation       = "navigation"
	TypeToast            = "toast"
	TypeSnackBar         = "snackbar"
	TypeRemindersChanged = "reminders_changed"
)

// Hub tracks the open sessions of every user.
type Hub struct {
	mu       sync.RWMutex
	sessions map[string]map[*Session]struct{}
	logger   *slog.Logger
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		sessions: make(map[string]map[*Session]struct{}),
		logger:   logger,
	}
}

// Register adds s under its user.
func (h *Hub) Register(s *Session) {
	h.mu.Lock()
	defer h.mu.Unlock()

	userSessions, ok := h.sessions[s.userID]
	if !ok {
		userSessions = make(map[*Session]struct{})
		h.sessions[s.userID] = userSessions
	}
	userSessions[s] = struct{}{}
	metrics.ActiveWebSockets.Inc()
}

// Unregister removes s and closes its send channel. Calling it twice is safe.
func (h *Hub) Unregister(s *Session) {
	h.mu.Lock()
	defer h.mu.Unlock()

	userSessions, ok := h.sessions[s.userID]
	if !ok {
		return
	}
	if _, ok := userSessions[s]; !ok {
		return
	}

	delete(userSessions, s)
	if len(userSessions) == 0 {
		delete(h.sessions, s.userID)
	}
	s.closeSend()
	metrics.ActiveWebSockets.Dec()
}

// NotifyRemindersChanged tells every session of userID except origin that
// the reminder list is stale. origin may be nil.
func (h *Hub) NotifyRemindersChanged(userID string, origin *Session) {
	data, err := json.Marshal(Message{Type: TypeRemindersChanged})
	if err != nil {
		h.logger.Error("Failed to marshal hub message", slog.Any("error", err))

		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for s := range h.sessions[userID] {
		if s == origin {
			continue
		}
		s.trySend(data)
	}
}

// SessionCount returns the number of open sessions of userID.
func (h *Hub) SessionCount(userID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.sessions[userID])
}
