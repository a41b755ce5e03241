package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"reminders/internal/domain/entity"
	"reminders/internal/presenter"

	"github.com/coder/websocket"
)

const (
	sendBufferSize = 32
	pingInterval   = 30 * time.Second
	readLimit      = 64 << 10
)

// Command types sent by the client.
const (
	CmdLoadReminders    = "load_reminders"
	CmdDeleteReminders  = "delete_reminders"
	CmdAddReminder      = "add_reminder"
	CmdSetTitle         = "set_title"
	CmdSetDescription   = "set_description"
	CmdOpenMap          = "open_map"
	CmdSelectPOI        = "select_poi"
	CmdSelectCoordinate = "select_coordinate"
	CmdConfirmLocation  = "confirm_location"
	CmdSave             = "save"
	CmdClear            = "clear"
)

// Command is a client-to-server frame. Only the fields of its type are read.
type Command struct {
	Type        string                  `json:"type"`
	Title       string                  `json:"title,omitempty"`
	Description string                  `json:"description,omitempty"`
	POI         *entity.PointOfInterest `json:"poi,omitempty"`
	Latitude    *float64                `json:"latitude,omitempty"`
	Longitude   *float64                `json:"longitude,omitempty"`
}

// SnackBar carries either a plain message or a key the client translates.
type SnackBar struct {
	Message string `json:"message,omitempty"`
	Key     string `json:"key,omitempty"`
}

// Screens bundles the presenters a session drives.
type Screens struct {
	List   *presenter.RemindersListPresenter
	Save   *presenter.SaveReminderPresenter
	Select *presenter.SelectLocationPresenter
}

// Session is one client connection and the screens it owns. The screens live
// exactly as long as the connection.
type Session struct {
	hub     *Hub
	conn    *websocket.Conn
	userID  string
	screens Screens
	logger  *slog.Logger

	mu     sync.Mutex
	send   chan []byte
	closed bool
}

func NewSession(hub *Hub, conn *websocket.Conn, userID string, screens Screens, logger *slog.Logger) *Session {
	return &Session{
		hub:     hub,
		conn:    conn,
		userID:  userID,
		screens: screens,
		logger:  logger.With(slog.String("user_id", userID)),
		send:    make(chan []byte, sendBufferSize),
	}
}

// Run serves the connection until it closes or ctx ends.
func (s *Session) Run(ctx context.Context) {
	s.hub.Register(s)
	defer s.hub.Unregister(s)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.conn.SetReadLimit(readLimit)

	go s.writePump(ctx)
	go s.forward(ctx)
	s.readPump(ctx)
}

func (s *Session) readPump(ctx context.Context) {
	for {
		_, data, err := s.conn.Read(ctx)
		if err != nil {
			if websocket.CloseStatus(err) == -1 && ctx.Err() == nil {
				s.logger.Debug("WebSocket read ended", slog.Any("error", err))
			}

			return
		}

		var cmd Command
		if err := json.Unmarshal(data, &cmd); err != nil {
			s.enqueue(Message{Type: TypeSnackBar, Data: SnackBar{Message: "Malformed command"}})

			continue
		}
		s.dispatch(ctx, &cmd)
	}
}

// dispatch runs commands one at a time so presenter calls never overlap.
func (s *Session) dispatch(ctx context.Context, cmd *Command) {
	list, save, sel := s.screens.List, s.screens.Save, s.screens.Select

	switch cmd.Type {
	case CmdLoadReminders:
		list.LoadReminders(ctx)
	case CmdDeleteReminders:
		if list.DeleteReminders(ctx) {
			s.hub.NotifyRemindersChanged(s.userID, s)
		}
	case CmdAddReminder:
		save.OnClear()
		list.NavigateToAddReminder()
	case CmdSetTitle:
		save.SetTitle(cmd.Title)
	case CmdSetDescription:
		save.SetDescription(cmd.Description)
	case CmdOpenMap:
		sel.Open()
	case CmdSelectPOI:
		if cmd.POI == nil {
			sel.OnLocationSelected()

			return
		}
		sel.SelectPOI(*cmd.POI)
	case CmdSelectCoordinate:
		if cmd.Latitude == nil || cmd.Longitude == nil {
			sel.OnLocationSelected()

			return
		}
		sel.SelectCoordinate(*cmd.Latitude, *cmd.Longitude)
	case CmdConfirmLocation:
		sel.OnLocationSelected()
	case CmdSave:
		s.save(ctx)
	case CmdClear:
		save.OnClear()
	default:
		s.enqueue(Message{Type: TypeSnackBar, Data: SnackBar{Message: "Unknown command: " + cmd.Type}})
	}
}

// save runs the save flow. Once the screen has navigated back the draft is
// cleared and the list reloaded, as when the list screen resumes.
func (s *Session) save(ctx context.Context) {
	outcome, err := s.screens.Save.Submit(ctx)
	if err != nil {
		s.logger.Warn("Save reminder failed", slog.Any("error", err))

		return
	}
	if outcome == nil {
		return
	}

	s.screens.Save.OnClear()
	s.screens.List.LoadReminders(ctx)
	if outcome.Saved {
		s.hub.NotifyRemindersChanged(s.userID, s)
	}
}

// forward streams presenter state and events to the client.
func (s *Session) forward(ctx context.Context) {
	base := s.screens.Save.Base
	listStates := s.screens.List.State.Subscribe(ctx)
	saveStates := s.screens.Save.State.Subscribe(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case st, ok := <-listStates:
			if !ok {
				return
			}
			s.enqueue(Message{Type: TypeListState, Data: st})
		case st, ok := <-saveStates:
			if !ok {
				return
			}
			s.enqueue(Message{Type: TypeSaveState, Data: st})
		case nav := <-base.Navigation.C():
			s.enqueue(Message{Type: TypeNavigation, Data: nav})
		case msg := <-base.Toasts.C():
			s.enqueue(Message{Type: TypeToast, Data: msg})
		case msg := <-base.SnackBars.C():
			s.enqueue(Message{Type: TypeSnackBar, Data: SnackBar{Message: msg}})
		case key := <-base.SnackBarKeys.C():
			s.enqueue(Message{Type: TypeSnackBar, Data: SnackBar{Key: key}})
		}
	}
}

func (s *Session) writePump(ctx context.Context) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case data, ok := <-s.send:
			if !ok {
				return
			}
			if err := s.conn.Write(ctx, websocket.MessageText, data); err != nil {
				return
			}
		case <-ticker.C:
			if err := s.conn.Ping(ctx); err != nil {
				return
			}
		case <-ctx.Done():
			return
		}
	}
}

func (s *Session) enqueue(msg Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		s.logger.Error("Failed to marshal session message", slog.String("type", msg.Type), slog.Any("error", err))

		return
	}
	s.trySend(data)
}

// trySend drops the frame when the client is not keeping up.
func (s *Session) trySend(data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	select {
	case s.send <- data:
	default:
		s.logger.Debug("WebSocket send buffer full, dropping frame")
	}
}

func (s *Session) closeSend() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.closed {
		s.closed = true
		close(s.send)
	}
}
