package ws

import (
	"log/slog"

	"reminders/config"
	"reminders/internal/delivery/api/middleware"
	"reminders/internal/delivery/api/response"
	deliverycontext "reminders/internal/delivery/context"
	domainerrors "reminders/internal/domain/errors"
	"reminders/internal/domain/repository"
	"reminders/internal/presenter"
	"reminders/internal/usecase"

	"github.com/coder/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HandlerParams holds dependencies for Handler, injected by Fx.
type HandlerParams struct {
	fx.In

	Config     *config.Config
	Hub        *Hub
	ReminderUC usecase.ReminderUsecase
	DataSource repository.ReminderDataSource
	Logger     *slog.Logger
}

// Handler upgrades authenticated requests to presenter sessions.
type Handler struct {
	acceptOptions *websocket.AcceptOptions
	hub           *Hub
	reminderUC    usecase.ReminderUsecase
	dataSource    repository.ReminderDataSource
	logger        *slog.Logger
}

func NewHandler(params HandlerParams) *Handler {
	opts := &websocket.AcceptOptions{}
	if origins := params.Config.HTTP.AllowedOrigins; len(origins) > 0 {
		opts.OriginPatterns = origins
	} else {
		opts.InsecureSkipVerify = true
	}

	return &Handler{
		acceptOptions: opts,
		hub:           params.Hub,
		reminderUC:    params.ReminderUC,
		dataSource:    params.DataSource,
		logger:        params.Logger,
	}
}

// Connect must run behind AuthMiddleware.Authenticate. It blocks for the
// lifetime of the connection.
func (h *Handler) Connect(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrAuthenticationFailed)
	}

	req := c.Request()
	conn, err := websocket.Accept(c.Response(), req, h.acceptOptions)
	if err != nil {
		// Accept has already written the HTTP error.
		h.logger.Warn("WebSocket accept failed", slog.Any("error", err))

		return nil
	}
	defer conn.CloseNow()

	logger := deliverycontext.GetLoggerOrDefault(req.Context(), h.logger)
	session := NewSession(h.hub, conn, userID, h.newScreens(userID, logger), logger)

	logger.Info("WebSocket session opened",
		slog.String("user_id", userID),
		slog.Int("user_sessions", h.hub.SessionCount(userID)+1),
	)
	session.Run(req.Context())
	logger.Info("WebSocket session closed",
		slog.String("user_id", userID),
		slog.Int("user_sessions", h.hub.SessionCount(userID)),
	)

	_ = conn.Close(websocket.StatusNormalClosure, "")

	return nil
}

func (h *Handler) newScreens(userID string, logger *slog.Logger) Screens {
	base := presenter.NewBase()
	save := presenter.NewSaveReminderPresenter(base, userID, h.reminderUC, logger)

	return Screens{
		List:   presenter.NewRemindersListPresenter(base, userID, h.dataSource),
		Save:   save,
		Select: presenter.NewSelectLocationPresenter(save),
	}
}
