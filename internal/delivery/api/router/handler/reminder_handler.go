package handler

import (
	"log/slog"
	"net/http"

	"reminders/internal/delivery/api/middleware"
	"reminders/internal/delivery/api/response"
	"reminders/internal/delivery/api/ws"
	deliverycontext "reminders/internal/delivery/context"
	"reminders/internal/domain/constants"
	"reminders/internal/domain/entity"
	domainerrors "reminders/internal/domain/errors"
	"reminders/internal/domain/service"
	"reminders/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReminderHandlerParams holds dependencies for ReminderHandler, injected by Fx.
type ReminderHandlerParams struct {
	fx.In

	ReminderUC usecase.ReminderUsecase
	QRCode     service.QRCodeService
	Hub        *ws.Hub
	Logger     *slog.Logger
}

// ReminderHandler exposes the reminder list and the save flow over REST.
type ReminderHandler struct {
	reminderUC usecase.ReminderUsecase
	qrCode     service.QRCodeService
	hub        *ws.Hub
	logger     *slog.Logger
}

func NewReminderHandler(params ReminderHandlerParams) *ReminderHandler {
	return &ReminderHandler{
		reminderUC: params.ReminderUC,
		qrCode:     params.QRCode,
		hub:        params.Hub,
		logger:     params.Logger,
	}
}

// SaveReminderResponse mirrors what the save screen shows after submitting.
type SaveReminderResponse struct {
	Reminder           *entity.Reminder `json:"reminder,omitempty"`
	Saved              bool             `json:"saved"`
	GeofenceRegistered bool             `json:"geofence_registered"`
	Transitions        int              `json:"transitions"`
	Message            string           `json:"message,omitempty"`
}

func (h *ReminderHandler) ListReminders(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrAuthenticationFailed)
	}

	reminders, err := h.reminderUC.ListReminders(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	items := make([]entity.ReminderItem, 0, len(reminders))
	for _, reminder := range reminders {
		items = append(items, entity.ReminderItemFromEntity(reminder))
	}

	return response.Success(c, http.StatusOK, items)
}

// SaveReminder returns 201 once the reminder is stored. When the geofence
// could not be added nothing is stored and the response is 200 with saved=false.
func (h *ReminderHandler) SaveReminder(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrAuthenticationFailed)
	}

	var item entity.ReminderItem
	if err := c.Bind(&item); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid reminder input")
	}

	ctx := c.Request().Context()
	outcome, err := h.reminderUC.SaveReminder(ctx, userID, &item)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	res := SaveReminderResponse{
		Reminder:           outcome.Reminder,
		Saved:              outcome.Saved,
		GeofenceRegistered: outcome.GeofenceRegistered,
		Transitions:        outcome.Transitions,
	}
	if !outcome.Saved {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Warn("Reminder not saved, geofence was not added",
			slog.String("user_id", userID))

		return response.Success(c, http.StatusOK, res)
	}

	res.Message = constants.MessageReminderSaved
	h.hub.NotifyRemindersChanged(userID, nil)

	return response.Success(c, http.StatusCreated, res)
}

func (h *ReminderHandler) GetReminder(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrAuthenticationFailed)
	}

	reminder, err := h.reminderUC.GetReminder(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, reminder)
}

// DeleteAllReminders clears the list. Registered geofences are left in place.
func (h *ReminderHandler) DeleteAllReminders(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrAuthenticationFailed)
	}

	if err := h.reminderUC.DeleteAllReminders(c.Request().Context(), userID); err != nil {
		return response.HandleAppError(c, err)
	}
	h.hub.NotifyRemindersChanged(userID, nil)

	return c.NoContent(http.StatusNoContent)
}

// ReminderQR renders the reminder location as a PNG QR code.
func (h *ReminderHandler) ReminderQR(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrAuthenticationFailed)
	}

	reminder, err := h.reminderUC.GetReminder(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.qrCode.GenerateReminderQR(reminder)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
