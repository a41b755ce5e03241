package handler

import (
	"log/slog"
	"net/http"

	"reminders/internal/delivery/api/middleware"
	"reminders/internal/delivery/api/response"
	domainerrors "reminders/internal/domain/errors"
	"reminders/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	LocationUC usecase.LocationUsecase
	Logger     *slog.Logger
}

// LocationHandler receives device position reports.
type LocationHandler struct {
	locationUC usecase.LocationUsecase
	logger     *slog.Logger
}

func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{
		locationUC: params.LocationUC,
		logger:     params.Logger,
	}
}

// ReportLocationResponse is the body returned for a position report.
type ReportLocationResponse struct {
	Transitions int `json:"transitions"`
}

// ReportLocation feeds the position into the geofence registry.
func (h *LocationHandler) ReportLocation(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrAuthenticationFailed)
	}

	var req usecase.ReportLocationInput
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid location input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	transitions, err := h.locationUC.ReportLocation(c.Request().Context(), userID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ReportLocationResponse{Transitions: transitions})
}
