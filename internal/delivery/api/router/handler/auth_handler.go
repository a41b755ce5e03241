package handler

import (
	"net/http"

	"reminders/internal/delivery/api/middleware"
	"reminders/internal/delivery/api/response"
	"reminders/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuthHandler tells a client which screen to start on.
type AuthHandler struct {
	authUC usecase.AuthUsecase
}

func NewAuthHandler(authUC usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{authUC: authUC}
}

// AuthenticationState never fails: an invalid token reports UNAUTHENTICATED
// and the sign_in route.
func (h *AuthHandler) AuthenticationState(c echo.Context) error {
	state := h.authUC.AuthenticationState(c.Request().Context(), middleware.BearerToken(c))

	return response.Success(c, http.StatusOK, state)
}
