package middleware

import (
	"reminders/internal/delivery/api/response"
	deliverycontext "reminders/internal/delivery/context"
	"reminders/internal/domain/entity"
	domainerrors "reminders/internal/domain/errors"
	"reminders/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware guards routes behind a verified bearer token.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
}

func NewAuthMiddleware(authUC usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{authUC: authUC}
}

// Authenticate rejects requests without a valid token with 401. The verified
// user is available to handlers through GetUser.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := m.authUC.Authenticate(c.Request().Context(), BearerToken(c))
		if err != nil {
			return response.HandleAppError(c, domainerrors.ErrAuthenticationFailed)
		}

		deliverycontext.SetUser(c, user)

		return next(c)
	}
}

// BearerToken returns the Authorization header. Browsers cannot set headers
// on a WebSocket upgrade, so the access_token query parameter is accepted too.
func BearerToken(c echo.Context) string {
	if header := c.Request().Header.Get(echo.HeaderAuthorization); header != "" {
		return header
	}

	return c.QueryParam("access_token")
}

// GetUser returns the user set by Authenticate.
func GetUser(c echo.Context) (*entity.AuthUser, bool) {
	user := deliverycontext.GetUser(c)

	return user, user != nil
}

// GetUserID returns the uid of the user set by Authenticate.
func GetUserID(c echo.Context) (string, bool) {
	user, ok := GetUser(c)
	if !ok {
		return "", false
	}

	return user.UID, true
}
