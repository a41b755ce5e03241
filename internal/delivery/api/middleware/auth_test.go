package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"reminders/internal/domain/entity"
	domainerrors "reminders/internal/domain/errors"
	mockUsecase "reminders/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthMiddleware_Authenticate(t *testing.T) {
	user := &entity.AuthUser{UID: "user-1", Email: "user@example.com"}

	tests := []struct {
		name       string
		header     string
		query      string
		setup      func(m *mockUsecase.MockAuthUsecase)
		wantStatus int
		wantUID    string
	}{
		{
			name:   "valid header",
			header: "Bearer good",
			setup: func(m *mockUsecase.MockAuthUsecase) {
				m.EXPECT().Authenticate(mock.Anything, "Bearer good").Return(user, nil)
			},
			wantStatus: http.StatusOK,
			wantUID:    "user-1",
		},
		{
			name:  "token in query for websocket upgrade",
			query: "?access_token=good",
			setup: func(m *mockUsecase.MockAuthUsecase) {
				m.EXPECT().Authenticate(mock.Anything, "good").Return(user, nil)
			},
			wantStatus: http.StatusOK,
			wantUID:    "user-1",
		},
		{
			name:   "rejected token",
			header: "Bearer bad",
			setup: func(m *mockUsecase.MockAuthUsecase) {
				m.EXPECT().Authenticate(mock.Anything, "Bearer bad").Return(nil, domainerrors.ErrAuthenticationFailed)
			},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authUC := mockUsecase.NewMockAuthUsecase(t)
			tt.setup(authUC)

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/reminders"+tt.query, nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var gotUID string
			next := func(c echo.Context) error {
				gotUID, _ = GetUserID(c)

				return c.NoContent(http.StatusOK)
			}

			err := NewAuthMiddleware(authUC).Authenticate(next)(c)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantUID, gotUID)

			if tt.wantStatus == http.StatusUnauthorized {
				var body domainerrors.ErrorResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, "AUTHENTICATION_FAILED", body.Error.Code)
				assert.Equal(t, "Sign in unsuccessful", body.Error.Message)
			}
		})
	}
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "app error",
			err:        domainerrors.ErrReminderNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   "REMINDER_NOT_FOUND",
		},
		{
			name:       "validation error",
			err:        domainerrors.NewValidationError("err_enter_title"),
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
		{
			name:       "echo error",
			err:        echo.NewHTTPError(http.StatusMethodNotAllowed, "method not allowed"),
			wantStatus: http.StatusMethodNotAllowed,
			wantCode:   "HTTP_ERROR",
		},
		{
			name:       "unknown error",
			err:        assert.AnError,
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			NewErrorMiddleware(slog.Default()).HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			var body domainerrors.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Error.Code)
		})
	}
}
