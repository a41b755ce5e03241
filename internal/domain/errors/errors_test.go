package errors

import (
	"net/http"
	"testing"

	"reminders/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsKeepsIdentity(t *testing.T) {
	err := ErrReminderNotFound.WithDetails("id=abc")

	assert.True(t, errors.Is(err, ErrReminderNotFound))
	assert.False(t, errors.Is(err, ErrDeviceNotFound))
	assert.Equal(t, "id=abc", err.Details())
	assert.Equal(t, http.StatusNotFound, err.HTTPCode())
}

func TestBaseError_WrapMessage(t *testing.T) {
	err := ErrGeofenceRegistrationFailed.WrapMessage("valkey down")

	var appErr AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, "GEOFENCE_REGISTRATION_FAILED", appErr.ErrorCode())
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("err_enter_title")

	var appErr AppError
	assert.True(t, errors.As(error(err), &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	assert.Equal(t, "err_enter_title", appErr.Message())
}

func TestValidationError_IsValidationFailed(t *testing.T) {
	err := errors.Wrap(NewValidationError("err_select_location"), "save reminder")

	assert.True(t, errors.Is(err, ErrValidationFailed))
	assert.False(t, errors.Is(err, ErrInternalError))
}

func TestErrorInfoOf(t *testing.T) {
	tests := []struct {
		name        string
		err         AppError
		wantCode    string
		wantDetails any
	}{
		{
			name:        "details kept for not found",
			err:         ErrReminderNotFound.WithDetails("id=abc"),
			wantCode:    "REMINDER_NOT_FOUND",
			wantDetails: "id=abc",
		},
		{
			name:     "empty details omitted",
			err:      ErrReminderNotFound,
			wantCode: "REMINDER_NOT_FOUND",
		},
		{
			name:     "server error hides details",
			err:      NewDatabaseExecuteError(errors.New("connection reset"), "insert reminders"),
			wantCode: "DATABASE_EXECUTE_FAILED",
		},
		{
			name:     "auth failure hides details",
			err:      ErrAuthenticationFailed.WithDetails("token expired"),
			wantCode: "AUTHENTICATION_FAILED",
		},
		{
			name:     "forbidden hides details",
			err:      ErrForbidden.WithDetails("owner user-2"),
			wantCode: "FORBIDDEN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := ErrorInfoOf(tt.err)

			assert.Equal(t, tt.wantCode, info.Code)
			assert.Equal(t, tt.err.Message(), info.Message)
			assert.Equal(t, tt.wantDetails, info.Details)
		})
	}
}
