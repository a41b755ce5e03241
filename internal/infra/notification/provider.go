package notification

import (
	"context"
	"log/slog"

	"reminders/internal/domain/service"

	firebase "firebase.google.com/go/v4"
)

// NewNotificationService sends through FCM when a Firebase app is available
// and only logs otherwise.
func NewNotificationService(ctx context.Context, app *firebase.App, logger *slog.Logger) (service.NotificationService, error) {
	if app == nil {
		logger.Warn("Firebase not configured, notifications will only be logged")

		return NewLogService(logger), nil
	}

	return NewFirebaseService(ctx, app)
}
