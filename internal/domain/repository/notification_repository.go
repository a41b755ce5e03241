package repository

import (
	"context"

	"reminders/internal/domain/entity"
)

// NotificationLogRepository stores the outcome of every reminder push.
type NotificationLogRepository interface {
	// BatchCreateNotificationLogs persists log entries in one statement.
	BatchCreateNotificationLogs(ctx context.Context, logs []*entity.NotificationLog) error

	// FindLogsByReminder returns the logs of one reminder, newest first.
	FindLogsByReminder(ctx context.Context, reminderID string) ([]*entity.NotificationLog, error)
}
