// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"reminders/internal/domain/entity"
	"reminders/internal/domain/result"

	"github.com/pkg/errors"
)

// Domain-specific errors for reminder persistence.
var (
	// ErrReminderNotFound is returned when no reminder has the requested ID.
	ErrReminderNotFound = errors.New("reminder not found")
)

// ReminderRepository is the data-access layer over the reminders table.
type ReminderRepository interface {
	// FindAll returns every reminder owned by userID, oldest first.
	FindAll(ctx context.Context, userID string) ([]*entity.Reminder, error)

	// FindByID returns the reminder with the given ID or ErrReminderNotFound.
	FindByID(ctx context.Context, id string) (*entity.Reminder, error)

	// Save inserts the reminder, replacing any row with the same ID.
	Save(ctx context.Context, reminder *entity.Reminder) error

	// DeleteAll removes every reminder owned by userID.
	DeleteAll(ctx context.Context, userID string) error
}

// ReminderDataSource is the facade used by every layer above persistence.
// It never returns Go errors: failures come back as the error variant of
// result.Result with a message.
type ReminderDataSource interface {
	GetReminders(ctx context.Context, userID string) result.Result[[]*entity.Reminder]
	GetReminder(ctx context.Context, id string) result.Result[*entity.Reminder]
	SaveReminder(ctx context.Context, reminder *entity.Reminder) result.Result[result.Unit]
	DeleteAllReminders(ctx context.Context, userID string) result.Result[result.Unit]
}
