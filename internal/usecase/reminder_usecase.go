// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"reminders/internal/domain/entity"
	domainerrors "reminders/internal/domain/errors"
)

// SaveOutcome reports how far the save flow got.
type SaveOutcome struct {
	Reminder *entity.Reminder
	// Saved is true once the reminder is persisted.
	Saved bool
	// GeofenceRegistered is false when the registry refused the geofence.
	// The reminder is not persisted in that case.
	GeofenceRegistered bool
	// Transitions raised by the initial trigger.
	Transitions int
}

// ReminderUsecase covers validation and persistence of a user's reminders.
type ReminderUsecase interface {
	// ValidateEnteredData checks the title and location are present. It
	// returns nil when the item may be saved.
	ValidateEnteredData(item *entity.ReminderItem) *domainerrors.ValidationError

	// SaveReminder registers a geofence around the item and persists it once
	// the registration succeeds.
	SaveReminder(ctx context.Context, userID string, item *entity.ReminderItem) (*SaveOutcome, error)

	ListReminders(ctx context.Context, userID string) ([]*entity.Reminder, error)

	// GetReminder returns the reminder when it belongs to userID.
	GetReminder(ctx context.Context, userID, id string) (*entity.Reminder, error)

	DeleteAllReminders(ctx context.Context, userID string) error
}
