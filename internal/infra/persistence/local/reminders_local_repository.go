// Package local adapts the reminder repository to the result-returning
// data source used above the persistence layer.
package local

import (
	"context"
	"log/slog"

	"reminders/internal/domain/constants"
	"reminders/internal/domain/entity"
	domainerrors "reminders/internal/domain/errors"
	"reminders/internal/domain/repository"
	"reminders/internal/domain/result"
	"reminders/internal/errors"
)

type remindersLocalRepository struct {
	repo   repository.ReminderRepository
	logger *slog.Logger
}

// NewRemindersLocalRepository wraps repo so failures surface as error results.
func NewRemindersLocalRepository(repo repository.ReminderRepository, logger *slog.Logger) repository.ReminderDataSource {
	return &remindersLocalRepository{
		repo:   repo,
		logger: logger,
	}
}

func (r *remindersLocalRepository) GetReminders(ctx context.Context, userID string) result.Result[[]*entity.Reminder] {
	reminders, err := r.repo.FindAll(ctx, userID)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to load reminders", slog.String("user_id", userID), slog.Any("error", err))

		return result.Error[[]*entity.Reminder](errorMessage(err))
	}

	return result.Success(reminders)
}

func (r *remindersLocalRepository) GetReminder(ctx context.Context, id string) result.Result[*entity.Reminder] {
	reminder, err := r.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrReminderNotFound) {
			return result.Error[*entity.Reminder](constants.MessageReminderNotFound)
		}
		r.logger.ErrorContext(ctx, "Failed to load reminder", slog.String("reminder_id", id), slog.Any("error", err))

		return result.Error[*entity.Reminder](errorMessage(err))
	}

	return result.Success(reminder)
}

func (r *remindersLocalRepository) SaveReminder(ctx context.Context, reminder *entity.Reminder) result.Result[result.Unit] {
	if err := r.repo.Save(ctx, reminder); err != nil {
		r.logger.ErrorContext(ctx, "Failed to save reminder", slog.String("reminder_id", reminder.ID), slog.Any("error", err))

		return result.Error[result.Unit](errorMessage(err))
	}

	return result.Done()
}

func (r *remindersLocalRepository) DeleteAllReminders(ctx context.Context, userID string) result.Result[result.Unit] {
	if err := r.repo.DeleteAll(ctx, userID); err != nil {
		r.logger.ErrorContext(ctx, "Failed to delete reminders", slog.String("user_id", userID), slog.Any("error", err))

		return result.Error[result.Unit](errorMessage(err))
	}

	return result.Done()
}

func errorMessage(err error) string {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.Message()
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return "Request cancelled"
	}

	return err.Error()
}
