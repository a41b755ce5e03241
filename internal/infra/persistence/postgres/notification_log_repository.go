package postgres

import (
	"context"

	"reminders/internal/domain/entity"
	domainerrors "reminders/internal/domain/errors"
	"reminders/internal/domain/repository"
	"reminders/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const notificationLogBatchSize = 100

type notificationLogRepository struct {
	db *gorm.DB
}

// NewNotificationLogRepository is the constructor for notificationLogRepository.
func NewNotificationLogRepository(db *gorm.DB) repository.NotificationLogRepository {
	return &notificationLogRepository{
		db: db,
	}
}

// BatchCreateNotificationLogs persists the logs, assigning IDs where missing.
func (repo *notificationLogRepository) BatchCreateNotificationLogs(ctx context.Context, logs []*entity.NotificationLog) error {
	if len(logs) == 0 {
		return nil
	}

	logModels := make([]*model.NotificationLogModel, 0, len(logs))
	for _, log := range logs {
		if log.ID == uuid.Nil {
			id, err := uuid.NewV7()
			if err != nil {
				return errors.Wrap(err, "failed to generate notification log ID")
			}
			log.ID = id
		}
		logModels = append(logModels, fromNotificationLogDomain(log))
	}

	if err := repo.db.WithContext(ctx).
		CreateInBatches(logModels, notificationLogBatchSize).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification logs")
	}

	return nil
}

// FindLogsByReminder returns the logs of one reminder, newest first.
func (repo *notificationLogRepository) FindLogsByReminder(ctx context.Context, reminderID string) ([]*entity.NotificationLog, error) {
	var logModels []*model.NotificationLogModel

	if err := repo.db.WithContext(ctx).
		Where("reminder_id = ?", reminderID).
		Order("sent_at DESC").
		Find(&logModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find notification logs")
	}

	logs := make([]*entity.NotificationLog, 0, len(logModels))
	for _, logM := range logModels {
		logs = append(logs, toNotificationLogDomain(logM))
	}

	return logs, nil
}

// --- Mapper Functions ---

func toNotificationLogDomain(data *model.NotificationLogModel) *entity.NotificationLog {
	return &entity.NotificationLog{
		ID:           data.ID,
		ReminderID:   data.ReminderID,
		UserID:       data.UserID,
		DeviceID:     data.DeviceID,
		Status:       data.Status,
		FCMMessageID: data.FCMMessageID,
		ErrorMessage: data.ErrorMessage,
		SentAt:       data.SentAt,
	}
}

func fromNotificationLogDomain(data *entity.NotificationLog) *model.NotificationLogModel {
	return &model.NotificationLogModel{
		ID:           data.ID,
		ReminderID:   data.ReminderID,
		UserID:       data.UserID,
		DeviceID:     data.DeviceID,
		Status:       data.Status,
		FCMMessageID: data.FCMMessageID,
		ErrorMessage: data.ErrorMessage,
		SentAt:       data.SentAt,
	}
}
