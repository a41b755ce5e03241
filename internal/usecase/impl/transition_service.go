package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "reminders/internal/delivery/context"
	"reminders/internal/domain/entity"
	"reminders/internal/domain/repository"
	"reminders/internal/domain/service"
	"reminders/internal/infra/metrics"
	"reminders/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	// Firebase batch size limit
	firebaseBatchSize = 500

	invalidTokenMessage = "invalid or unregistered token"
)

type transitionService struct {
	dataSource      repository.ReminderDataSource
	deviceRepo      repository.DeviceRepository
	txManager       repository.TransactionManager
	notificationSvc service.NotificationService
	now             func() time.Time
	logger          *slog.Logger
}

// TransitionServiceParams holds dependencies for TransitionService, injected by Fx.
type TransitionServiceParams struct {
	fx.In

	DataSource      repository.ReminderDataSource
	DeviceRepo      repository.DeviceRepository
	TxManager       repository.TransactionManager
	NotificationSvc service.NotificationService
	Logger          *slog.Logger
}

// NewTransitionService creates the use case run by the geo worker.
func NewTransitionService(params TransitionServiceParams) usecase.TransitionUsecase {
	return &transitionService{
		dataSource:      params.DataSource,
		deviceRepo:      params.DeviceRepo,
		txManager:       params.TxManager,
		notificationSvc: params.NotificationSvc,
		now:             time.Now,
		logger:          params.Logger,
	}
}

// HandleTransition notifies the reminder owner's devices when a geofence is
// entered. Only the first triggering geofence is considered.
func (srv *transitionService) HandleTransition(ctx context.Context, event *service.GeofenceTransitionEvent) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger).With(slog.String("user_id", event.UserID))

	if event.Transition != entity.TransitionEnter {
		logger.Info("Ignoring geofence transition", slog.String("transition", string(event.Transition)))

		return nil
	}
	if len(event.RequestIDs) == 0 {
		logger.Warn("No geofence trigger found")

		return nil
	}

	reminderID := event.RequestIDs[0]
	logger = logger.With(slog.String("reminder_id", reminderID))

	res := srv.dataSource.GetReminder(ctx, reminderID)
	reminder, ok := res.Get()
	if !ok {
		logger.Warn("Dropping geofence transition", slog.String("reason", res.Message()))

		return nil
	}
	if reminder.UserID != event.UserID {
		logger.Warn("Dropping geofence transition for a reminder of another user")

		return nil
	}

	metrics.GeofenceTransitions.WithLabelValues(string(event.Transition)).Inc()

	return srv.notify(ctx, logger, reminder)
}

func (srv *transitionService) notify(ctx context.Context, logger *slog.Logger, reminder *entity.Reminder) error {
	devices, err := srv.deviceRepo.FindActiveDevicesByUser(ctx, reminder.UserID)
	if err != nil {
		return errors.Wrap(err, "failed to fetch devices")
	}
	if len(devices) == 0 {
		logger.Info("No active devices to notify")

		return nil
	}

	tokens := make([]string, 0, len(devices))
	deviceByToken := make(map[string]*entity.UserDevice, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
		deviceByToken[device.FCMToken] = device
	}

	notification := &entity.ReminderNotification{
		ReminderID:  reminder.ID,
		Title:       reminder.Title,
		Description: reminder.Description,
		Location:    reminder.Location,
		Latitude:    reminder.Latitude,
		Longitude:   reminder.Longitude,
	}
	body := reminder.NotificationBody()

	var (
		logs              []*entity.NotificationLog
		invalidDeviceIDs  []uuid.UUID
		totalSent, failed int
	)

	for start := 0; start < len(tokens); start += firebaseBatchSize {
		end := min(start+firebaseBatchSize, len(tokens))
		batch := tokens[start:end]

		successCount, failureCount, invalidTokens, err := srv.notificationSvc.SendBatchNotification(
			ctx, batch, notification.Title, body, notification.Data(),
		)
		if err != nil {
			logger.Error("Failed to send notification batch", slog.Int("size", len(batch)), slog.Any("error", err))
			failed += len(batch)
			for _, token := range batch {
				logs = append(logs, srv.newLog(reminder, deviceByToken[token], entity.NotificationStatusFailed, err.Error()))
			}

			continue
		}

		totalSent += successCount
		failed += failureCount

		invalid := make(map[string]struct{}, len(invalidTokens))
		for _, token := range invalidTokens {
			invalid[token] = struct{}{}
		}
		for _, token := range batch {
			device := deviceByToken[token]
			if _, bad := invalid[token]; bad {
				logs = append(logs, srv.newLog(reminder, device, entity.NotificationStatusFailed, invalidTokenMessage))
				invalidDeviceIDs = append(invalidDeviceIDs, device.ID)

				continue
			}
			logs = append(logs, srv.newLog(reminder, device, entity.NotificationStatusSent, ""))
		}
	}

	metrics.NotificationsSent.WithLabelValues(entity.NotificationStatusSent).Add(float64(totalSent))
	metrics.NotificationsSent.WithLabelValues(entity.NotificationStatusFailed).Add(float64(failed))
	logger.Info("Reminder notification sent", slog.Int("sent", totalSent), slog.Int("failed", failed))

	err = srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		if err := txRepoFactory.NewNotificationLogRepository().BatchCreateNotificationLogs(ctx, logs); err != nil {
			return errors.Wrap(err, "failed to create notification logs")
		}
		if len(invalidDeviceIDs) == 0 {
			return nil
		}
		if err := txRepoFactory.NewDeviceRepository().DeactivateDevices(ctx, invalidDeviceIDs); err != nil {
			return errors.Wrap(err, "failed to deactivate invalid devices")
		}

		return nil
	})
	if err != nil {
		logger.Error("Failed to record notification outcome", slog.Any("error", err))

		return err
	}

	return nil
}

func (srv *transitionService) newLog(reminder *entity.Reminder, device *entity.UserDevice, status, errorMessage string) *entity.NotificationLog {
	return &entity.NotificationLog{
		ID:           uuid.New(),
		ReminderID:   reminder.ID,
		UserID:       reminder.UserID,
		DeviceID:     device.ID,
		Status:       status,
		ErrorMessage: errorMessage,
		SentAt:       srv.now(),
	}
}
