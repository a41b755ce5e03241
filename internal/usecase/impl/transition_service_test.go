package impl

import (
	"context"
	"testing"

	"reminders/internal/domain/constants"
	"reminders/internal/domain/entity"
	"reminders/internal/domain/repository"
	"reminders/internal/domain/result"
	"reminders/internal/domain/service"
	mockRepo "reminders/internal/mocks/repository"
	mockService "reminders/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// transitionServiceFixtures holds all test dependencies for transition service tests.
type transitionServiceFixtures struct {
	service         *transitionService
	dataSource      *mockRepo.MockReminderDataSource
	deviceRepo      *mockRepo.MockDeviceRepository
	txManager       *mockRepo.MockTransactionManager
	notificationSvc *mockService.MockNotificationService
}

func createTestTransitionService(t *testing.T) transitionServiceFixtures {
	dataSource := mockRepo.NewMockReminderDataSource(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	notificationSvc := mockService.NewMockNotificationService(t)

	svc := NewTransitionService(TransitionServiceParams{
		DataSource:      dataSource,
		DeviceRepo:      deviceRepo,
		TxManager:       txManager,
		NotificationSvc: notificationSvc,
		Logger:          newTestLogger(),
	})

	return transitionServiceFixtures{
		service:         svc.(*transitionService),
		dataSource:      dataSource,
		deviceRepo:      deviceRepo,
		txManager:       txManager,
		notificationSvc: notificationSvc,
	}
}

func enterEvent(ids ...string) *service.GeofenceTransitionEvent {
	return &service.GeofenceTransitionEvent{
		UserID:     "user-1",
		RequestIDs: ids,
		Transition: entity.TransitionEnter,
	}
}

func TestTransitionService_IgnoredEvents(t *testing.T) {
	ctx := context.Background()

	t.Run("exit transition", func(t *testing.T) {
		fx := createTestTransitionService(t)
		event := enterEvent("r1")
		event.Transition = entity.TransitionExit

		assert.NoError(t, fx.service.HandleTransition(ctx, event))
	})

	t.Run("no trigger", func(t *testing.T) {
		fx := createTestTransitionService(t)

		assert.NoError(t, fx.service.HandleTransition(ctx, enterEvent()))
	})

	t.Run("reminder not found", func(t *testing.T) {
		fx := createTestTransitionService(t)
		fx.dataSource.EXPECT().GetReminder(ctx, "r1").Return(result.Error[*entity.Reminder](constants.MessageReminderNotFound))

		assert.NoError(t, fx.service.HandleTransition(ctx, enterEvent("r1")))
	})

	t.Run("reminder of another user", func(t *testing.T) {
		fx := createTestTransitionService(t)
		fx.dataSource.EXPECT().GetReminder(ctx, "r1").Return(result.Success(&entity.Reminder{ID: "r1", UserID: "user-2"}))

		assert.NoError(t, fx.service.HandleTransition(ctx, enterEvent("r1")))
	})

	t.Run("no active devices", func(t *testing.T) {
		fx := createTestTransitionService(t)
		fx.dataSource.EXPECT().GetReminder(ctx, "r1").Return(result.Success(&entity.Reminder{ID: "r1", UserID: "user-1"}))
		fx.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, "user-1").Return(nil, nil)

		assert.NoError(t, fx.service.HandleTransition(ctx, enterEvent("r1")))
	})
}

func TestTransitionService_NotifiesFirstTrigger(t *testing.T) {
	ctx := context.Background()
	fx := createTestTransitionService(t)

	reminder := &entity.Reminder{
		ID:          "r1",
		UserID:      "user-1",
		Title:       "Buy milk",
		Description: "Two litres",
		Location:    "Grocery",
	}
	good := &entity.UserDevice{ID: uuid.New(), UserID: "user-1", FCMToken: "good-token"}
	stale := &entity.UserDevice{ID: uuid.New(), UserID: "user-1", FCMToken: "stale-token"}

	logRepo := mockRepo.NewMockNotificationLogRepository(t)
	txDeviceRepo := mockRepo.NewMockDeviceRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)

	fx.dataSource.EXPECT().GetReminder(ctx, "r1").Return(result.Success(reminder))
	fx.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, "user-1").Return([]*entity.UserDevice{good, stale}, nil)
	fx.notificationSvc.EXPECT().
		SendBatchNotification(ctx, []string{"good-token", "stale-token"}, "Buy milk", "Two litres @ Grocery",
			mock.MatchedBy(func(data map[string]string) bool { return data["reminder_id"] == "r1" })).
		Return(1, 1, []string{"stale-token"}, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
	factory.EXPECT().NewNotificationLogRepository().Return(logRepo)
	factory.EXPECT().NewDeviceRepository().Return(txDeviceRepo)
	logRepo.EXPECT().
		BatchCreateNotificationLogs(ctx, mock.MatchedBy(func(logs []*entity.NotificationLog) bool {
			if len(logs) != 2 {
				return false
			}

			return logs[0].DeviceID == good.ID && logs[0].Status == entity.NotificationStatusSent &&
				logs[1].DeviceID == stale.ID && logs[1].Status == entity.NotificationStatusFailed &&
				logs[1].ReminderID == "r1"
		})).
		Return(nil)
	txDeviceRepo.EXPECT().DeactivateDevices(ctx, []uuid.UUID{stale.ID}).Return(nil)

	require.NoError(t, fx.service.HandleTransition(ctx, enterEvent("r1", "r2")))
}

func TestTransitionService_BatchErrorLogsFailures(t *testing.T) {
	ctx := context.Background()
	fx := createTestTransitionService(t)

	device := &entity.UserDevice{ID: uuid.New(), UserID: "user-1", FCMToken: "token"}
	logRepo := mockRepo.NewMockNotificationLogRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)

	fx.dataSource.EXPECT().GetReminder(ctx, "r1").Return(result.Success(&entity.Reminder{ID: "r1", UserID: "user-1", Title: "T"}))
	fx.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, "user-1").Return([]*entity.UserDevice{device}, nil)
	fx.notificationSvc.EXPECT().
		SendBatchNotification(ctx, mock.Anything, "T", "", mock.Anything).
		Return(0, 0, nil, errors.New("fcm unavailable"))
	fx.txManager.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
	factory.EXPECT().NewNotificationLogRepository().Return(logRepo)
	logRepo.EXPECT().
		BatchCreateNotificationLogs(ctx, mock.MatchedBy(func(logs []*entity.NotificationLog) bool {
			return len(logs) == 1 && logs[0].Status == entity.NotificationStatusFailed && logs[0].ErrorMessage == "fcm unavailable"
		})).
		Return(nil)

	require.NoError(t, fx.service.HandleTransition(ctx, enterEvent("r1")))
}

func TestTransitionService_RecordFailure(t *testing.T) {
	ctx := context.Background()
	fx := createTestTransitionService(t)

	device := &entity.UserDevice{ID: uuid.New(), UserID: "user-1", FCMToken: "token"}

	fx.dataSource.EXPECT().GetReminder(ctx, "r1").Return(result.Success(&entity.Reminder{ID: "r1", UserID: "user-1"}))
	fx.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, "user-1").Return([]*entity.UserDevice{device}, nil)
	fx.notificationSvc.EXPECT().SendBatchNotification(ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(1, 0, nil, nil)
	fx.txManager.EXPECT().Execute(ctx, mock.Anything).Return(errors.New("tx aborted"))

	assert.ErrorContains(t, fx.service.HandleTransition(ctx, enterEvent("r1")), "tx aborted")
}
