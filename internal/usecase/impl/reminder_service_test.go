package impl

import (
	"context"
	"testing"
	"time"

	"reminders/config"
	"reminders/internal/domain/constants"
	"reminders/internal/domain/entity"
	domainerrors "reminders/internal/domain/errors"
	"reminders/internal/domain/result"
	"reminders/internal/domain/service"
	mockRepo "reminders/internal/mocks/repository"
	mockService "reminders/internal/mocks/service"
	"reminders/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

// reminderServiceFixtures holds all test dependencies for reminder service tests.
type reminderServiceFixtures struct {
	service    usecase.ReminderUsecase
	dataSource *mockRepo.MockReminderDataSource
	geofencing *mockService.MockGeofencingService
	publisher  *mockService.MockEventPublisher
}

func createTestReminderService(t *testing.T) reminderServiceFixtures {
	dataSource := mockRepo.NewMockReminderDataSource(t)
	geofencing := mockService.NewMockGeofencingService(t)
	publisher := mockService.NewMockEventPublisher(t)

	svc := NewReminderService(ReminderServiceParams{
		DataSource: dataSource,
		Geofencing: geofencing,
		Publisher:  publisher,
		Config:     &config.Config{},
		Logger:     newTestLogger(),
	})
	svc.(*reminderService).now = func() time.Time { return fixedNow }

	return reminderServiceFixtures{
		service:    svc,
		dataSource: dataSource,
		geofencing: geofencing,
		publisher:  publisher,
	}
}

func validItem() *entity.ReminderItem {
	return &entity.ReminderItem{
		Title:       "Title",
		Description: "Description",
		Location:    "California",
		Latitude:    ptr(36.7),
		Longitude:   ptr(119.4),
	}
}

func TestReminderService_ValidateEnteredData(t *testing.T) {
	fx := createTestReminderService(t)

	tests := []struct {
		name    string
		item    *entity.ReminderItem
		wantKey string
	}{
		{name: "nil item", item: nil, wantKey: constants.MessageKeyEnterTitle},
		{name: "empty title", item: &entity.ReminderItem{Location: "Home"}, wantKey: constants.MessageKeyEnterTitle},
		{name: "blank title", item: &entity.ReminderItem{Title: "   ", Location: "Home"}, wantKey: constants.MessageKeyEnterTitle},
		{name: "empty location", item: &entity.ReminderItem{Title: "Milk"}, wantKey: constants.MessageKeySelectLocation},
		{name: "blank location", item: &entity.ReminderItem{Title: "Milk", Location: "\t"}, wantKey: constants.MessageKeySelectLocation},
		{name: "valid", item: &entity.ReminderItem{Title: "Milk", Location: "Home"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verr := fx.service.ValidateEnteredData(tt.item)
			if tt.wantKey == "" {
				assert.Nil(t, verr)

				return
			}
			require.NotNil(t, verr)
			assert.Equal(t, tt.wantKey, verr.MessageKey)
		})
	}
}

func TestReminderService_SaveReminder_Success(t *testing.T) {
	fx := createTestReminderService(t)
	ctx := context.Background()

	fx.geofencing.EXPECT().RemoveGeofences(ctx, "user-1").Return(nil)
	fx.geofencing.EXPECT().
		AddGeofences(ctx, mock.MatchedBy(func(req *entity.GeofencingRequest) bool {
			if req.Owner != "user-1" || len(req.Geofences) != 1 || req.InitialTrigger != entity.TransitionEnter {
				return false
			}
			fence := req.Geofences[0]

			return fence.RequestID != "" &&
				fence.RadiusMeters == config.DefaultGeofenceRadiusMeters &&
				fence.ExpiresAt.Equal(fixedNow.Add(config.DefaultGeofenceExpiration)) &&
				fence.Center == entity.LatLng{Latitude: 36.7, Longitude: 119.4} &&
				fence.Monitors(entity.TransitionEnter) && !fence.Monitors(entity.TransitionExit)
		})).
		Return(nil, nil)
	fx.dataSource.EXPECT().
		SaveReminder(ctx, mock.MatchedBy(func(r *entity.Reminder) bool {
			return r.UserID == "user-1" && r.Title == "Title" && r.Location == "California"
		})).
		Return(result.Done())

	outcome, err := fx.service.SaveReminder(ctx, "user-1", validItem())
	require.NoError(t, err)
	assert.True(t, outcome.Saved)
	assert.True(t, outcome.GeofenceRegistered)
	assert.NotEmpty(t, outcome.Reminder.ID)
	assert.Zero(t, outcome.Transitions)
}

func TestReminderService_SaveReminder_GeofenceFailureSkipsPersistence(t *testing.T) {
	fx := createTestReminderService(t)
	ctx := context.Background()

	fx.geofencing.EXPECT().RemoveGeofences(ctx, "user-1").Return(errors.New("not registered"))
	fx.geofencing.EXPECT().AddGeofences(ctx, mock.Anything).Return(nil, errors.New("registry unavailable"))

	outcome, err := fx.service.SaveReminder(ctx, "user-1", validItem())
	require.NoError(t, err)
	assert.False(t, outcome.Saved)
	assert.False(t, outcome.GeofenceRegistered)
	fx.dataSource.AssertNotCalled(t, "SaveReminder", mock.Anything, mock.Anything)
}

func TestReminderService_SaveReminder_PublishesInitialTrigger(t *testing.T) {
	fx := createTestReminderService(t)
	ctx := context.Background()

	item := validItem()
	item.ID = "r1"
	transition := &entity.GeofenceTransition{
		Owner:       "user-1",
		RequestIDs:  []string{"r1"},
		Transition:  entity.TransitionEnter,
		Location:    entity.LatLng{Latitude: 36.7, Longitude: 119.4},
		TriggeredAt: fixedNow,
	}

	fx.dataSource.EXPECT().GetReminder(ctx, "r1").Return(result.Error[*entity.Reminder](constants.MessageReminderNotFound))
	fx.geofencing.EXPECT().RemoveGeofences(ctx, "user-1").Return(nil)
	fx.geofencing.EXPECT().AddGeofences(ctx, mock.Anything).Return([]*entity.GeofenceTransition{transition}, nil)
	fx.dataSource.EXPECT().SaveReminder(ctx, mock.Anything).Return(result.Done())
	fx.publisher.EXPECT().
		PublishTransitionEvent(ctx, mock.MatchedBy(func(e *service.GeofenceTransitionEvent) bool {
			return e.UserID == "user-1" && len(e.RequestIDs) == 1 && e.RequestIDs[0] == "r1"
		})).
		Return(nil)

	outcome, err := fx.service.SaveReminder(ctx, "user-1", item)
	require.NoError(t, err)
	assert.Equal(t, "r1", outcome.Reminder.ID)
	assert.Equal(t, 1, outcome.Transitions)
}

func TestReminderService_SaveReminder_Errors(t *testing.T) {
	t.Run("validation", func(t *testing.T) {
		fx := createTestReminderService(t)
		item := validItem()
		item.Title = ""

		_, err := fx.service.SaveReminder(context.Background(), "user-1", item)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("missing coordinates", func(t *testing.T) {
		fx := createTestReminderService(t)
		item := validItem()
		item.Longitude = nil

		_, err := fx.service.SaveReminder(context.Background(), "user-1", item)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinates)
	})

	t.Run("out of range coordinates", func(t *testing.T) {
		fx := createTestReminderService(t)
		item := validItem()
		item.Latitude = ptr(91.0)

		_, err := fx.service.SaveReminder(context.Background(), "user-1", item)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinates)
	})

	t.Run("reminder of another user", func(t *testing.T) {
		fx := createTestReminderService(t)
		ctx := context.Background()
		item := validItem()
		item.ID = "r1"

		fx.dataSource.EXPECT().GetReminder(ctx, "r1").Return(result.Success(&entity.Reminder{ID: "r1", UserID: "user-2"}))

		_, err := fx.service.SaveReminder(ctx, "user-1", item)
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("store failure", func(t *testing.T) {
		fx := createTestReminderService(t)
		ctx := context.Background()

		fx.geofencing.EXPECT().RemoveGeofences(ctx, "user-1").Return(nil)
		fx.geofencing.EXPECT().AddGeofences(ctx, mock.Anything).Return(nil, nil)
		fx.dataSource.EXPECT().SaveReminder(ctx, mock.Anything).Return(result.Error[result.Unit]("disk full"))

		_, err := fx.service.SaveReminder(ctx, "user-1", validItem())
		assert.ErrorIs(t, err, domainerrors.ErrReminderSaveFailed)
	})
}

func TestReminderService_GetReminder(t *testing.T) {
	ctx := context.Background()

	t.Run("owned", func(t *testing.T) {
		fx := createTestReminderService(t)
		fx.dataSource.EXPECT().GetReminder(ctx, "r1").Return(result.Success(&entity.Reminder{ID: "r1", UserID: "user-1"}))

		reminder, err := fx.service.GetReminder(ctx, "user-1", "r1")
		require.NoError(t, err)
		assert.Equal(t, "r1", reminder.ID)
	})

	t.Run("other user", func(t *testing.T) {
		fx := createTestReminderService(t)
		fx.dataSource.EXPECT().GetReminder(ctx, "r1").Return(result.Success(&entity.Reminder{ID: "r1", UserID: "user-2"}))

		_, err := fx.service.GetReminder(ctx, "user-1", "r1")
		assert.ErrorIs(t, err, domainerrors.ErrReminderNotFound)
	})

	t.Run("missing", func(t *testing.T) {
		fx := createTestReminderService(t)
		fx.dataSource.EXPECT().GetReminder(ctx, "r1").Return(result.Error[*entity.Reminder](constants.MessageReminderNotFound))

		_, err := fx.service.GetReminder(ctx, "user-1", "r1")
		assert.ErrorIs(t, err, domainerrors.ErrReminderNotFound)
	})

	t.Run("store failure", func(t *testing.T) {
		fx := createTestReminderService(t)
		fx.dataSource.EXPECT().GetReminder(ctx, "r1").Return(result.Error[*entity.Reminder]("database is locked"))

		_, err := fx.service.GetReminder(ctx, "user-1", "r1")
		assert.ErrorIs(t, err, domainerrors.ErrInternalError)
	})
}

func TestReminderService_ListAndDelete(t *testing.T) {
	ctx := context.Background()
	fx := createTestReminderService(t)

	reminders := []*entity.Reminder{{ID: "r1", UserID: "user-1"}}
	fx.dataSource.EXPECT().GetReminders(ctx, "user-1").Return(result.Success(reminders)).Once()
	fx.dataSource.EXPECT().DeleteAllReminders(ctx, "user-1").Return(result.Done()).Once()
	fx.dataSource.EXPECT().GetReminders(ctx, "user-2").Return(result.Error[[]*entity.Reminder]("boom")).Once()

	got, err := fx.service.ListReminders(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, reminders, got)

	require.NoError(t, fx.service.DeleteAllReminders(ctx, "user-1"))

	_, err = fx.service.ListReminders(ctx, "user-2")
	assert.ErrorIs(t, err, domainerrors.ErrInternalError)
}
