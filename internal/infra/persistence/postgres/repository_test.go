package postgres

import (
	"context"
	"testing"
	"time"

	"reminders/internal/domain/entity"
	"reminders/internal/domain/repository"
	"reminders/internal/infra/persistence/sqlite"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := sqlite.Open(sqlite.MemoryPath, true, logger.Discard)
	require.NoError(t, err)

	return db
}

func TestReminderRepository_FindAllOrdersByCreation(t *testing.T) {
	ctx := context.Background()
	repo := NewReminderRepository(newTestDB(t))

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, id := range []string{"c", "a", "b"} {
		require.NoError(t, repo.Save(ctx, &entity.Reminder{
			ID:        id,
			UserID:    "user-1",
			Title:     id,
			Location:  "loc",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	reminders, err := repo.FindAll(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, reminders, 3)
	assert.Equal(t, []string{"c", "a", "b"}, []string{reminders[0].ID, reminders[1].ID, reminders[2].ID})
}

func TestReminderRepository_SaveReplaceKeepsCreatedAt(t *testing.T) {
	ctx := context.Background()
	repo := NewReminderRepository(newTestDB(t))

	created := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Save(ctx, &entity.Reminder{
		ID:        "r1",
		UserID:    "user-1",
		Title:     "Buy milk",
		Location:  "Market",
		CreatedAt: created,
	}))

	replacement := &entity.Reminder{
		ID:        "r1",
		UserID:    "user-1",
		Title:     "Buy bread",
		Location:  "Bakery",
		CreatedAt: created.Add(time.Hour),
	}
	require.NoError(t, repo.Save(ctx, replacement))

	stored, err := repo.FindByID(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, "Buy bread", stored.Title)
	assert.Equal(t, "Bakery", stored.Location)
	assert.True(t, stored.CreatedAt.Equal(created), "stored created_at %s", stored.CreatedAt)
	assert.True(t, replacement.CreatedAt.Equal(stored.CreatedAt), "returned created_at %s", replacement.CreatedAt)
	assert.True(t, replacement.UpdatedAt.Equal(stored.UpdatedAt))
}

func TestReminderRepository_FindByIDNotFound(t *testing.T) {
	_, err := NewReminderRepository(newTestDB(t)).FindByID(context.Background(), "nope")

	assert.ErrorIs(t, err, repository.ErrReminderNotFound)
}

func TestDeviceRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	repo := NewDeviceRepository(newTestDB(t))

	device := &entity.UserDevice{
		UserID:   "user-1",
		FCMToken: "token-1",
		DeviceID: "pixel",
		Platform: "android",
		IsActive: true,
	}
	require.NoError(t, repo.CreateDevice(ctx, device))
	require.NotEqual(t, uuid.Nil, device.ID)

	found, err := repo.FindDeviceByClientID(ctx, "user-1", "pixel")
	require.NoError(t, err)
	assert.Equal(t, device.ID, found.ID)

	require.NoError(t, repo.DeactivateDevices(ctx, []uuid.UUID{device.ID}))
	active, err := repo.FindActiveDevicesByUser(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, active)

	require.NoError(t, repo.UpdateFCMToken(ctx, device.ID, "token-2"))
	active, err = repo.FindActiveDevicesByUser(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "token-2", active[0].FCMToken)

	require.NoError(t, repo.DeleteDevice(ctx, device.ID))
	_, err = repo.FindDeviceByID(ctx, device.ID)
	assert.ErrorIs(t, err, repository.ErrDeviceNotFound)
	assert.ErrorIs(t, repo.DeleteDevice(ctx, device.ID), repository.ErrDeviceNotFound)
}

func TestNotificationLogRepository_BatchCreate(t *testing.T) {
	ctx := context.Background()
	repo := NewNotificationLogRepository(newTestDB(t))

	now := time.Now().UTC()
	logs := []*entity.NotificationLog{
		{ReminderID: "r1", UserID: "user-1", DeviceID: uuid.New(), Status: entity.NotificationStatusSent, SentAt: now},
		{ReminderID: "r1", UserID: "user-1", DeviceID: uuid.New(), Status: entity.NotificationStatusFailed, SentAt: now.Add(time.Second)},
	}
	require.NoError(t, repo.BatchCreateNotificationLogs(ctx, logs))

	found, err := repo.FindLogsByReminder(ctx, "r1")
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, entity.NotificationStatusFailed, found[0].Status)
	assert.NotEqual(t, uuid.Nil, found[0].ID)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	tm := NewTransactionManager(db)

	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.NewReminderRepository().Save(ctx, &entity.Reminder{
			ID: "tx", UserID: "user-1", Title: "t", Location: "l",
		}); err != nil {
			return err
		}

		return assert.AnError
	})
	require.ErrorIs(t, err, assert.AnError)

	_, err = NewReminderRepository(db).FindByID(ctx, "tx")
	assert.ErrorIs(t, err, repository.ErrReminderNotFound)
}
