package presenter

import (
	"context"
	"sync"

	"reminders/internal/domain/constants"
	"reminders/internal/domain/entity"
	"reminders/internal/domain/result"
)

// fakeDataSource keeps reminders in memory and can be told to fail.
type fakeDataSource struct {
	mu          sync.Mutex
	reminders   map[string]*entity.Reminder
	returnError bool

	// entered and release let a test hold GetReminders mid-flight.
	entered chan struct{}
	release chan struct{}
}

func newFakeDataSource(reminders ...*entity.Reminder) *fakeDataSource {
	f := &fakeDataSource{reminders: make(map[string]*entity.Reminder)}
	for _, r := range reminders {
		f.reminders[r.ID] = r
	}

	return f
}

func (f *fakeDataSource) GetReminders(_ context.Context, userID string) result.Result[[]*entity.Reminder] {
	if f.entered != nil {
		f.entered <- struct{}{}
		<-f.release
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.returnError {
		return result.Error[[]*entity.Reminder]("Test Exception")
	}

	list := []*entity.Reminder{}
	for _, r := range f.reminders {
		if r.UserID == userID {
			list = append(list, r)
		}
	}

	return result.Success(list)
}

func (f *fakeDataSource) GetReminder(_ context.Context, id string) result.Result[*entity.Reminder] {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.returnError {
		return result.Error[*entity.Reminder]("Test Exception")
	}
	if r, ok := f.reminders[id]; ok {
		return result.Success(r)
	}

	return result.Error[*entity.Reminder](constants.MessageReminderNotFound)
}

func (f *fakeDataSource) SaveReminder(_ context.Context, reminder *entity.Reminder) result.Result[result.Unit] {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.reminders[reminder.ID] = reminder

	return result.Done()
}

func (f *fakeDataSource) DeleteAllReminders(_ context.Context, userID string) result.Result[result.Unit] {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.returnError {
		return result.Error[result.Unit]("Test Exception")
	}
	for id, r := range f.reminders {
		if r.UserID == userID {
			delete(f.reminders, id)
		}
	}

	return result.Done()
}
