package presenter

import (
	"context"
	"testing"

	"reminders/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemindersListPresenter_LoadReminders(t *testing.T) {
	ds := newFakeDataSource(&entity.Reminder{
		ID:          "r1",
		UserID:      "user-1",
		Title:       "Title",
		Description: "Description",
		Location:    "California",
		Latitude:    36.7,
		Longitude:   119.4,
	})
	p := NewRemindersListPresenter(NewBase(), "user-1", ds)

	p.LoadReminders(context.Background())

	s := p.State.Get()
	require.Len(t, s.Reminders, 1)
	assert.Equal(t, "Title", s.Reminders[0].Title)
	assert.Equal(t, 36.7, *s.Reminders[0].Latitude)
	assert.False(t, s.ShowLoading)
	assert.False(t, s.ShowNoData)
}

func TestRemindersListPresenter_ShowsLoadingWhileFetching(t *testing.T) {
	ds := newFakeDataSource()
	ds.entered = make(chan struct{})
	ds.release = make(chan struct{})
	p := NewRemindersListPresenter(NewBase(), "user-1", ds)

	done := make(chan struct{})
	go func() {
		p.LoadReminders(context.Background())
		close(done)
	}()

	<-ds.entered
	assert.True(t, p.State.Get().ShowLoading)

	close(ds.release)
	<-done
	assert.False(t, p.State.Get().ShowLoading)
	assert.True(t, p.State.Get().ShowNoData)
}

func TestRemindersListPresenter_ErrorShowsSnackBar(t *testing.T) {
	ds := newFakeDataSource()
	ds.returnError = true
	p := NewRemindersListPresenter(NewBase(), "user-1", ds)

	p.LoadReminders(context.Background())

	assert.Equal(t, "Test Exception", <-p.SnackBars.C())
	assert.True(t, p.State.Get().ShowNoData)
}

func TestRemindersListPresenter_DeleteReminders(t *testing.T) {
	ds := newFakeDataSource(&entity.Reminder{ID: "r1", UserID: "user-1", Title: "Title"})
	p := NewRemindersListPresenter(NewBase(), "user-1", ds)
	ctx := context.Background()

	p.LoadReminders(ctx)
	require.Len(t, p.State.Get().Reminders, 1)

	assert.True(t, p.DeleteReminders(ctx))
	assert.Empty(t, p.State.Get().Reminders)
	assert.True(t, p.State.Get().ShowNoData)

	p.LoadReminders(ctx)
	assert.Empty(t, p.State.Get().Reminders)
}

func TestRemindersListPresenter_NavigateToAddReminder(t *testing.T) {
	p := NewRemindersListPresenter(NewBase(), "user-1", newFakeDataSource())

	p.NavigateToAddReminder()

	assert.Equal(t, NavigateTo(ScreenSaveReminder), <-p.Navigation.C())
}
