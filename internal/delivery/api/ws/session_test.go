package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"reminders/internal/domain/constants"
	"reminders/internal/domain/entity"
	"reminders/internal/domain/result"
	mockRepo "reminders/internal/mocks/repository"
	mockUsecase "reminders/internal/mocks/usecase"
	"reminders/internal/presenter"
	"reminders/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type sessionFixture struct {
	hub        *Hub
	session    *Session
	screens    Screens
	dataSource *mockRepo.MockReminderDataSource
	reminderUC *mockUsecase.MockReminderUsecase
}

func newSessionFixture(t *testing.T) *sessionFixture {
	t.Helper()

	dataSource := mockRepo.NewMockReminderDataSource(t)
	reminderUC := mockUsecase.NewMockReminderUsecase(t)

	base := presenter.NewBase()
	save := presenter.NewSaveReminderPresenter(base, "user-1", reminderUC, slog.Default())
	screens := Screens{
		List:   presenter.NewRemindersListPresenter(base, "user-1", dataSource),
		Save:   save,
		Select: presenter.NewSelectLocationPresenter(save),
	}

	hub := NewHub(slog.Default())
	session := newTestSession(hub, "user-1", screens)
	hub.Register(session)
	t.Cleanup(func() { hub.Unregister(session) })

	return &sessionFixture{
		hub:        hub,
		session:    session,
		screens:    screens,
		dataSource: dataSource,
		reminderUC: reminderUC,
	}
}

func ptr[T any](v T) *T {
	return &v
}

func TestSession_DispatchEditsDraft(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	f.session.dispatch(ctx, &Command{Type: CmdSetTitle, Title: "Buy milk"})
	f.session.dispatch(ctx, &Command{Type: CmdSetDescription, Description: "2 litres"})
	f.session.dispatch(ctx, &Command{Type: CmdOpenMap})
	f.session.dispatch(ctx, &Command{Type: CmdSelectCoordinate, Latitude: ptr(37.4), Longitude: ptr(-122.1)})

	draft := f.screens.Save.State.Get().Draft
	require.NotNil(t, draft.Title)
	assert.Equal(t, "Buy milk", *draft.Title)
	assert.Equal(t, "2 litres", *draft.Description)
	assert.Equal(t, "Lat: 37.40000, Long: -122.10000", *draft.SelectedLocation)
	assert.Equal(t, entity.DroppedPinName, draft.SelectedPOI.Name)

	nav := f.screens.Save.Navigation.C()
	assert.Equal(t, presenter.NavigateTo(presenter.ScreenSelectLocation), <-nav)
	assert.Equal(t, presenter.NavigateBack(), <-nav)

	f.session.dispatch(ctx, &Command{Type: CmdClear})
	assert.Equal(t, presenter.ReminderDraft{}, f.screens.Save.State.Get().Draft)
}

func TestSession_SelectWithoutLocationAsksForOne(t *testing.T) {
	f := newSessionFixture(t)

	f.session.dispatch(context.Background(), &Command{Type: CmdSelectPOI})

	assert.Equal(t, constants.MessageKeySelectLocation, <-f.screens.Save.SnackBarKeys.C())
	assert.Empty(t, f.screens.Save.Navigation.C())
}

func TestSession_DeleteNotifiesOtherSessions(t *testing.T) {
	f := newSessionFixture(t)
	sibling := newTestSession(f.hub, "user-1", Screens{})
	f.hub.Register(sibling)
	defer f.hub.Unregister(sibling)

	f.dataSource.EXPECT().DeleteAllReminders(mock.Anything, "user-1").Return(result.Done())

	f.session.dispatch(context.Background(), &Command{Type: CmdDeleteReminders})

	assert.True(t, f.screens.List.State.Get().ShowNoData)
	require.Len(t, sibling.send, 1)
	assert.Empty(t, f.session.send)
}

func TestSession_SaveReloadsListAndClearsDraft(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	f.screens.Save.SetTitle("Title")
	f.screens.Select.SelectPOI(entity.PointOfInterest{Name: "Googleplex", Latitude: 37.422, Longitude: -122.084})

	saved := &entity.Reminder{ID: "r1", UserID: "user-1", Title: "Title", Location: "Googleplex", Latitude: 37.422, Longitude: -122.084}
	f.reminderUC.EXPECT().ValidateEnteredData(mock.Anything).Return(nil)
	f.reminderUC.EXPECT().SaveReminder(mock.Anything, "user-1", mock.MatchedBy(func(item *entity.ReminderItem) bool {
		return item.Title == "Title" && item.Location == "Googleplex"
	})).Return(&usecase.SaveOutcome{Reminder: saved, Saved: true, GeofenceRegistered: true}, nil)
	f.dataSource.EXPECT().GetReminders(mock.Anything, "user-1").Return(result.Success([]*entity.Reminder{saved}))

	f.session.dispatch(ctx, &Command{Type: CmdSave})

	assert.Equal(t, constants.MessageReminderSaved, <-f.screens.Save.Toasts.C())
	assert.Equal(t, presenter.ReminderDraft{}, f.screens.Save.State.Get().Draft)
	require.Len(t, f.screens.List.State.Get().Reminders, 1)
}

func TestSession_UnknownCommand(t *testing.T) {
	f := newSessionFixture(t)

	f.session.dispatch(context.Background(), &Command{Type: "fly"})

	require.Len(t, f.session.send, 1)
	var msg struct {
		Type string   `json:"type"`
		Data SnackBar `json:"data"`
	}
	require.NoError(t, json.Unmarshal(<-f.session.send, &msg))
	assert.Equal(t, TypeSnackBar, msg.Type)
	assert.Equal(t, "Unknown command: fly", msg.Data.Message)
}
