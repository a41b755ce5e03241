package presenter

import (
	"context"

	"reminders/internal/domain/entity"
	"reminders/internal/domain/repository"
	"reminders/internal/domain/state"
)

// ListState is everything the reminders list renders.
type ListState struct {
	Reminders   []entity.ReminderItem `json:"reminders"`
	ShowLoading bool                  `json:"show_loading"`
	ShowNoData  bool                  `json:"show_no_data"`
}

// RemindersListPresenter drives the list of a user's reminders.
type RemindersListPresenter struct {
	*Base

	State *state.Store[ListState]

	userID     string
	dataSource repository.ReminderDataSource
}

// NewRemindersListPresenter creates the presenter for userID's list.
func NewRemindersListPresenter(base *Base, userID string, dataSource repository.ReminderDataSource) *RemindersListPresenter {
	return &RemindersListPresenter{
		Base:       base,
		State:      state.NewStore(ListState{Reminders: []entity.ReminderItem{}}),
		userID:     userID,
		dataSource: dataSource,
	}
}

// LoadReminders fetches the reminders and shows an error message if it fails.
// The current list is kept on error.
func (p *RemindersListPresenter) LoadReminders(ctx context.Context) {
	p.State.Update(func(s ListState) ListState {
		s.ShowLoading = true

		return s
	})

	res := p.dataSource.GetReminders(ctx, p.userID)
	reminders, ok := res.Get()

	p.State.Update(func(s ListState) ListState {
		s.ShowLoading = false
		if ok {
			items := make([]entity.ReminderItem, 0, len(reminders))
			for _, reminder := range reminders {
				items = append(items, entity.ReminderItemFromEntity(reminder))
			}
			s.Reminders = items
		}
		s.ShowNoData = len(s.Reminders) == 0

		return s
	})

	if !ok {
		p.SnackBars.Emit(res.Message())
	}
}

// DeleteReminders removes every reminder of the user and empties the list.
func (p *RemindersListPresenter) DeleteReminders(ctx context.Context) bool {
	res := p.dataSource.DeleteAllReminders(ctx, p.userID)
	if res.IsError() {
		p.SnackBars.Emit(res.Message())

		return false
	}

	p.State.Update(func(s ListState) ListState {
		s.Reminders = []entity.ReminderItem{}
		s.ShowNoData = true

		return s
	})

	return true
}

// NavigateToAddReminder opens the save screen.
func (p *RemindersListPresenter) NavigateToAddReminder() {
	p.Navigation.Emit(NavigateTo(ScreenSaveReminder))
}
