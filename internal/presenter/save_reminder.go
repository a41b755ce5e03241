package presenter

import (
	"context"
	"log/slog"

	"reminders/internal/domain/constants"
	"reminders/internal/domain/entity"
	domainerrors "reminders/internal/domain/errors"
	"reminders/internal/domain/state"
	"reminders/internal/errors"
	"reminders/internal/usecase"
)

// ReminderDraft is the reminder being edited. Nil means not entered yet.
type ReminderDraft struct {
	Title            *string                 `json:"title"`
	Description      *string                 `json:"description"`
	SelectedLocation *string                 `json:"selected_location"`
	SelectedPOI      *entity.PointOfInterest `json:"selected_poi"`
	Latitude         *float64                `json:"latitude"`
	Longitude        *float64                `json:"longitude"`
}

// Item converts the draft into the item handed to validation and saving.
func (d ReminderDraft) Item() *entity.ReminderItem {
	return &entity.ReminderItem{
		Title:       deref(d.Title),
		Description: deref(d.Description),
		Location:    deref(d.SelectedLocation),
		Latitude:    d.Latitude,
		Longitude:   d.Longitude,
	}
}

// SaveState is everything the save screen renders.
type SaveState struct {
	Draft       ReminderDraft `json:"draft"`
	ShowLoading bool          `json:"show_loading"`
}

// SaveReminderPresenter edits a draft and runs the save flow.
type SaveReminderPresenter struct {
	*Base

	State *state.Store[SaveState]

	userID    string
	reminders usecase.ReminderUsecase
	logger    *slog.Logger
}

// NewSaveReminderPresenter creates the presenter for userID's drafts.
func NewSaveReminderPresenter(base *Base, userID string, reminders usecase.ReminderUsecase, logger *slog.Logger) *SaveReminderPresenter {
	return &SaveReminderPresenter{
		Base:      base,
		State:     state.NewStore(SaveState{}),
		userID:    userID,
		reminders: reminders,
		logger:    logger,
	}
}

// OnClear forgets everything entered so far.
func (p *SaveReminderPresenter) OnClear() {
	p.updateDraft(func(ReminderDraft) ReminderDraft { return ReminderDraft{} })
}

func (p *SaveReminderPresenter) SetTitle(title string) {
	p.updateDraft(func(d ReminderDraft) ReminderDraft {
		d.Title = &title

		return d
	})
}

func (p *SaveReminderPresenter) SetDescription(description string) {
	p.updateDraft(func(d ReminderDraft) ReminderDraft {
		d.Description = &description

		return d
	})
}

// setLocation stores a confirmed map selection.
func (p *SaveReminderPresenter) setLocation(poi entity.PointOfInterest) {
	p.updateDraft(func(d ReminderDraft) ReminderDraft {
		label := poi.Label()
		lat, lng := poi.Latitude, poi.Longitude
		d.SelectedPOI = &poi
		d.SelectedLocation = &label
		d.Latitude = &lat
		d.Longitude = &lng

		return d
	})
}

func (p *SaveReminderPresenter) updateDraft(fn func(ReminderDraft) ReminderDraft) {
	p.State.Update(func(s SaveState) SaveState {
		s.Draft = fn(s.Draft)

		return s
	})
}

func (p *SaveReminderPresenter) setLoading(loading bool) {
	p.State.Update(func(s SaveState) SaveState {
		s.ShowLoading = loading

		return s
	})
}

// ValidateEnteredData shows the first missing field and reports whether the
// item may be saved.
func (p *SaveReminderPresenter) ValidateEnteredData(item *entity.ReminderItem) bool {
	if verr := p.reminders.ValidateEnteredData(item); verr != nil {
		p.SnackBarKeys.Emit(verr.MessageKey)

		return false
	}

	return true
}

// Submit validates the draft and runs the save flow. It returns nil when the
// draft did not pass validation.
func (p *SaveReminderPresenter) Submit(ctx context.Context) (*usecase.SaveOutcome, error) {
	item := p.State.Get().Draft.Item()
	if !p.ValidateEnteredData(item) {
		return nil, nil
	}

	p.setLoading(true)
	outcome, err := p.reminders.SaveReminder(ctx, p.userID, item)
	p.setLoading(false)

	if err != nil {
		p.SnackBars.Emit(userMessage(err))

		return nil, err
	}

	if outcome.Saved {
		p.Toasts.Emit(constants.MessageReminderSaved)
	} else {
		p.logger.Warn("Reminder not saved, geofence was not added", slog.String("user_id", p.userID))
	}
	p.Navigation.Emit(NavigateBack())

	return outcome, nil
}

func userMessage(err error) string {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.Message()
	}

	return err.Error()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
