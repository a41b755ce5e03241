package presenter

import (
	"sync"

	"reminders/internal/domain/constants"
	"reminders/internal/domain/entity"
)

// SelectLocationPresenter picks the reminder location on the map. It writes
// into the draft of the save screen it was opened from.
type SelectLocationPresenter struct {
	*Base

	save *SaveReminderPresenter

	mu      sync.Mutex
	pending *entity.PointOfInterest
}

// NewSelectLocationPresenter creates a map screen bound to save.
func NewSelectLocationPresenter(save *SaveReminderPresenter) *SelectLocationPresenter {
	return &SelectLocationPresenter{Base: save.Base, save: save}
}

// Open navigates from the save screen to the map.
func (p *SelectLocationPresenter) Open() {
	p.mu.Lock()
	p.pending = nil
	p.mu.Unlock()

	p.Navigation.Emit(NavigateTo(ScreenSelectLocation))
}

// SelectPOI confirms a place and returns to the save screen.
func (p *SelectLocationPresenter) SelectPOI(poi entity.PointOfInterest) {
	p.mu.Lock()
	p.pending = &poi
	p.mu.Unlock()

	p.OnLocationSelected()
}

// SelectCoordinate confirms a dropped pin at lat/lng.
func (p *SelectLocationPresenter) SelectCoordinate(lat, lng float64) {
	p.SelectPOI(entity.DroppedPin(lat, lng))
}

// OnLocationSelected applies the pending selection. Without one it asks the
// user to select a location and stays on the map.
func (p *SelectLocationPresenter) OnLocationSelected() bool {
	p.mu.Lock()
	poi := p.pending
	p.pending = nil
	p.mu.Unlock()

	if poi == nil {
		p.SnackBarKeys.Emit(constants.MessageKeySelectLocation)

		return false
	}

	p.save.setLocation(*poi)
	p.Navigation.Emit(NavigateBack())

	return true
}
