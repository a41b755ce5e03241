// Package presenter holds the screen logic of the reminders client. Each
// presenter exposes its state through state stores and one-shot events so
// any transport can render it.
package presenter

import (
	"reminders/internal/domain/state"
)

// Screen names a destination the client can navigate to.
type Screen string

const (
	ScreenReminders      Screen = "reminders"
	ScreenSaveReminder   Screen = "save_reminder"
	ScreenSelectLocation Screen = "select_location"
)

// NavigationCommand either moves to a screen or goes back one screen.
type NavigationCommand struct {
	Back bool   `json:"back,omitempty"`
	To   Screen `json:"to,omitempty"`
}

// NavigateBack pops the current screen.
func NavigateBack() NavigationCommand {
	return NavigationCommand{Back: true}
}

// NavigateTo pushes screen.
func NavigateTo(screen Screen) NavigationCommand {
	return NavigationCommand{To: screen}
}

// Base carries the signals every screen shares.
type Base struct {
	// Toasts are short confirmations such as "Reminder Saved !".
	Toasts *state.Events[string]
	// SnackBars carry plain error messages.
	SnackBars *state.Events[string]
	// SnackBarKeys carry message keys the client resolves itself.
	SnackBarKeys *state.Events[string]
	Navigation   *state.Events[NavigationCommand]
}

// NewBase creates the shared signals.
func NewBase() *Base {
	return &Base{
		Toasts:       state.NewEvents[string](),
		SnackBars:    state.NewEvents[string](),
		SnackBarKeys: state.NewEvents[string](),
		Navigation:   state.NewEvents[NavigationCommand](),
	}
}
