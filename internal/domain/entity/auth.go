package entity

// AuthenticationState mirrors whether a caller holds a valid sign-in.
type AuthenticationState string

const (
	Authenticated   AuthenticationState = "AUTHENTICATED"
	Unauthenticated AuthenticationState = "UNAUTHENTICATED"
)

// Routes the client shows for each state.
const (
	RouteReminders = "reminders"
	RouteSignIn    = "sign_in"
)

// Route returns the screen a client in state s should show.
func (s AuthenticationState) Route() string {
	if s == Authenticated {
		return RouteReminders
	}

	return RouteSignIn
}

// AuthUser is the identity extracted from a verified token.
type AuthUser struct {
	UID         string `json:"uid"`
	Email       string `json:"email,omitempty"`
	DisplayName string `json:"display_name,omitempty"`
}
