// Package constants holds identifiers shared between binaries.
package constants

const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Transition publisher providers.
const (
	PubSubProviderNoop   = "noop"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	PubSubProviderNATS   = "nats"
)

// ActionGeofenceEvent routes geofence transition messages to the worker.
// Messages carrying another action attribute are ignored.
const ActionGeofenceEvent = "reminders.action.ACTION_GEOFENCE_EVENT"

// Message attributes set on every transition message.
const (
	AttributeAction    = "action"
	AttributeRequestID = "request_id"
	AttributeUserID    = "user_id"
)

// Message keys surfaced to the client for inline validation errors.
const (
	MessageKeyEnterTitle     = "err_enter_title"
	MessageKeySelectLocation = "err_select_location"
)

// User-visible texts.
const (
	MessageReminderSaved    = "Reminder Saved !"
	MessageReminderNotFound = "Reminder not found!"
	MessageSignInFailed     = "Sign in unsuccessful"
)
