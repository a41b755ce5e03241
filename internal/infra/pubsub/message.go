package pubsub

import (
	"reminders/internal/domain/constants"
	"reminders/internal/domain/service"
)

// transitionAttributes are attached to every published transition. The
// action attribute routes the message to the geofence handler.
func transitionAttributes(event *service.GeofenceTransitionEvent) map[string]string {
	attributes := map[string]string{
		constants.AttributeAction: constants.ActionGeofenceEvent,
		constants.AttributeUserID: event.UserID,
	}
	if event.RequestID != "" {
		attributes[constants.AttributeRequestID] = event.RequestID
	}

	return attributes
}
