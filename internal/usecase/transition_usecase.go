package usecase

import (
	"context"

	"reminders/internal/domain/service"
)

// TransitionUsecase turns a geofence transition into a reminder notification.
type TransitionUsecase interface {
	// HandleTransition never asks for redelivery. Problems with the event are
	// logged and the event is dropped.
	HandleTransition(ctx context.Context, event *service.GeofenceTransitionEvent) error
}
