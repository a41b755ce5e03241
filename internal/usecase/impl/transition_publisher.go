package impl

import (
	"context"
	"log/slog"

	deliverycontext "reminders/internal/delivery/context"
	"reminders/internal/domain/entity"
	"reminders/internal/domain/service"
	"reminders/internal/infra/metrics"
)

// publishTransitions hands every transition to the publisher and returns how
// many were accepted. A failed publish is logged and skipped.
func publishTransitions(ctx context.Context, publisher service.EventPublisher, logger *slog.Logger, transitions []*entity.GeofenceTransition) int {
	requestID := deliverycontext.GetRequestIDFromContext(ctx)

	published := 0
	for _, transition := range transitions {
		metrics.GeofenceTransitions.WithLabelValues(string(transition.Transition)).Inc()

		event := service.NewGeofenceTransitionEvent(requestID, transition)
		if err := publisher.PublishTransitionEvent(ctx, event); err != nil {
			logger.Error("Failed to publish geofence transition",
				slog.Any("geofence_request_ids", transition.RequestIDs),
				slog.Any("error", err),
			)

			continue
		}
		published++
	}

	return published
}
