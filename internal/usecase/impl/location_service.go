package impl

import (
	"context"
	"log/slog"

	deliverycontext "reminders/internal/delivery/context"
	"reminders/internal/domain/entity"
	domainerrors "reminders/internal/domain/errors"
	"reminders/internal/domain/service"
	"reminders/internal/usecase"

	"github.com/pkg/errors"
)

type locationService struct {
	geofencing service.GeofencingService
	publisher  service.EventPublisher
	logger     *slog.Logger
}

// NewLocationService creates a new location service instance
func NewLocationService(geofencing service.GeofencingService, publisher service.EventPublisher, logger *slog.Logger) usecase.LocationUsecase {
	return &locationService{
		geofencing: geofencing,
		publisher:  publisher,
		logger:     logger,
	}
}

func (s *locationService) ReportLocation(ctx context.Context, userID string, input *usecase.ReportLocationInput) (int, error) {
	if input == nil || !validCoordinate(input.Latitude, input.Longitude) {
		return 0, domainerrors.ErrInvalidCoordinates
	}

	point := entity.LatLng{Latitude: input.Latitude, Longitude: input.Longitude}
	transitions, err := s.geofencing.UpdateLocation(ctx, userID, point)
	if err != nil {
		return 0, errors.Wrap(err, "failed to update location")
	}
	if len(transitions) == 0 {
		return 0, nil
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger).With(slog.String("user_id", userID))
	logger.Info("Geofence transitions detected", slog.Int("count", len(transitions)))

	return publishTransitions(ctx, s.publisher, logger, transitions), nil
}
