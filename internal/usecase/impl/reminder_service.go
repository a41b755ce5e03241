// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"math"
	"strings"
	"time"

	"reminders/config"
	deliverycontext "reminders/internal/delivery/context"
	"reminders/internal/domain/constants"
	"reminders/internal/domain/entity"
	domainerrors "reminders/internal/domain/errors"
	"reminders/internal/domain/repository"
	"reminders/internal/domain/service"
	"reminders/internal/infra/metrics"
	"reminders/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// reminderService implements the ReminderUsecase interface.
type reminderService struct {
	dataSource repository.ReminderDataSource
	geofencing service.GeofencingService
	publisher  service.EventPublisher
	radius     float64
	expiration time.Duration
	now        func() time.Time
	logger     *slog.Logger
}

// ReminderServiceParams holds dependencies for ReminderService, injected by Fx.
type ReminderServiceParams struct {
	fx.In

	DataSource repository.ReminderDataSource
	Geofencing service.GeofencingService
	Publisher  service.EventPublisher
	Config     *config.Config
	Logger     *slog.Logger
}

// NewReminderService creates the reminder use case.
func NewReminderService(params ReminderServiceParams) usecase.ReminderUsecase {
	radius := config.DefaultGeofenceRadiusMeters
	expiration := config.DefaultGeofenceExpiration
	if params.Config != nil {
		if params.Config.Geofence.RadiusMeters > 0 {
			radius = params.Config.Geofence.RadiusMeters
		}
		if params.Config.Geofence.Expiration > 0 {
			expiration = params.Config.Geofence.Expiration
		}
	}

	return &reminderService{
		dataSource: params.DataSource,
		geofencing: params.Geofencing,
		publisher:  params.Publisher,
		radius:     radius,
		expiration: expiration,
		now:        time.Now,
		logger:     params.Logger,
	}
}

func (srv *reminderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ValidateEnteredData requires a title, then a location.
func (srv *reminderService) ValidateEnteredData(item *entity.ReminderItem) *domainerrors.ValidationError {
	if item == nil || strings.TrimSpace(item.Title) == "" {
		return domainerrors.NewValidationError(constants.MessageKeyEnterTitle)
	}
	if strings.TrimSpace(item.Location) == "" {
		return domainerrors.NewValidationError(constants.MessageKeySelectLocation)
	}

	return nil
}

// SaveReminder replaces the user's geofence with one around the item and
// persists the reminder only once the registry accepted it.
func (srv *reminderService) SaveReminder(ctx context.Context, userID string, item *entity.ReminderItem) (*usecase.SaveOutcome, error) {
	if verr := srv.ValidateEnteredData(item); verr != nil {
		return nil, verr
	}
	if item.Latitude == nil || item.Longitude == nil || !validCoordinate(*item.Latitude, *item.Longitude) {
		return nil, domainerrors.ErrInvalidCoordinates
	}

	reminder := item.ToReminder(userID)
	if reminder.ID == "" {
		reminder.ID = uuid.NewString()
	} else if err := srv.checkOwnership(ctx, userID, reminder.ID); err != nil {
		return nil, err
	}

	logger := srv.log(ctx).With(slog.String("reminder_id", reminder.ID), slog.String("user_id", userID))

	if err := srv.geofencing.RemoveGeofences(ctx, userID); err != nil {
		logger.Warn("Failed to remove geofences", slog.Any("error", err))
	}

	transitions, err := srv.geofencing.AddGeofences(ctx, srv.geofencingRequest(reminder))
	if err != nil {
		metrics.GeofenceRegistrations.WithLabelValues(metrics.ResultFailed).Inc()
		logger.Warn("Failed to add geofence", slog.Any("error", err))

		return &usecase.SaveOutcome{Reminder: reminder}, nil
	}
	metrics.GeofenceRegistrations.WithLabelValues(metrics.ResultOK).Inc()
	logger.Info("Geofence added", slog.Float64("radius_meters", srv.radius))

	res := srv.dataSource.SaveReminder(ctx, reminder)
	if res.IsError() {
		return nil, domainerrors.ErrReminderSaveFailed.WithDetails(res.Message())
	}
	metrics.RemindersSaved.Inc()

	return &usecase.SaveOutcome{
		Reminder:           reminder,
		Saved:              true,
		GeofenceRegistered: true,
		Transitions:        publishTransitions(ctx, srv.publisher, logger, transitions),
	}, nil
}

// checkOwnership refuses to overwrite another user's reminder.
func (srv *reminderService) checkOwnership(ctx context.Context, userID, id string) error {
	existing, ok := srv.dataSource.GetReminder(ctx, id).Get()
	if ok && existing.UserID != userID {
		return domainerrors.ErrForbidden
	}

	return nil
}

func (srv *reminderService) geofencingRequest(reminder *entity.Reminder) *entity.GeofencingRequest {
	return &entity.GeofencingRequest{
		Owner: reminder.UserID,
		Geofences: []*entity.Geofence{{
			RequestID:       reminder.ID,
			Center:          entity.LatLng{Latitude: reminder.Latitude, Longitude: reminder.Longitude},
			RadiusMeters:    srv.radius,
			ExpiresAt:       srv.now().Add(srv.expiration),
			TransitionTypes: []entity.TransitionType{entity.TransitionEnter},
		}},
		InitialTrigger: entity.TransitionEnter,
	}
}

func (srv *reminderService) ListReminders(ctx context.Context, userID string) ([]*entity.Reminder, error) {
	res := srv.dataSource.GetReminders(ctx, userID)
	reminders, ok := res.Get()
	if !ok {
		return nil, domainerrors.ErrInternalError.WithDetails(res.Message())
	}

	return reminders, nil
}

// GetReminder hides reminders of other users behind not-found.
func (srv *reminderService) GetReminder(ctx context.Context, userID, id string) (*entity.Reminder, error) {
	res := srv.dataSource.GetReminder(ctx, id)
	reminder, ok := res.Get()
	if !ok {
		if res.Message() == constants.MessageReminderNotFound {
			return nil, domainerrors.ErrReminderNotFound
		}

		return nil, domainerrors.ErrInternalError.WithDetails(res.Message())
	}
	if reminder.UserID != userID {
		return nil, domainerrors.ErrReminderNotFound
	}

	return reminder, nil
}

func (srv *reminderService) DeleteAllReminders(ctx context.Context, userID string) error {
	res := srv.dataSource.DeleteAllReminders(ctx, userID)
	if res.IsError() {
		return domainerrors.ErrInternalError.WithDetails(res.Message())
	}

	return nil
}

func validCoordinate(lat, lng float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lng) {
		return false
	}

	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}
