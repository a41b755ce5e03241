package impl

import (
	"context"
	"testing"

	"reminders/internal/domain/entity"
	domainerrors "reminders/internal/domain/errors"
	"reminders/internal/domain/service"
	mockService "reminders/internal/mocks/service"
	"reminders/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLocationService_ReportLocation(t *testing.T) {
	ctx := context.Background()
	point := entity.LatLng{Latitude: 37.422, Longitude: -122.084}
	input := &usecase.ReportLocationInput{Latitude: point.Latitude, Longitude: point.Longitude}

	t.Run("publishes every transition", func(t *testing.T) {
		geofencing := mockService.NewMockGeofencingService(t)
		publisher := mockService.NewMockEventPublisher(t)
		svc := NewLocationService(geofencing, publisher, newTestLogger())

		transitions := []*entity.GeofenceTransition{
			{Owner: "user-1", RequestIDs: []string{"r1"}, Transition: entity.TransitionEnter, Location: point},
		}
		geofencing.EXPECT().UpdateLocation(ctx, "user-1", point).Return(transitions, nil)
		publisher.EXPECT().
			PublishTransitionEvent(ctx, mock.MatchedBy(func(e *service.GeofenceTransitionEvent) bool {
				return e.UserID == "user-1" && e.Transition == entity.TransitionEnter && e.Latitude == point.Latitude
			})).
			Return(nil)

		count, err := svc.ReportLocation(ctx, "user-1", input)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("no transitions", func(t *testing.T) {
		geofencing := mockService.NewMockGeofencingService(t)
		publisher := mockService.NewMockEventPublisher(t)
		svc := NewLocationService(geofencing, publisher, newTestLogger())

		geofencing.EXPECT().UpdateLocation(ctx, "user-1", point).Return(nil, nil)

		count, err := svc.ReportLocation(ctx, "user-1", input)
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("publish failure is not counted", func(t *testing.T) {
		geofencing := mockService.NewMockGeofencingService(t)
		publisher := mockService.NewMockEventPublisher(t)
		svc := NewLocationService(geofencing, publisher, newTestLogger())

		geofencing.EXPECT().UpdateLocation(ctx, "user-1", point).Return([]*entity.GeofenceTransition{
			{Owner: "user-1", RequestIDs: []string{"r1"}, Transition: entity.TransitionEnter},
		}, nil)
		publisher.EXPECT().PublishTransitionEvent(ctx, mock.Anything).Return(errors.New("broker down"))

		count, err := svc.ReportLocation(ctx, "user-1", input)
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("registry failure", func(t *testing.T) {
		geofencing := mockService.NewMockGeofencingService(t)
		svc := NewLocationService(geofencing, mockService.NewMockEventPublisher(t), newTestLogger())

		geofencing.EXPECT().UpdateLocation(ctx, "user-1", point).Return(nil, errors.New("valkey down"))

		_, err := svc.ReportLocation(ctx, "user-1", input)
		assert.ErrorContains(t, err, "valkey down")
	})

	t.Run("invalid coordinates", func(t *testing.T) {
		svc := NewLocationService(mockService.NewMockGeofencingService(t), mockService.NewMockEventPublisher(t), newTestLogger())

		_, err := svc.ReportLocation(ctx, "user-1", &usecase.ReportLocationInput{Latitude: 10, Longitude: 200})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinates)
	})
}
